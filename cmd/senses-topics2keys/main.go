/*
Turns the doc-topics output of `mallet infer-topics` into SenseEval keys,
one "<noun> <instance> <noun>.C<topic>" line per document.
*/
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/cmdutil"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/corpus"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/keys"
)

func main() {
	var input, output string
	var opts keys.Options
	var flagStats bool

	app := &cli.App{
		Name:      "senses-topics2keys",
		Usage:     "Converts mallet doc-topics output to SenseEval keys.",
		UsageText: "senses-topics2keys --input doc-topics.txt --output keys.txt [--weight --senses 4]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Usage:       "mallet doc-topics `file`",
				Required:    true,
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "Write keys to `file`",
				Required:    true,
				Destination: &output,
			},
			&cli.BoolFlag{
				Name:        "weight",
				Usage:       "List weighted senses instead of the best topic only",
				Destination: &opts.Weight,
			},
			&cli.IntFlag{
				Name:        "senses",
				Value:       keys.DefaultSenses,
				Usage:       "Number of weighted senses listed with --weight",
				Destination: &opts.Senses,
			},
			&cli.BoolFlag{
				Name:        "stats",
				Usage:       "Output statistics",
				Destination: &flagStats,
			},
		},
		Action: func(c *cli.Context) (err error) {
			r, err := corpus.Open(input)
			if err != nil {
				return err
			}
			defer r.Close()
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			n, err := keys.Run(r, f, opts)
			if err != nil {
				return err
			}
			if flagStats {
				fmt.Fprintln(os.Stderr, "keys:", n)
			}
			return nil
		},
	}
	cmdutil.Run(app)
}
