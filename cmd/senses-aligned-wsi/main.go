/*
Writes every sentence pair holding an aligned target word as a pseudo-XML
<pair> record, with the aligned heads marked on both sides, followed by a
<stat> block counting each english:french head pair.
*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/cmdutil"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/wsi"
)

func main() {
	var opts cmdutil.Aligned
	var outFile string

	flags := opts.Inputs.Flags()
	flags = append(flags, opts.Targets.Flags()...)
	app := &cli.App{
		Name:      "senses-aligned-wsi",
		Usage:     "Writes aligned target word sentences as pseudo-XML records.",
		UsageText: "senses-aligned-wsi --align FILE --input-left FILE --input-right FILE --target-word-list \"drug drugs\" --output-file-mix FILE",
		Flags: append(flags,
			&cli.StringFlag{
				Name:        "encoding",
				Usage:       "Character `encoding` of the inputs (default utf-8)",
				Destination: &opts.Encoding,
			},
			&cli.StringFlag{
				Name:        "output-file-mix",
				Usage:       "Write the records to `file`",
				Required:    true,
				Destination: &outFile,
			},
			&cli.BoolFlag{
				Name:        "stats",
				Usage:       "Output statistics",
				Destination: &opts.Stats,
			},
		),
		Action: func(c *cli.Context) (err error) {
			targets, err := opts.Targets.Load()
			if err != nil {
				return err
			}
			al, left, right, in, err := opts.OpenInputs()
			if err != nil {
				return err
			}
			defer in.Close()

			f, err := os.Create(outFile)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			w := wsi.NewWriter(f, targets)
			lines, err := wsi.Run(al, left, right, w, log.Default())
			if err != nil {
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
			if opts.Stats {
				fmt.Fprintf(os.Stderr, "lines: %d records: %d\n", lines, w.Records())
				fmt.Fprintln(os.Stderr, "targets:", targets)
				fmt.Fprintln(os.Stderr, "heads:", w.Stat())
			}
			return nil
		},
	}
	cmdutil.Run(app)
}
