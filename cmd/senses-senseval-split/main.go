/*
Splits a tokenized SenseEval lexical sample file into one directory per
lexelt item and one file per instance, written as "tok/r " contexts with the
<head> span and stopwords removed.
*/
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/cmdutil"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/corpus"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/senseval"
)

func main() {
	var input, outDir, encoding string
	var stop cmdutil.Stoplist
	var flagStats bool

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Tokenized, lowercased SenseEval `file`",
			Required:    true,
			Destination: &input,
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Create <lexelt>/<instance id> files under `directory`",
			Required:    true,
			Destination: &outDir,
		},
		&cli.StringFlag{
			Name:        "encoding",
			Usage:       "Character `encoding` of the input (default utf-8)",
			Destination: &encoding,
		},
		&cli.BoolFlag{
			Name:        "stats",
			Usage:       "Output statistics",
			Destination: &flagStats,
		},
	}
	app := &cli.App{
		Name:      "senses-senseval-split",
		Usage:     "Splits a SenseEval file into one context file per instance.",
		UsageText: "senses-senseval-split --input english-lex-sample.train.xml --output-dir senseval --stoplist stop.en",
		Flags:     append(flags, stop.Flags("", "input")...),
		Action: func(c *cli.Context) (err error) {
			f, err := stop.Filter()
			if err != nil {
				return err
			}
			var ropts []corpus.Option
			if encoding != "" {
				ropts = append(ropts, corpus.WithEncoding(encoding))
			}
			r, err := corpus.Open(input, ropts...)
			if err != nil {
				return err
			}
			defer r.Close()
			s, err := senseval.New(outDir, f)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := s.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			if err := senseval.Run(r, s); err != nil {
				return err
			}
			if flagStats {
				fmt.Fprintln(os.Stderr, "instances:", s.Files())
			}
			return nil
		},
	}
	cmdutil.Run(app)
}
