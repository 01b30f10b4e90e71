/*
Monolingual variant of senses-aligned: extracts the context window of every
target word occurrence in a single tokenized file, one file per instance.
*/
package main

import (
	"github.com/urfave/cli/v2"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/cmdutil"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/extract"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/sink"
)

func main() {
	var opts cmdutil.Mono
	var outDir string

	app := &cli.App{
		Name:      "senses-mono",
		Usage:     "Writes the context of each target word occurrence to its own file.",
		UsageText: "senses-mono --input FILE --stoplist FILE --target-word-file FILE --output-dir DIR",
		Flags: append(opts.Flags(),
			&cli.StringFlag{
				Name:        "output-dir",
				Usage:       "`directory` for the instance files",
				Required:    true,
				Destination: &outDir,
			},
		),
		Action: func(c *cli.Context) error {
			return opts.Run(func() (extract.Sink, error) {
				return sink.NewDir("", outDir)
			})
		},
	}
	cmdutil.Run(app)
}
