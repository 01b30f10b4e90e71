/*
Extracts the context window of every aligned target word occurrence into
one file per instance.

	senses-aligned --align corpus.align --input-left corpus.fr \
		--input-right corpus.en --stoplist-left stop.fr --stoplist-right stop.en \
		--target-word-file targets --output-dir-mix mix --output-dir-target target

mix/<id>.txt holds the l1 context and l2 context on two lines, target/<id>_<line>.txt
the l2 context alone.
*/
package main

import (
	"github.com/urfave/cli/v2"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/cmdutil"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/extract"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/sink"
)

func main() {
	var opts cmdutil.Aligned
	var mixDir, targetDir string

	app := &cli.App{
		Name:      "senses-aligned",
		Usage:     "Writes the aligned context of each target word occurrence to its own file.",
		UsageText: "senses-aligned --align FILE --input-left FILE --input-right FILE --target-word-file FILE --output-dir-mix DIR --output-dir-target DIR",
		Flags: append(opts.Flags(),
			&cli.StringFlag{
				Name:        "output-dir-mix",
				Usage:       "`directory` for the l1+l2 instance files",
				Destination: &mixDir,
			},
			&cli.StringFlag{
				Name:        "output-dir-target",
				Usage:       "`directory` for the l2 instance files",
				Required:    true,
				Destination: &targetDir,
			},
		),
		Action: func(c *cli.Context) error {
			return opts.Run(func() (extract.Sink, error) {
				return sink.NewDir(mixDir, targetDir)
			})
		},
	}
	cmdutil.Run(app)
}
