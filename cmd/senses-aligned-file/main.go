/*
Extracts aligned target word contexts into two flat files, one instance per
line, ready for `mallet import-file`.
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
	var mixFile, targetFile string

	app := &cli.App{
		Name:      "senses-aligned-file",
		Usage:     "Writes aligned target word contexts as flat instance files.",
		UsageText: "senses-aligned-file --align FILE --input-left FILE --input-right FILE --target-word-list \"drug drugs\" --output-file-mix FILE --output-file-target FILE",
		Flags: append(opts.Flags(),
			&cli.StringFlag{
				Name:        "output-file-mix",
				Usage:       "Write \"<id> <label> <l1 context> <l2 context>\" records to `file`",
				Required:    true,
				Destination: &mixFile,
			},
			&cli.StringFlag{
				Name:        "output-file-target",
				Usage:       "Write \"<id> <label> <l2 context>\" records to `file`",
				Required:    true,
				Destination: &targetFile,
			},
		),
		Action: func(c *cli.Context) error {
			return opts.Run(func() (extract.Sink, error) {
				return sink.CreateFlat(mixFile, targetFile)
			})
		},
	}
	cmdutil.Run(app)
}
