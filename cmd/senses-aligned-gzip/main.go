/*
Same as senses-aligned-file, with both outputs gzip compressed.
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
		Name:      "senses-aligned-gzip",
		Usage:     "Writes aligned target word contexts as gzip compressed instance files.",
		UsageText: "senses-aligned-gzip --align FILE --input-left FILE --input-right FILE --target-word-file FILE --output-file-mix FILE.gz --output-file-target FILE.gz",
		Flags: append(opts.Flags(),
			&cli.StringFlag{
				Name:        "output-file-mix",
				Usage:       "Gzip `file` for the l1+l2 records",
				Required:    true,
				Destination: &mixFile,
			},
			&cli.StringFlag{
				Name:        "output-file-target",
				Usage:       "Gzip `file` for the l2 records",
				Required:    true,
				Destination: &targetFile,
			},
		),
		Action: func(c *cli.Context) error {
			return opts.Run(func() (extract.Sink, error) {
				return sink.CreateGzip(mixFile, targetFile)
			})
		},
	}
	cmdutil.Run(app)
}
