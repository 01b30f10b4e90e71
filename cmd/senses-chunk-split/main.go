/*
Splits a sentence aligned parallel corpus into shards of about --chunk-size
million l1 tokens, dropping empty, overlong and badly proportioned pairs.

	senses-chunk-split --input-left europarl.fr --input-right europarl.en --output-dir chunks

writes chunks/europarl.fr.1, chunks/europarl.en.1, chunks/europarl.fr.2, ...
*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/chunk"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/cmdutil"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/corpus"
)

func main() {
	var leftFile, rightFile string
	var cfg chunk.Config
	var flagStats bool

	app := &cli.App{
		Name:      "senses-chunk-split",
		Usage:     "Splits a parallel corpus into filtered shards.",
		UsageText: "senses-chunk-split --input-left FILE --input-right FILE --output-dir DIR [--chunk-size 2 --gzip]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input-left",
				Usage:       "Tokenized l1 `file`",
				Required:    true,
				Destination: &leftFile,
			},
			&cli.StringFlag{
				Name:        "input-right",
				Usage:       "Tokenized l2 `file`, line aligned with --input-left",
				Required:    true,
				Destination: &rightFile,
			},
			&cli.StringFlag{
				Name:        "output-dir",
				Usage:       "`directory` for the shards",
				Required:    true,
				Destination: &cfg.OutDir,
			},
			&cli.Float64Flag{
				Name:        "chunk-size",
				Value:       chunk.DefaultChunkSize,
				Usage:       "Shard size in million l1 tokens",
				Destination: &cfg.ChunkSize,
			},
			&cli.IntFlag{
				Name:        "max-length",
				Value:       chunk.DefaultMaxLength,
				Usage:       "Drop pairs with a side longer than this many tokens",
				Destination: &cfg.MaxLength,
			},
			&cli.IntFlag{
				Name:        "max-ratio",
				Value:       chunk.DefaultMaxRatio,
				Usage:       "Drop pairs whose token count ratio reaches this value",
				Destination: &cfg.MaxRatio,
			},
			&cli.BoolFlag{
				Name:        "gzip",
				Usage:       "Write gzip compressed shards",
				Destination: &cfg.Gzip,
			},
			&cli.BoolFlag{
				Name:        "stats",
				Usage:       "Output statistics",
				Destination: &flagStats,
			},
		},
		Action: func(c *cli.Context) error {
			left, err := corpus.Open(leftFile)
			if err != nil {
				return err
			}
			defer left.Close()
			right, err := corpus.Open(rightFile)
			if err != nil {
				return err
			}
			defer right.Close()

			st, err := chunk.Split(left, right, cfg, log.Default())
			if err != nil {
				return err
			}
			if flagStats {
				fmt.Fprintf(os.Stderr, "pairs: %d kept: %d dropped: %d shards: %d\n",
					st.Pairs, st.Kept, st.Dropped, st.Shards)
			}
			return nil
		},
	}
	cmdutil.Run(app)
}
