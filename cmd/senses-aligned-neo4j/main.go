/*
Loads aligned target word instances into a neo4j database.

Connection settings are read from .env (NEO4J_URI, NEO4J_USER,
NEO4J_PASSWORD) and may be overridden with flags. Each run gets its own id,
stored on every (:Instance) it creates.
*/
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golobby/dotenv"
	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	"github.com/urfave/cli/v2"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/cmdutil"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/extract"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/sink"
)

type Env struct {
	Neo4J struct {
		Uri  string `env:"NEO4J_URI"`
		User string `env:"NEO4J_USER"`
		Pass string `env:"NEO4J_PASSWORD"`
	}
}

// loadEnv decodes path into config. A missing default .env is not an
// error, the flags may carry everything.
func loadEnv(path string, required bool, config *Env) error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()
	if err := dotenv.NewDecoder(file).Decode(config); err != nil {
		return fmt.Errorf("could not decode %s: %w", path, err)
	}
	return nil
}

func main() {
	var opts cmdutil.Aligned
	var envFile, uri, user, pass string
	var batchSize int

	app := &cli.App{
		Name:      "senses-aligned-neo4j",
		Usage:     "Populates a neo4j database with aligned target word instances.",
		UsageText: "senses-aligned-neo4j --align FILE --input-left FILE --input-right FILE --target-word-file FILE",
		Flags: append(opts.Flags(),
			&cli.StringFlag{
				Name:        "env-file",
				Value:       ".env",
				Usage:       "Read NEO4J_URI, NEO4J_USER and NEO4J_PASSWORD from `file`",
				Destination: &envFile,
			},
			&cli.StringFlag{
				Name:        "neo4j-uri",
				Usage:       "Database `uri`, overrides NEO4J_URI",
				Destination: &uri,
			},
			&cli.StringFlag{
				Name:        "neo4j-user",
				Usage:       "Database `user`, overrides NEO4J_USER",
				Destination: &user,
			},
			&cli.StringFlag{
				Name:        "neo4j-password",
				Usage:       "Database `password`, overrides NEO4J_PASSWORD",
				Destination: &pass,
			},
			&cli.IntFlag{
				Name:        "batch-size",
				Value:       sink.DefaultBatchSize,
				Usage:       "Instances written per transaction",
				Destination: &batchSize,
			},
		),
		Action: func(c *cli.Context) error {
			config := Env{}
			if err := loadEnv(envFile, c.IsSet("env-file"), &config); err != nil {
				return err
			}
			if uri != "" {
				config.Neo4J.Uri = uri
			}
			if user != "" {
				config.Neo4J.User = user
			}
			if pass != "" {
				config.Neo4J.Pass = pass
			}
			if config.Neo4J.Uri == "" {
				return errors.New("no database uri: set NEO4J_URI or --neo4j-uri")
			}

			driver, err := neo4j.NewDriver(config.Neo4J.Uri,
				neo4j.BasicAuth(config.Neo4J.User, config.Neo4J.Pass, ""))
			if err != nil {
				return fmt.Errorf("could not open database %s: %w", config.Neo4J.Uri, err)
			}
			defer driver.Close()
			session := driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
			defer session.Close()

			return opts.Run(func() (extract.Sink, error) {
				out, err := sink.NewNeo4j(session, batchSize, opts.Echo)
				if err != nil {
					return nil, err
				}
				fmt.Fprintln(os.Stderr, "run:", out.RunID())
				return out, nil
			})
		},
	}
	cmdutil.Run(app)
}
