// Package cmdutil holds the flags and plumbing shared by the senses-* tools.
package cmdutil

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/profile"
)

// Version is reported by every tool.
const Version = "v0.1.0"

const maintainer = "senses-toolsATwsi-prepDOTorg"

// Authors lists the maintainers shown in --help.
func Authors() []*cli.Author {
	return []*cli.Author{
		{
			Name:  "WSI prep",
			Email: unobfuscate(maintainer),
		},
	}
}

// unobfuscate undoes the AT/DOT spelling used to keep the address out of
// naive scrapers.
func unobfuscate(email string) string {
	return strings.NewReplacer("AT", "@", "DOT", ".").Replace(email)
}

// Run adds the profiling flags to app and runs it with the process
// arguments. Any error, including a missing required flag, is logged and
// ends the process with exit status -1.
func Run(app *cli.App) {
	os.Exit(run(app, os.Args, os.Stderr))
}

func run(app *cli.App, args []string, stderr io.Writer) int {
	p := &profile.Profile{}
	app.Flags = append(app.Flags, p.Flags()...)
	app.Before = p.Start
	app.After = p.Stop
	app.Version = Version
	if app.Authors == nil {
		app.Authors = Authors()
	}
	if app.ErrWriter == nil {
		app.ErrWriter = stderr
	}
	if err := app.Run(args); err != nil {
		log.New(stderr, "", log.LstdFlags).Println(err)
		return -1
	}
	return 0
}

// closers closes every element, returning the first error.
type closers []io.Closer

func (cs closers) Close() error {
	var first error
	for _, c := range cs {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
