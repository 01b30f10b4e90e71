package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/corpus"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/extract"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/filter"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/wordset"
)

// ErrTargetWords is returned when target words are given both or neither
// as a file and as an inline list.
var ErrTargetWords = errors.New("exactly one of --target-word-file and --target-word-list is required")

// Targets selects the target words.
type Targets struct {
	File string
	List string
}

func (t *Targets) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "target-word-file",
			Usage:       "Read target words from `file`, one per line",
			Destination: &t.File,
		},
		&cli.StringFlag{
			Name:        "target-word-list",
			Usage:       "Space separated target `words`",
			Destination: &t.List,
		},
	}
}

// Load returns the target set. Words are lowercased.
func (t *Targets) Load() (wordset.Set, error) {
	switch {
	case (t.File == "") == (strings.TrimSpace(t.List) == ""):
		return nil, ErrTargetWords
	case t.File != "":
		return wordset.Load(t.File)
	default:
		return wordset.New(strings.Fields(t.List)...), nil
	}
}

// Stoplist configures the filter for one language side.
type Stoplist struct {
	File string
	Lang string
}

// Flags names the flags stoplist-<suffix> and stoplist-lang-<suffix>; an
// empty suffix gives plain stoplist and stoplist-lang.
func (s *Stoplist) Flags(suffix, side string) []cli.Flag {
	name, lang := "stoplist", "stoplist-lang"
	if suffix != "" {
		name += "-" + suffix
		lang += "-" + suffix
	}
	return []cli.Flag{
		&cli.StringFlag{
			Name:        name,
			Usage:       fmt.Sprintf("Stopwords `file` for the %s side", side),
			Destination: &s.File,
		},
		&cli.StringFlag{
			Name:        lang,
			Usage:       fmt.Sprintf("Also drop the built-in stopwords of `language` (en, fr, ...) on the %s side", side),
			Destination: &s.Lang,
		},
	}
}

// Filter loads the stoplist file if one was given.
func (s *Stoplist) Filter() (*filter.Filter, error) {
	var stop wordset.Set
	if s.File != "" {
		var err error
		if stop, err = wordset.Load(s.File); err != nil {
			return nil, err
		}
	}
	return filter.New(stop, s.Lang), nil
}

// Extraction holds the flags shared by the windowed extractors.
type Extraction struct {
	Targets  Targets
	Size     int
	Scope    string
	Encoding string
	Stats    bool
}

func (e *Extraction) Flags() []cli.Flag {
	return append(e.Targets.Flags(),
		&cli.IntFlag{
			Name:        "window-size",
			Value:       10,
			Usage:       "Number of context tokens kept on each side of the target word",
			Destination: &e.Size,
		},
		&cli.StringFlag{
			Name:        "window-scope",
			Value:       extract.ScopeLine.String(),
			Usage:       "Window `scope`: line resets it on every input line, stream keeps it across lines",
			Destination: &e.Scope,
		},
		&cli.StringFlag{
			Name:        "encoding",
			Usage:       "Character `encoding` of the inputs (default utf-8)",
			Destination: &e.Encoding,
		},
		&cli.BoolFlag{
			Name:        "stats",
			Usage:       "Output statistics",
			Destination: &e.Stats,
		},
	)
}

func (e *Extraction) config() (extract.Config, error) {
	cfg := extract.Config{HalfWidth: e.Size, Progress: os.Stderr}
	if e.Size < 0 {
		return cfg, fmt.Errorf("window-size must not be negative: %d", e.Size)
	}
	var err error
	if cfg.Scope, err = extract.ParseScope(e.Scope); err != nil {
		return cfg, err
	}
	if cfg.Targets, err = e.Targets.Load(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (e *Extraction) open(path string) (*corpus.Reader, error) {
	var opts []corpus.Option
	if e.Encoding != "" {
		opts = append(opts, corpus.WithEncoding(e.Encoding))
	}
	return corpus.Open(path, opts...)
}

// run drives the extractor and closes sink and inputs on every path.
func (e *Extraction) run(cfg extract.Config, src extract.Source, in io.Closer, sink extract.Sink, stderr io.Writer) (err error) {
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	stats, err := extract.New(cfg).Run(src, sink)
	if cerr := sink.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("could not close output: %w", cerr)
	}
	if stats.Instances >= 1000 {
		fmt.Fprintln(stderr)
	}
	if e.Stats {
		Report(stderr, stats, cfg.Targets)
	}
	return err
}

// Report prints run statistics.
func Report(w io.Writer, stats extract.Stats, targets wordset.Set) {
	fmt.Fprintf(w, "lines: %d admitted pairs: %d instances: %d\n", stats.Lines, stats.Admitted, stats.Instances)
	fmt.Fprintln(w, "targets:", targets)
	if stats.Translations.Len() > 0 {
		fmt.Fprintln(w, "translations:", stats.Translations)
	}
}

// Inputs names the three line-synchronized files of an aligned corpus.
type Inputs struct {
	Align string
	Left  string
	Right string
}

func (in *Inputs) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "align",
			Usage:       "Word alignment `file` with lines of leftIdx-rightIdx pairs",
			Required:    true,
			Destination: &in.Align,
		},
		&cli.StringFlag{
			Name:        "input-left",
			Usage:       "Tokenized l1 `file` (the translation side)",
			Required:    true,
			Destination: &in.Left,
		},
		&cli.StringFlag{
			Name:        "input-right",
			Usage:       "Tokenized l2 `file` (the target word side)",
			Required:    true,
			Destination: &in.Right,
		},
	}
}

// Aligned holds the flags of the bilingual extractors.
type Aligned struct {
	Extraction
	Inputs
	StopLeft  Stoplist
	StopRight Stoplist
	Echo      bool
}

func (a *Aligned) Flags() []cli.Flag {
	flags := a.Inputs.Flags()
	flags = append(flags, a.StopLeft.Flags("left", "l1")...)
	flags = append(flags, a.StopRight.Flags("right", "l2")...)
	flags = append(flags, a.Extraction.Flags()...)
	return append(flags, &cli.BoolFlag{
		Name:        "write-left-target-word",
		Usage:       "Write the l1 token aligned to the target word into the mixed output",
		Destination: &a.Echo,
	})
}

// Config builds the extractor configuration, loading every word list.
func (a *Aligned) Config() (extract.Config, error) {
	cfg, err := a.config()
	if err != nil {
		return cfg, err
	}
	cfg.EchoTranslation = a.Echo
	if cfg.Left, err = a.StopLeft.Filter(); err != nil {
		return cfg, err
	}
	if cfg.Right, err = a.StopRight.Filter(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// OpenInputs opens the alignment, left and right readers. The returned
// closer closes all three.
func (a *Aligned) OpenInputs() (al, left, right *corpus.Reader, c io.Closer, err error) {
	var open closers
	defer func() {
		if err != nil {
			open.Close()
		}
	}()
	for _, p := range []struct {
		path string
		r    **corpus.Reader
	}{{a.Align, &al}, {a.Left, &left}, {a.Right, &right}} {
		if *p.r, err = a.open(p.path); err != nil {
			return nil, nil, nil, nil, err
		}
		open = append(open, *p.r)
	}
	return al, left, right, open, nil
}

// NewSink creates the output of a run.
type NewSink func() (extract.Sink, error)

// Run loads the word lists and opens the inputs, and only then calls
// newSink, so a bad invocation never truncates existing outputs. The
// sink is closed on return.
func (a *Aligned) Run(newSink NewSink) error {
	cfg, err := a.Config()
	if err != nil {
		return err
	}
	al, left, right, in, err := a.OpenInputs()
	if err != nil {
		return err
	}
	sink, err := newSink()
	if err != nil {
		in.Close()
		return err
	}
	src := extract.NewAligned(al, left, right, log.Default())
	return a.run(cfg, src, in, sink, os.Stderr)
}

// Mono holds the flags of the monolingual extractor.
type Mono struct {
	Extraction
	Input string
	Stop  Stoplist
}

func (m *Mono) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Tokenized input `file`",
			Required:    true,
			Destination: &m.Input,
		},
	}
	flags = append(flags, m.Stop.Flags("", "input")...)
	return append(flags, m.Extraction.Flags()...)
}

// Run is Aligned.Run for a single input.
func (m *Mono) Run(newSink NewSink) error {
	cfg, err := m.config()
	if err == nil {
		cfg.Right, err = m.Stop.Filter()
	}
	if err != nil {
		return err
	}
	r, err := m.open(m.Input)
	if err != nil {
		return err
	}
	sink, err := newSink()
	if err != nil {
		r.Close()
		return err
	}
	return m.run(cfg, extract.NewMono(r), r, sink, os.Stderr)
}
