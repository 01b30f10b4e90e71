/*
Package senseval splits a tokenized, lowercased SenseEval/SemEval lexical
sample file into one file per instance:

	< lexelt item = " explain.v " >
	< instance id = " explain.v.4 " corpus = " wsj " >
	opec secretary-general subroto < head > explains < / head > : consumers
	< / instance >

becomes <out>/explain.v/explain.v.4 holding "opec/r subroto/r consumers/r ".
The head word, punctuation, digits and stopwords are dropped; the /r tag
matches the right-side tokens of the aligned training vectors.
*/
package senseval

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/corpus"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/filter"
)

// ErrFormat marks markup the splitter cannot follow.
var ErrFormat = errors.New("senseval: malformed input")

// headSpan is "< head > word < / head >".
const headSpan = 8

// Splitter holds the open lexelt directory and instance file.
type Splitter struct {
	out    string
	filter *filter.Filter
	item   string
	dir    string
	file   *os.File
	w      *bufio.Writer
	files  int
}

// New creates outDir.
func New(outDir string, f *filter.Filter) (*Splitter, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	return &Splitter{out: outDir, filter: f}, nil
}

// Files is the number of instance files created.
func (s *Splitter) Files() int { return s.files }

// Line handles one tokenized input line.
func (s *Splitter) Line(toks []string) error {
	if len(toks) == 0 {
		return nil
	}
	if toks[0] == "<" && len(toks) > 1 && toks[1] != "head" {
		return s.markup(toks)
	}
	if s.w == nil {
		return fmt.Errorf("%w: text outside an instance", ErrFormat)
	}
	for i := 0; i < len(toks); i++ {
		if isHead(toks, i) {
			i += headSpan - 1
			continue
		}
		if s.filter.Remove(toks[i]) {
			continue
		}
		if _, err := s.w.WriteString(toks[i] + "/r "); err != nil {
			return err
		}
	}
	return nil
}

func isHead(toks []string, i int) bool {
	return toks[i] == "<" && i+headSpan-1 < len(toks) &&
		toks[i+1] == "head" && toks[i+headSpan-1] == ">"
}

func (s *Splitter) markup(toks []string) error {
	switch toks[1] {
	case "lexelt":
		// < lexelt item = " explain.v " >
		if len(toks) < 6 {
			return fmt.Errorf("%w: %q", ErrFormat, strings.Join(toks, " "))
		}
		if err := s.closeFile(); err != nil {
			return err
		}
		s.item = toks[5]
		s.dir = filepath.Join(s.out, s.item)
		return os.MkdirAll(s.dir, 0o755)
	case "instance":
		// < instance id = " explain.v.4 " corpus = " wsj " >
		if len(toks) < 6 {
			return fmt.Errorf("%w: %q", ErrFormat, strings.Join(toks, " "))
		}
		id := toks[5]
		if s.dir == "" || !strings.Contains(id, s.item) {
			return fmt.Errorf("%w: instance %q outside lexelt %q", ErrFormat, id, s.item)
		}
		if err := s.closeFile(); err != nil {
			return err
		}
		f, err := os.Create(filepath.Join(s.dir, filepath.Base(id)))
		if err != nil {
			return err
		}
		s.file, s.w = f, bufio.NewWriter(f)
		s.files++
	case "/":
		if len(toks) > 2 && toks[2] == "instance" {
			return s.closeFile()
		}
	}
	return nil
}

func (s *Splitter) closeFile() error {
	if s.file == nil {
		return nil
	}
	err := s.w.Flush()
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	s.file, s.w = nil, nil
	return err
}

// Close flushes and closes any open instance file.
func (s *Splitter) Close() error { return s.closeFile() }

// Run feeds every line of r to s. It does not close s.
func Run(r *corpus.Reader, s *Splitter) error {
	for l, ok := r.Next(); ok; l, ok = r.Next() {
		if err := s.Line(l.Tokens); err != nil {
			return fmt.Errorf("%s line %d: %w", r.Path(), l.Number, err)
		}
	}
	return r.Err()
}
