// Package corpus reads pre-tokenized, one-sentence-per-line corpus files.
package corpus

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// maxLine bounds a single sentence; Europarl-sized lines fit easily.
const maxLine = 16 * 1024 * 1024

// Line is one sentence of a corpus file.
type Line struct {
	// Number is 1-based.
	Number int64
	Text   string
	Tokens []string
}

// Reader pulls whitespace-tokenized lines from a file. Paths ending in
// ".gz" are decompressed transparently.
type Reader struct {
	path    string
	file    *os.File
	gz      *gzip.Reader
	scanner *bufio.Scanner
	number  int64
	peeked  *Line
	err     error
}

// Option configures a Reader.
type Option func(*options)

type options struct {
	encoding string
}

// WithEncoding decodes the file from a WHATWG charset label such as
// "latin1" or "windows-1252". Empty means UTF-8.
func WithEncoding(name string) Option {
	return func(o *options) { o.encoding = name }
}

// Open opens path for reading.
func Open(path string, opts ...Option) (*Reader, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	r := &Reader{path: path, file: f}
	var src io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open %q: %w", path, err)
		}
		r.gz = gz
		src = gz
	}
	if o.encoding != "" {
		enc, err := htmlindex.Get(o.encoding)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("open %q: encoding %q: %w", path, o.encoding, err)
		}
		src = transform.NewReader(src, enc.NewDecoder())
	}
	r.scanner = bufio.NewScanner(src)
	r.scanner.Buffer(make([]byte, 64*1024), maxLine)
	return r, nil
}

// Path returns the path the reader was opened with.
func (r *Reader) Path() string { return r.path }

// Peek returns the next line without consuming it.
func (r *Reader) Peek() (Line, bool) {
	if r.peeked == nil {
		l, ok := r.read()
		if !ok {
			return Line{}, false
		}
		r.peeked = &l
	}
	return *r.peeked, true
}

// Next consumes and returns the next line. It returns false at end of
// input or on a read error; Err tells them apart.
func (r *Reader) Next() (Line, bool) {
	if r.peeked != nil {
		l := *r.peeked
		r.peeked = nil
		return l, true
	}
	return r.read()
}

func (r *Reader) read() (Line, bool) {
	if r.err != nil || !r.scanner.Scan() {
		if r.err == nil {
			if err := r.scanner.Err(); err != nil {
				r.err = fmt.Errorf("read %q line %d: %w", r.path, r.number+1, err)
			}
		}
		return Line{}, false
	}
	r.number++
	text := r.scanner.Text()
	return Line{Number: r.number, Text: text, Tokens: strings.Fields(text)}, true
}

// Err returns the first read error, if any.
func (r *Reader) Err() error { return r.err }

// Close releases the file. It is safe to call more than once.
func (r *Reader) Close() error {
	var err error
	if r.gz != nil {
		err = r.gz.Close()
		r.gz = nil
	}
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
		r.file = nil
	}
	return err
}
