package sink

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/extract"
)

// Flat appends one record per instance, in the "[name] [label] [text]"
// layout read by "mallet import-file":
//
//	mix:    <id>_<line> <label> <left> <right>
//	target: <id>_<line> <label> <right>
type Flat struct {
	mix     *bufio.Writer
	target  *bufio.Writer
	closers []io.Closer
}

var _ extract.Sink = (*Flat)(nil)

// NewFlat writes records to mix and target. A nil mix disables the
// mixed output. The caller keeps ownership of both writers.
func NewFlat(mix, target io.Writer) *Flat {
	f := &Flat{target: bufio.NewWriter(target)}
	if mix != nil {
		f.mix = bufio.NewWriter(mix)
	}
	return f
}

// CreateFlat truncates or creates both files. An empty mixPath
// disables the mixed output.
func CreateFlat(mixPath, targetPath string) (*Flat, error) {
	return create(mixPath, targetPath, false)
}

// CreateGzip is CreateFlat with each file gzip compressed.
func CreateGzip(mixPath, targetPath string) (*Flat, error) {
	return create(mixPath, targetPath, true)
}

func create(mixPath, targetPath string, compress bool) (*Flat, error) {
	var closers []io.Closer
	open := func(path string) (io.Writer, error) {
		file, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		if !compress {
			closers = append(closers, file)
			return file, nil
		}
		zw := gzip.NewWriter(file)
		// the gzip trailer has to be written before the file closes
		closers = append(closers, zw, file)
		return zw, nil
	}
	var mix io.Writer
	if mixPath != "" {
		w, err := open(mixPath)
		if err != nil {
			return nil, err
		}
		mix = w
	}
	target, err := open(targetPath)
	if err != nil {
		closeAll(closers)
		return nil, err
	}
	f := NewFlat(mix, target)
	f.closers = closers
	return f, nil
}

func (f *Flat) Write(in *extract.Instance) error {
	nameLabel := in.Name() + " " + in.Label + " "
	right := in.RightText()
	if f.mix != nil {
		if _, err := f.mix.WriteString(nameLabel + in.LeftText() + " " + right + "\n"); err != nil {
			return err
		}
	}
	_, err := f.target.WriteString(nameLabel + right + "\n")
	return err
}

// Close flushes buffered records and closes any files the sink opened.
// Every closer runs even if an earlier one fails.
func (f *Flat) Close() error {
	var err error
	for _, w := range []*bufio.Writer{f.mix, f.target} {
		if w == nil {
			continue
		}
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
	}
	if cerr := closeAll(f.closers); err == nil {
		err = cerr
	}
	f.closers = nil
	return err
}

func closeAll(closers []io.Closer) error {
	var err error
	for _, c := range closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
