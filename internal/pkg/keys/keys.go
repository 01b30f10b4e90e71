// Package keys converts MALLET doc-topics output into SenseEval .key
// lines, treating every topic as an induced sense of the instance's
// lexical item.
package keys

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/corpus"
)

// ErrFormat marks a doc-topics line that cannot be converted.
var ErrFormat = errors.New("keys: malformed doc-topics line")

// DefaultSenses is how many weighted senses are listed per instance.
const DefaultSenses = 4

// Options controls the rendering of one key line.
type Options struct {
	// Weight appends "/<weight>" to each sense and lists up to Senses
	// topic/weight pairs.
	Weight bool
	Senses int
}

// Convert renders one doc-topics line, for example
//
//	0 /data/senses/area.n/area.n.10 1 0.29 2 0.29 3 0.25 0 0.15
//
// as "area.n area.n.10 area.n.C1/0.29 area.n.C2/0.29 ...". Comment and
// empty lines yield "", false.
func Convert(fields []string, opts Options) (string, bool, error) {
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return "", false, nil
	}
	if len(fields) < 3 {
		return "", false, fmt.Errorf("%w: want <doc> <path> <topic> ..., got %d fields", ErrFormat, len(fields))
	}
	// MALLET may write the instance name as a file: URI
	p := strings.TrimPrefix(fields[1], "file:")
	noun := path.Base(path.Dir(p))
	instance := path.Base(p)
	if noun == "." || noun == "/" || instance == "" {
		return "", false, fmt.Errorf("%w: instance %q has no parent directory", ErrFormat, fields[1])
	}

	var sb strings.Builder
	sb.WriteString(noun + " " + instance + " ")
	if !opts.Weight {
		sb.WriteString(noun + ".C" + fields[2])
		return sb.String(), true, nil
	}
	senses := opts.Senses
	if senses <= 0 {
		senses = DefaultSenses
	}
	pairs := fields[2:]
	if len(pairs)%2 != 0 {
		return "", false, fmt.Errorf("%w: topic %q has no weight", ErrFormat, pairs[len(pairs)-1])
	}
	var out []string
	for i := 0; i+1 < len(pairs) && len(out) < senses; i += 2 {
		out = append(out, noun+".C"+pairs[i]+"/"+pairs[i+1])
	}
	sb.WriteString(strings.Join(out, " "))
	return sb.String(), true, nil
}

// Run converts every line of r into w and returns the number of keys
// written. Format errors are fatal and name the offending line.
func Run(r *corpus.Reader, w io.Writer, opts Options) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for l, ok := r.Next(); ok; l, ok = r.Next() {
		key, ok, err := Convert(l.Tokens, opts)
		if err != nil {
			return n, fmt.Errorf("%s line %d: %w", r.Path(), l.Number, err)
		}
		if !ok {
			continue
		}
		if _, err := bw.WriteString(key + "\n"); err != nil {
			return n, err
		}
		n++
	}
	if err := r.Err(); err != nil {
		return n, err
	}
	return n, bw.Flush()
}
