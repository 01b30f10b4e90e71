// Package chunk splits a large sentence aligned corpus into shards of
// roughly equal size, dropping degenerate sentence pairs on the way.
package chunk

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/corpus"
)

const (
	DefaultMaxLength = 70
	DefaultMaxRatio  = 2
	// DefaultChunkSize is in million left-side tokens.
	DefaultChunkSize = 2.0
)

// Config controls shard size and the pair filter.
type Config struct {
	OutDir string
	// ChunkSize is the shard size in million left-side tokens.
	ChunkSize float64
	MaxLength int
	MaxRatio  int
	Gzip      bool
}

// Stats summarizes a split.
type Stats struct {
	Pairs   int64
	Kept    int64
	Dropped int64
	Shards  int
}

// Keep reports whether a pair with the given token counts is written:
// neither side empty, neither longer than maxLength, and neither side at
// least maxRatio times longer than the other.
func Keep(left, right, maxLength, maxRatio int) bool {
	if left == 0 || right == 0 {
		return false
	}
	if left > maxLength || right > maxLength {
		return false
	}
	return left/right < maxRatio && right/left < maxRatio
}

type shard struct {
	file *os.File
	gz   *gzip.Writer
	w    *bufio.Writer
}

func createShard(path string, compress bool) (*shard, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	s := &shard{file: f}
	var w io.Writer = f
	if compress {
		s.gz = gzip.NewWriter(f)
		w = s.gz
	}
	s.w = bufio.NewWriter(w)
	return s, nil
}

func (s *shard) line(toks []string) error {
	// every token is followed by a space, then the newline
	_, err := s.w.WriteString(strings.Join(toks, " ") + " \n")
	return err
}

func (s *shard) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	err := s.w.Flush()
	if s.gz != nil {
		if cerr := s.gz.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	s.file = nil
	return err
}

// Split reads left and right in lockstep and writes kept pairs to
// <OutDir>/<left base>.<n> and <OutDir>/<right base>.<n>, n from 1.
// A new shard starts once the current one holds more than ChunkSize
// million left tokens.
func Split(left, right *corpus.Reader, cfg Config, logger *log.Logger) (Stats, error) {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	if cfg.MaxRatio <= 0 {
		cfg.MaxRatio = DefaultMaxRatio
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return Stats{}, err
	}
	limit := int64(math.Round(cfg.ChunkSize * 1000000))
	ext := ""
	if cfg.Gzip {
		ext = ".gz"
	}
	leftBase := filepath.Join(cfg.OutDir, filepath.Base(left.Path())) + "."
	rightBase := filepath.Join(cfg.OutDir, filepath.Base(right.Path())) + "."

	var st Stats
	var lw, rw *shard
	closeShards := func() error {
		err := lw.Close()
		if cerr := rw.Close(); err == nil {
			err = cerr
		}
		return err
	}
	defer closeShards()

	open := func() error {
		if err := closeShards(); err != nil {
			return err
		}
		st.Shards++
		var err error
		if lw, err = createShard(fmt.Sprintf("%s%d%s", leftBase, st.Shards, ext), cfg.Gzip); err != nil {
			return err
		}
		rw, err = createShard(fmt.Sprintf("%s%d%s", rightBase, st.Shards, ext), cfg.Gzip)
		return err
	}
	if err := open(); err != nil {
		return st, err
	}

	var tokens int64
	for {
		l, lok := left.Next()
		r, rok := right.Next()
		if !lok || !rok {
			if lok != rok {
				logger.Printf("%s and %s differ in length; stopped after %d pairs", left.Path(), right.Path(), st.Pairs)
			}
			break
		}
		st.Pairs++
		if !Keep(len(l.Tokens), len(r.Tokens), cfg.MaxLength, cfg.MaxRatio) {
			st.Dropped++
			continue
		}
		if tokens > limit {
			tokens = 0
			if err := open(); err != nil {
				return st, err
			}
		}
		tokens += int64(len(l.Tokens))
		if err := lw.line(l.Tokens); err != nil {
			return st, err
		}
		if err := rw.line(r.Tokens); err != nil {
			return st, err
		}
		st.Kept++
	}
	if err := left.Err(); err != nil {
		return st, err
	}
	if err := right.Err(); err != nil {
		return st, err
	}
	return st, closeShards()
}
