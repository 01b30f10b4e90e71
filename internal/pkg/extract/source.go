package extract

import (
	"log"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/align"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/corpus"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/window"
)

// Sentence is the candidate pairs of one input line, in right-side
// order, before filtering.
type Sentence struct {
	Line  int64
	Pairs []window.Pair
}

// Source yields sentences until exhausted.
type Source interface {
	Next() (Sentence, bool)
	Err() error
}

// AlignedSource reads an alignment file and both sides of a sentence
// aligned corpus in lockstep.
type AlignedSource struct {
	align, left, right *corpus.Reader
	logger             *log.Logger
}

// NewAligned pairs the three readers. The caller keeps ownership and
// closes them.
func NewAligned(alignments, left, right *corpus.Reader, logger *log.Logger) *AlignedSource {
	if logger == nil {
		logger = log.Default()
	}
	return &AlignedSource{align: alignments, left: left, right: right, logger: logger}
}

func (s *AlignedSource) Next() (Sentence, bool) {
	a, ok := s.align.Next()
	if !ok {
		s.checkExhausted(s.left, s.right)
		return Sentence{}, false
	}
	l, lok := s.left.Next()
	r, rok := s.right.Next()
	if !lok || !rok {
		s.logger.Printf("%s: input ends before alignment line %d", short(lok, s.left, s.right), a.Number)
		return Sentence{}, false
	}

	idx, bad := align.Parse(a.Tokens)
	for _, err := range bad {
		s.logger.Printf("%s line %d: %v", s.align.Path(), a.Number, err)
	}
	sent := Sentence{Line: a.Number}
	// the right side is the target language
	for right, tok := range r.Tokens {
		left, ok := idx.Left(right)
		if !ok {
			continue
		}
		if left >= len(l.Tokens) {
			s.logger.Printf("%s line %d: left position %d out of range (%d tokens)",
				s.align.Path(), a.Number, left, len(l.Tokens))
			continue
		}
		sent.Pairs = append(sent.Pairs, window.Pair{Left: l.Tokens[left], Right: tok, Line: a.Number})
	}
	return sent, true
}

func (s *AlignedSource) checkExhausted(rs ...*corpus.Reader) {
	for _, r := range rs {
		if _, ok := r.Peek(); ok {
			s.logger.Printf("%s: has more lines than %s", r.Path(), s.align.Path())
		}
	}
}

func short(leftOK bool, left, right *corpus.Reader) string {
	if !leftOK {
		return left.Path()
	}
	return right.Path()
}

func (s *AlignedSource) Err() error {
	for _, r := range []*corpus.Reader{s.align, s.left, s.right} {
		if err := r.Err(); err != nil {
			return err
		}
	}
	return nil
}

// MonoSource reads a single corpus; pairs carry only a right token.
type MonoSource struct {
	r *corpus.Reader
}

func NewMono(r *corpus.Reader) *MonoSource {
	return &MonoSource{r: r}
}

func (s *MonoSource) Next() (Sentence, bool) {
	l, ok := s.r.Next()
	if !ok {
		return Sentence{}, false
	}
	sent := Sentence{Line: l.Number, Pairs: make([]window.Pair, len(l.Tokens))}
	for i, tok := range l.Tokens {
		sent.Pairs[i] = window.Pair{Right: tok, Line: l.Number}
	}
	return sent, true
}

func (s *MonoSource) Err() error { return s.r.Err() }
