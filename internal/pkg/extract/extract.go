// Package extract slides a fixed-size window over admitted token pairs
// and emits the context of every target word that lands in its center.
package extract

import (
	"errors"
	"fmt"
	"io"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/filter"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/window"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/wordset"
)

// ErrInvariant reports an internal consistency failure, such as an
// emitted window of the wrong size.
var ErrInvariant = errors.New("extract: invariant violation")

// Scope tells whether the window survives line boundaries.
type Scope int

const (
	// ScopeLine empties the window at the start of every input line.
	ScopeLine Scope = iota
	// ScopeStream keeps one window across the whole input.
	ScopeStream
)

// ParseScope accepts "line" or "stream".
func ParseScope(s string) (Scope, error) {
	switch s {
	case "line", "":
		return ScopeLine, nil
	case "stream":
		return ScopeStream, nil
	}
	return ScopeLine, fmt.Errorf("unknown window scope %q (want line or stream)", s)
}

func (s Scope) String() string {
	if s == ScopeStream {
		return "stream"
	}
	return "line"
}

// Sink receives emitted instances.
type Sink interface {
	Write(in *Instance) error
	Close() error
}

// Config parameterizes an Extractor.
type Config struct {
	// HalfWidth is the number of context pairs on each side of the target.
	HalfWidth int
	Targets   wordset.Set
	// Left filters the l1 side. Nil for monolingual runs.
	Left  *filter.Filter
	Right *filter.Filter
	// EchoTranslation renders the center left token with its /l tag.
	EchoTranslation bool
	Scope           Scope
	// Progress, if set, receives a dot every 1000 instances.
	Progress io.Writer
}

// Stats summarizes a run.
type Stats struct {
	Lines     int64
	Admitted  int64
	Instances int
	// Translations holds the center left tokens seen while echoing.
	Translations wordset.Set
}

// Extractor runs the sliding window extraction.
type Extractor struct {
	cfg   Config
	win   *window.Window
	label string
}

// New returns an Extractor for cfg.
func New(cfg Config) *Extractor {
	if cfg.HalfWidth < 0 {
		cfg.HalfWidth = 0
	}
	return &Extractor{cfg: cfg, win: window.New(cfg.HalfWidth), label: cfg.Targets.Label()}
}

// state is the mutable bookkeeping of one run.
type state struct {
	stats Stats
}

// Run drains src into sink. It stops at the first sink error; the
// caller owns sink and closes it.
func (e *Extractor) Run(src Source, sink Sink) (Stats, error) {
	st := &state{stats: Stats{Translations: wordset.New()}}
	e.win.Reset()
	for sent, ok := src.Next(); ok; sent, ok = src.Next() {
		st.stats.Lines++
		if e.cfg.Scope == ScopeLine {
			e.win.Reset()
		}
		for _, p := range sent.Pairs {
			if !e.admit(p) {
				continue
			}
			st.stats.Admitted++
			if !e.win.Push(p) {
				continue
			}
			// Only the center is inspected, so targets within HalfWidth
			// pairs of either edge are never emitted.
			if !e.cfg.Targets.Contains(e.win.Center().Right) {
				continue
			}
			in, err := e.instance(st)
			if err != nil {
				return st.stats, err
			}
			if err := sink.Write(in); err != nil {
				return st.stats, fmt.Errorf("write instance %s: %w", in.Name(), err)
			}
		}
	}
	if err := src.Err(); err != nil {
		return st.stats, err
	}
	return st.stats, nil
}

func (e *Extractor) admit(p window.Pair) bool {
	if e.cfg.Right.Remove(p.Right) {
		return false
	}
	return e.cfg.Left == nil || !e.cfg.Left.Remove(p.Left)
}

func (e *Extractor) instance(st *state) (*Instance, error) {
	slots := e.win.Slots()
	half := e.win.Half()
	if len(slots) != 2*half+1 {
		return nil, fmt.Errorf("%w: window holds %d pairs, want %d", ErrInvariant, len(slots), 2*half+1)
	}
	center := slots[half]
	st.stats.Instances++
	in := &Instance{
		ID:     st.stats.Instances,
		Line:   center.Line,
		Label:  e.label,
		Target: center.Right,
	}
	bilingual := e.cfg.Left != nil
	if bilingual {
		in.Translation = center.Left
	}
	for i, p := range slots {
		if i == half {
			if bilingual && e.cfg.EchoTranslation {
				in.Left = append(in.Left, p.Left)
				st.stats.Translations.Add(p.Left)
			}
			continue
		}
		if e.cfg.Targets.Contains(p.Right) {
			continue
		}
		if bilingual {
			in.Left = append(in.Left, p.Left)
		}
		in.Right = append(in.Right, p.Right)
	}
	if e.cfg.Progress != nil && in.ID%1000 == 0 {
		fmt.Fprint(e.cfg.Progress, ".")
	}
	return in, nil
}
