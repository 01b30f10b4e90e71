// Package window implements the fixed-size context window slid over
// admitted token pairs.
package window

// Pair is one admitted position: the right (target language) token,
// the left token aligned to it, and the source line it came from.
// Monolingual corpora leave Left empty.
type Pair struct {
	Left  string
	Right string
	Line  int64
}

// Window is a FIFO ring of capacity 2*half+1. Once full, every Push
// evicts the oldest pair.
type Window struct {
	half  int
	buf   []Pair
	start int
	n     int
}

// New returns an empty window; negative half sizes are treated as 0.
func New(half int) *Window {
	if half < 0 {
		half = 0
	}
	return &Window{half: half, buf: make([]Pair, 2*half+1)}
}

// Push appends p, evicting the oldest pair when full, and reports
// whether the window is full afterwards.
func (w *Window) Push(p Pair) bool {
	if w.n < len(w.buf) {
		w.buf[(w.start+w.n)%len(w.buf)] = p
		w.n++
	} else {
		w.buf[w.start] = p
		w.start = (w.start + 1) % len(w.buf)
	}
	return w.Full()
}

func (w *Window) Full() bool { return w.n == len(w.buf) }
func (w *Window) Len() int   { return w.n }
func (w *Window) Cap() int   { return len(w.buf) }

// Half is the number of pairs on each side of the center.
func (w *Window) Half() int { return w.half }

// At returns the i-th pair, oldest first.
func (w *Window) At(i int) Pair {
	return w.buf[(w.start+i)%len(w.buf)]
}

// Center is the pair at index Half. Only meaningful when Full.
func (w *Window) Center() Pair { return w.At(w.half) }

// Slots copies the pairs out, oldest first.
func (w *Window) Slots() []Pair {
	out := make([]Pair, w.n)
	for i := range out {
		out[i] = w.At(i)
	}
	return out
}

// Reset empties the window.
func (w *Window) Reset() {
	w.start, w.n = 0, 0
}
