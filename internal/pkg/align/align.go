// Package align parses word-alignment lines of the form "0-0 1-2 2-1"
// as produced by GIZA++, fast_align or eflomal + atools.
package align

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Index maps token positions across one sentence pair. Left is the
// l1 side of an l1-l2 alignment, right the l2 (target language) side.
type Index struct {
	rightToLeft map[int][]int
	leftToRight map[int][]int
}

// MalformedError describes one alignment entry that could not be used.
type MalformedError struct {
	Entry  string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed alignment %q: %s", e.Entry, e.Reason)
}

// Parse builds an index from the whitespace separated entries of one
// alignment line. Unusable entries are skipped and returned so the
// caller can report them; they never invalidate the rest of the line.
func Parse(entries []string) (*Index, []error) {
	idx := &Index{
		rightToLeft: make(map[int][]int),
		leftToRight: make(map[int][]int),
	}
	var bad []error
	for _, entry := range entries {
		parts := strings.Split(entry, "-")
		if len(parts) != 2 {
			bad = append(bad, &MalformedError{entry, "want <left>-<right>"})
			continue
		}
		left, err := strconv.Atoi(parts[0])
		if err != nil {
			bad = append(bad, &MalformedError{entry, err.Error()})
			continue
		}
		right, err := strconv.Atoi(parts[1])
		if err != nil {
			bad = append(bad, &MalformedError{entry, err.Error()})
			continue
		}
		if left < 0 || right < 0 {
			bad = append(bad, &MalformedError{entry, "negative position"})
			continue
		}
		idx.add(left, right)
	}
	return idx, bad
}

// ParseLine splits line on whitespace and parses it.
func ParseLine(line string) (*Index, []error) {
	return Parse(strings.Fields(line))
}

func (x *Index) add(left, right int) {
	x.rightToLeft[right] = pushnew(x.rightToLeft[right], left)
	x.leftToRight[left] = pushnew(x.leftToRight[left], right)
}

// Left returns the left position aligned to right. When several are
// aligned the last one listed on the line wins.
func (x *Index) Left(right int) (int, bool) {
	ls := x.rightToLeft[right]
	if len(ls) == 0 {
		return 0, false
	}
	return ls[len(ls)-1], true
}

// LeftSet returns every left position aligned to right, ascending.
func (x *Index) LeftSet(right int) []int {
	return sorted(x.rightToLeft[right])
}

// RightSet returns every right position aligned to left, ascending.
func (x *Index) RightSet(left int) []int {
	return sorted(x.leftToRight[left])
}

// Len is the number of aligned right positions.
func (x *Index) Len() int { return len(x.rightToLeft) }

// pushnew appends val unless it is already present; a repeated val
// moves to the end so that "last listed wins" still holds.
func pushnew(slice []int, val int) []int {
	for i, ele := range slice {
		if ele == val {
			return append(append(slice[:i:i], slice[i+1:]...), val)
		}
	}
	return append(slice, val)
}

func sorted(in []int) []int {
	out := append([]int(nil), in...)
	sort.Ints(out)
	return out
}
