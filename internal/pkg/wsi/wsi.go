/*
Package wsi writes aligned sentence pairs as pseudo-XML records for word
sense induction. For every sentence pair, the first aligned target word
on the right (English) side yields one record:

	<pair id='1' line='1'>
		<English head='cat'>
			the <main_head>cat</main_head> black
		</English>
		<French head='chat'>
			le <main_head>chat</main_head> noir
		</French>
	</pair>

Other tokens aligned to the same words are marked <head>. A closing
<stat> block counts each english:french head combination.
*/
package wsi

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/align"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/corpus"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/wordset"
)

// Writer renders records to an underlying writer.
type Writer struct {
	w       *bufio.Writer
	targets wordset.Set
	counts  map[string]int
	id      int
}

// NewWriter returns a Writer; call Close to emit the <stat> block.
func NewWriter(w io.Writer, targets wordset.Set) *Writer {
	return &Writer{w: bufio.NewWriter(w), targets: targets, counts: make(map[string]int)}
}

// Records is the number of pairs written so far.
func (x *Writer) Records() int { return x.id }

// Pair writes the record for one sentence pair, if it has an aligned
// target word, and reports whether it did.
func (x *Writer) Pair(line int64, left, right []string, idx *align.Index) (bool, error) {
	for r, tok := range right {
		if !x.targets.Contains(tok) {
			continue
		}
		leftSet := inRange(idx.LeftSet(r), len(left))
		if len(leftSet) == 0 {
			continue
		}
		rightSet := map[int]bool{}
		for _, l := range leftSet {
			for _, rr := range inRange(idx.RightSet(l), len(right)) {
				rightSet[rr] = true
			}
		}
		rightIdx := make([]int, 0, len(rightSet))
		for rr := range rightSet {
			rightIdx = append(rightIdx, rr)
		}
		sort.Ints(rightIdx)

		english := join(right, rightIdx)
		french := join(left, leftSet)
		x.counts[english+":"+french]++
		x.id++

		leftHeads := map[int]bool{}
		for _, l := range leftSet {
			leftHeads[l] = true
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "<pair id='%d' line='%d'>\n", x.id, line)
		fmt.Fprintf(&sb, "\t<English head='%s'>\n\t\t", english)
		mark(&sb, right, r, rightSet)
		sb.WriteString("\n\t</English>\n")
		fmt.Fprintf(&sb, "\t<French head='%s'>\n\t\t", french)
		mark(&sb, left, leftSet[0], leftHeads)
		sb.WriteString("\n\t</French>\n</pair>\n")
		_, err := x.w.WriteString(sb.String())
		return true, err
	}
	return false, nil
}

// Close writes the <stat> block and flushes.
func (x *Writer) Close() error {
	if _, err := x.w.WriteString("<stat>\n" + x.Stat() + "\n</stat>\n"); err != nil {
		return err
	}
	return x.w.Flush()
}

// Stat renders the head counts as {key=count, ...}, ascending by count.
func (x *Writer) Stat() string {
	keys := make([]string, 0, len(x.counts))
	for k := range x.counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if x.counts[keys[i]] != x.counts[keys[j]] {
			return x.counts[keys[i]] < x.counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, x.counts[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func mark(sb *strings.Builder, toks []string, main int, heads map[int]bool) {
	for k, t := range toks {
		switch {
		case k == main:
			sb.WriteString("<main_head>" + t + "</main_head> ")
		case heads[k]:
			sb.WriteString("<head>" + t + "</head> ")
		default:
			sb.WriteString(t + " ")
		}
	}
}

func join(toks []string, idx []int) string {
	parts := make([]string, len(idx))
	for i, k := range idx {
		parts[i] = toks[k]
	}
	return strings.Join(parts, "_")
}

func inRange(idx []int, n int) []int {
	out := idx[:0:0]
	for _, i := range idx {
		if i < n {
			out = append(out, i)
		}
	}
	return out
}

// Run reads the three files in lockstep and writes one record per
// sentence pair that contains an aligned target word. It does not close
// w.
func Run(alignments, left, right *corpus.Reader, w *Writer, logger *log.Logger) (int64, error) {
	if logger == nil {
		logger = log.Default()
	}
	var lines int64
	for a, ok := alignments.Next(); ok; a, ok = alignments.Next() {
		l, lok := left.Next()
		r, rok := right.Next()
		if !lok || !rok {
			logger.Printf("%s: corpus ends before alignment line %d", alignments.Path(), a.Number)
			break
		}
		lines++
		idx, bad := align.Parse(a.Tokens)
		for _, err := range bad {
			logger.Printf("%s line %d: %v", alignments.Path(), a.Number, err)
		}
		if _, err := w.Pair(a.Number, l.Tokens, r.Tokens, idx); err != nil {
			return lines, err
		}
	}
	for _, rd := range []*corpus.Reader{alignments, left, right} {
		if err := rd.Err(); err != nil {
			return lines, err
		}
	}
	return lines, nil
}
