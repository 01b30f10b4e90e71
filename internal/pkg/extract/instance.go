package extract

import (
	"fmt"
	"strings"
)

// Instance is one emitted context window.
type Instance struct {
	// ID counts emissions from 1.
	ID int
	// Line is the source line of the center pair.
	Line int64
	// Label is the shortest target word, shared by all instances of a run.
	Label string
	// Target is the center right token.
	Target string
	// Translation is the center left token, empty for monolingual runs.
	Translation string
	// Left and Right hold the context tokens in window order. Left
	// contains Translation at its window position when echoing is on.
	Left  []string
	Right []string
}

// Name identifies the instance as "<id>_<line>".
func (in *Instance) Name() string {
	return fmt.Sprintf("%d_%d", in.ID, in.Line)
}

// LeftText renders the left context as "tok/l tok/l ".
func (in *Instance) LeftText() string { return render(in.Left, "/l ") }

// RightText renders the right context as "tok/r tok/r ".
func (in *Instance) RightText() string { return render(in.Right, "/r ") }

func render(toks []string, tag string) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t)
		sb.WriteString(tag)
	}
	return sb.String()
}
