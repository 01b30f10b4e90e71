// Package filter decides which corpus tokens may enter a context window.
package filter

import (
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/wordset"
)

// Any digit or punctuation character disqualifies a token, so
// "secretary-general" and "1990s" are both dropped.
var nonAlpha = regexp.MustCompile(`[0-9]|\p{P}`)

// NonAlpha reports whether tok contains a digit or punctuation.
func NonAlpha(tok string) bool {
	return nonAlpha.MatchString(tok)
}

// Built-in stoplists only hold words; anything else is left to NonAlpha.
var letters = regexp.MustCompile(`^[\pL\p{M}]+$`)

// Filter is the removal predicate for one language side.
type Filter struct {
	// Stop is the stoplist read from file; may be nil.
	Stop wordset.Set
	// Lang selects an additional built-in stoplist ("en", "fr", ...).
	Lang string
}

// New returns a filter over a stoplist and optional built-in language list.
func New(stop wordset.Set, lang string) *Filter {
	return &Filter{Stop: stop, Lang: lang}
}

// Remove reports whether tok must be kept out of the window.
func (f *Filter) Remove(tok string) bool {
	if tok == "" {
		return true
	}
	if f != nil && f.Stop.Contains(tok) {
		return true
	}
	if NonAlpha(tok) {
		return true
	}
	if f != nil && f.Lang != "" && letters.MatchString(tok) {
		return strings.TrimSpace(stopwords.CleanString(tok, f.Lang, false)) == ""
	}
	return false
}
