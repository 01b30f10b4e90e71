package fix

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

/**
 * Corrects letter case and composition for word list entries.
 * Corpora are lowercased by an external tokenizer, so stoplists and
 * target words have to be lowercased NFC to compare equal.
 */
func Case(words []string) []string {
	ret := make([]string, len(words))
	for i, w := range words {
		ret[i] = Word(w)
	}
	return ret
}

// Word is Case for a single entry.
func Word(w string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(w))
}
