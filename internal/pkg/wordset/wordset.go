// Package wordset loads the stopword and target-word lists used by the
// extraction tools.
package wordset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/fix"
)

// Set is a membership-only set of lowercased words.
type Set map[string]struct{}

// New builds a set from already split words.
func New(words ...string) Set {
	s := make(Set, len(words))
	s.Add(words...)
	return s
}

// Add inserts normalized words, ignoring empty strings.
func (s Set) Add(words ...string) {
	for _, w := range words {
		if w = fix.Word(w); w != "" {
			s[w] = struct{}{}
		}
	}
}

func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func (s Set) String() string {
	return "[" + strings.Join(s.Sorted(), ", ") + "]"
}

// Label picks the shortest member, the first one lexically among ties.
// Flat outputs use it as the instance label of every record.
func (s Set) Label() string {
	label := ""
	for _, w := range s.Sorted() {
		if label == "" || len(w) < len(label) {
			label = w
		}
	}
	return label
}

// ReadWords pools every whitespace separated token of the file into
// words. Line boundaries carry no meaning.
func ReadWords(words Set, path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read word list: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words.Add(strings.Fields(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read word list %q: %w", path, err)
	}
	return nil
}

// Load reads a fresh set from path.
func Load(path string) (Set, error) {
	s := make(Set)
	if err := ReadWords(s, path); err != nil {
		return nil, err
	}
	return s, nil
}
