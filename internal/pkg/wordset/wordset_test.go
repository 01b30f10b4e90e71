package wordset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWordsPoolsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	require.NoError(t, os.WriteFile(path, []byte("the a\n\n  of\tTo\nthe\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "of", "the", "to"}, s.Sorted())
	assert.True(t, s.Contains("to"))
	assert.False(t, s.Contains("To"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	cases := []struct {
		words []string
		label string
	}{
		{[]string{"drugs", "drug"}, "drug"},
		{[]string{"bank", "banc", "banks"}, "banc"},
		{nil, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.label, New(c.words...).Label(), "%v", c.words)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "[cat, dog]", New("dog", "cat").String())
}

func TestAddNormalizes(t *testing.T) {
	s := New("ÉCOLE", "Drug", "")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("école"))
	assert.True(t, s.Contains("drug"))
}
