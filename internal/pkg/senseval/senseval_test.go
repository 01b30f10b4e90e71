package senseval

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/corpus"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/filter"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/wordset"
)

const sample = `< corpus lang = " english " >
< lexelt item = " explain.v " >
< instance id = " explain.v.4 " corpus = " wsj " >
opec secretary-general subroto < head > explains < / head > : consumers
offer the 1990 prices
< / instance >
< instance id = " explain.v.5 " corpus = " wsj " >
< head > explains < / head > nothing
< / instance >
< / lexelt >
< lexelt item = " area.n " >
< instance id = " area.n.1 " corpus = " wsj " >
the area
< / instance >
< / lexelt >
< / corpus >
`

func read(t *testing.T, path string) string {
	t.Helper()
	b, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "senseval.tok.lc.xml")
	require.NoError(t, os.WriteFile(in, []byte(sample), 0o644))
	r, err := corpus.Open(in)
	require.NoError(t, err)
	defer r.Close()

	out := filepath.Join(dir, "out")
	s, err := New(out, filter.New(wordset.New("the"), ""))
	require.NoError(t, err)
	require.NoError(t, Run(r, s))
	require.NoError(t, s.Close())

	assert.Equal(t, 3, s.Files())
	assert.Equal(t, "opec/r subroto/r consumers/r offer/r prices/r ",
		read(t, filepath.Join(out, "explain.v", "explain.v.4")))
	assert.Equal(t, "nothing/r ", read(t, filepath.Join(out, "explain.v", "explain.v.5")))
	assert.Equal(t, "area/r ", read(t, filepath.Join(out, "area.n", "area.n.1")))
}

func TestInstanceMustMatchLexelt(t *testing.T) {
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	require.NoError(t, s.Line(strings.Fields(`< lexelt item = " explain.v " >`)))
	err = s.Line(strings.Fields(`< instance id = " area.n.1 " corpus = " wsj " >`))
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestTextOutsideInstance(t *testing.T) {
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	assert.True(t, errors.Is(s.Line([]string{"stray", "text"}), ErrFormat))
	assert.NoError(t, s.Line(nil))
}

func TestTruncatedHeadIsText(t *testing.T) {
	assert.False(t, isHead(strings.Fields("< head > explains"), 0))
	assert.True(t, isHead(strings.Fields("a < head > explains < / head >"), 1))
}
