package wsi

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/align"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/corpus"
	"gitlab.com/wsi-prep/senses-tools/internal/pkg/wordset"
)

func TestPairSimple(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, wordset.New("cat"))
	idx, _ := align.ParseLine("0-0 1-1 2-2")
	ok, err := w.Pair(4, []string{"le", "chat", "noir"}, []string{"the", "cat", "black"}, idx)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, w.Close())

	expected := "<pair id='1' line='4'>\n" +
		"\t<English head='cat'>\n\t\tthe <main_head>cat</main_head> black \n\t</English>\n" +
		"\t<French head='chat'>\n\t\tle <main_head>chat</main_head> noir \n\t</French>\n" +
		"</pair>\n" +
		"<stat>\n{cat:chat=1}\n</stat>\n"
	assert.Equal(t, expected, buf.String())
}

func TestPairMultiWordHeads(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, wordset.New("bank"))
	// "banque" (1) aligns to "river" and "bank"; "de" (2) also to "bank"
	idx, _ := align.ParseLine("0-0 1-1 1-2 2-2")
	ok, err := w.Pair(1,
		[]string{"la", "banque", "de"},
		[]string{"the", "river", "bank"}, idx)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, w.Close())

	out := buf.String()
	assert.Contains(t, out, "<English head='river_bank'>\n\t\tthe <head>river</head> <main_head>bank</main_head> \n")
	assert.Contains(t, out, "<French head='banque_de'>\n\t\tla <main_head>banque</main_head> <head>de</head> \n")
	assert.Contains(t, out, "{river_bank:banque_de=1}")
}

func TestPairWithoutAlignedTarget(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, wordset.New("cat"))
	idx, _ := align.ParseLine("0-0")
	ok, err := w.Pair(1, []string{"le", "chat"}, []string{"the", "cat"}, idx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, w.Records())
}

func TestStatOrder(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, wordset.New())
	w.counts = map[string]int{"b:x": 3, "a:y": 1, "c:z": 1}
	assert.Equal(t, "{a:y=1, c:z=1, b:x=3}", w.Stat())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	open := func(name, content string) *corpus.Reader {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		r, err := corpus.Open(path)
		require.NoError(t, err)
		t.Cleanup(func() { r.Close() })
		return r
	}
	var buf, logs bytes.Buffer
	w := NewWriter(&buf, wordset.New("cat"))
	lines, err := Run(
		open("a", "0-0 1-1\nx-y 1-1\n0-0\n"),
		open("l", "le chat\nun chat\nrien\n"),
		open("r", "the cat\na cat\nnothing\n"),
		w, log.New(&logs, "", 0))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, int64(3), lines)
	assert.Equal(t, 2, w.Records())
	assert.Contains(t, buf.String(), "{cat:chat=2}")
	assert.Contains(t, buf.String(), "<pair id='2' line='2'>")
	assert.Contains(t, logs.String(), `malformed alignment "x-y"`)
}
