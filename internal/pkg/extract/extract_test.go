package extract

import (
	"bytes"
	"errors"
	"log"
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

type memSink struct {
	got    []*Instance
	err    error
	closed int
}

func (m *memSink) Write(in *Instance) error {
	if m.err != nil {
		return m.err
	}
	m.got = append(m.got, in)
	return nil
}

func (m *memSink) Close() error {
	m.closed++
	return nil
}

func openAll(t *testing.T, files map[string]string) map[string]*corpus.Reader {
	t.Helper()
	dir := t.TempDir()
	out := make(map[string]*corpus.Reader)
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		r, err := corpus.Open(path)
		require.NoError(t, err)
		t.Cleanup(func() { r.Close() })
		out[name] = r
	}
	return out
}

func alignedSource(t *testing.T, al, left, right string) (*AlignedSource, *bytes.Buffer) {
	t.Helper()
	rs := openAll(t, map[string]string{"align": al, "left": left, "right": right})
	var logs bytes.Buffer
	return NewAligned(rs["align"], rs["left"], rs["right"], log.New(&logs, "", 0)), &logs
}

func TestRoundTrip(t *testing.T) {
	for _, echo := range []bool{false, true} {
		src, _ := alignedSource(t, "0-0 1-1 2-2\n", "le chat noir\n", "the cat black\n")
		sink := &memSink{}
		e := New(Config{
			HalfWidth:       1,
			Targets:         wordset.New("cat"),
			Left:            filter.New(nil, ""),
			Right:           filter.New(nil, ""),
			EchoTranslation: echo,
		})
		stats, err := e.Run(src, sink)
		require.NoError(t, err)
		require.Len(t, sink.got, 1)

		in := sink.got[0]
		assert.Equal(t, 1, in.ID)
		assert.Equal(t, int64(1), in.Line)
		assert.Equal(t, "cat", in.Target)
		assert.Equal(t, "chat", in.Translation)
		assert.Equal(t, "the/r black/r ", in.RightText())
		assert.NotContains(t, in.RightText(), "cat")
		if echo {
			assert.Equal(t, "le/l chat/l noir/l ", in.LeftText())
			assert.True(t, stats.Translations.Contains("chat"))
		} else {
			assert.Equal(t, "le/l noir/l ", in.LeftText())
			assert.Equal(t, 0, stats.Translations.Len())
		}
		assert.Equal(t, int64(3), stats.Admitted)
	}
}

func TestAdmissionRequiresBothSides(t *testing.T) {
	// "," on the left and "of" on the right keep two pairs out.
	src, _ := alignedSource(t,
		"0-0 1-1 2-2 3-3 4-4\n",
		"la , banque de france\n",
		"the river bank of france\n")
	sink := &memSink{}
	e := New(Config{
		HalfWidth: 1,
		Targets:   wordset.New("bank"),
		Left:      filter.New(wordset.New("la"), ""),
		Right:     filter.New(wordset.New("of"), ""),
	})
	stats, err := e.Run(src, sink)
	require.NoError(t, err)
	// admitted: (banque,bank) (france,france); "la" is a stopword
	assert.Equal(t, int64(2), stats.Admitted)
	assert.Empty(t, sink.got)
}

func TestFilteredTokensDoNotConsumeSlots(t *testing.T) {
	src, _ := alignedSource(t,
		"0-0 1-1 2-2 3-3 4-4\n",
		"a b c d e\n",
		"deep , bank 42 water\n")
	sink := &memSink{}
	e := New(Config{
		HalfWidth: 1,
		Targets:   wordset.New("bank"),
		Left:      filter.New(nil, ""),
		Right:     filter.New(nil, ""),
	})
	_, err := e.Run(src, sink)
	require.NoError(t, err)
	require.Len(t, sink.got, 1)
	assert.Equal(t, []string{"deep", "water"}, sink.got[0].Right)
	assert.Equal(t, []string{"a", "e"}, sink.got[0].Left)
}

func TestNoEmissionOnPartialWindow(t *testing.T) {
	src, _ := alignedSource(t, "0-0 1-1\n", "le chat\n", "the cat\n")
	sink := &memSink{}
	e := New(Config{HalfWidth: 1, Targets: wordset.New("cat"), Left: filter.New(nil, ""), Right: filter.New(nil, "")})
	_, err := e.Run(src, sink)
	require.NoError(t, err)
	assert.Empty(t, sink.got)
}

func TestTargetSlotsAreDropped(t *testing.T) {
	src, _ := alignedSource(t,
		"0-0 1-1 2-2 3-3 4-4\n",
		"v w x y z\n",
		"big drugs drug trade money\n")
	sink := &memSink{}
	e := New(Config{
		HalfWidth: 2,
		Targets:   wordset.New("drug", "drugs"),
		Left:      filter.New(nil, ""),
		Right:     filter.New(nil, ""),
	})
	_, err := e.Run(src, sink)
	require.NoError(t, err)
	require.Len(t, sink.got, 1)
	assert.Equal(t, "big/r trade/r money/r ", sink.got[0].RightText())
	assert.Equal(t, "v/l y/l z/l ", sink.got[0].LeftText())
	assert.Equal(t, "drug", sink.got[0].Label)
}

func TestMalformedAlignmentIsSkipped(t *testing.T) {
	src, logs := alignedSource(t,
		"abc 0-0 1-1 2-2\nabc\n",
		"le chat noir\nle chat noir\n",
		"the cat black\nthe cat black\n")
	sink := &memSink{}
	e := New(Config{HalfWidth: 1, Targets: wordset.New("cat"), Left: filter.New(nil, ""), Right: filter.New(nil, "")})
	stats, err := e.Run(src, sink)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Lines)
	require.Len(t, sink.got, 1, "the line with no valid alignment emits nothing")
	assert.Equal(t, int64(1), sink.got[0].Line)
	assert.Contains(t, logs.String(), `malformed alignment "abc"`)
}

func TestUnalignedRightPositionsAreSkipped(t *testing.T) {
	src, _ := alignedSource(t, "0-0 2-2 3-3\n", "a b c d\n", "x y cat z\n")
	sink := &memSink{}
	e := New(Config{HalfWidth: 1, Targets: wordset.New("cat"), Left: filter.New(nil, ""), Right: filter.New(nil, "")})
	_, err := e.Run(src, sink)
	require.NoError(t, err)
	require.Len(t, sink.got, 1)
	assert.Equal(t, []string{"x", "z"}, sink.got[0].Right)
}

func TestWindowScope(t *testing.T) {
	run := func(scope Scope) []*Instance {
		src, _ := alignedSource(t,
			"0-0\n0-0 1-1\n",
			"le\nchat noir\n",
			"the\ncat black\n")
		sink := &memSink{}
		e := New(Config{HalfWidth: 1, Targets: wordset.New("cat"), Left: filter.New(nil, ""), Right: filter.New(nil, ""), Scope: scope})
		_, err := e.Run(src, sink)
		require.NoError(t, err)
		return sink.got
	}
	assert.Empty(t, run(ScopeLine))
	got := run(ScopeStream)
	require.Len(t, got, 1)
	assert.Equal(t, "the/r black/r ", got[0].RightText())
	assert.Equal(t, int64(2), got[0].Line)
}

func TestLengthMismatchIsReported(t *testing.T) {
	src, logs := alignedSource(t, "0-0\n0-0\n", "le\n", "the\nthe\n")
	_, err := New(Config{Targets: wordset.New("x"), Left: filter.New(nil, ""), Right: filter.New(nil, "")}).Run(src, &memSink{})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "input ends before alignment line 2")
}

func TestSinkErrorAborts(t *testing.T) {
	src, _ := alignedSource(t, "0-0\n", "chat\n", "cat\n")
	boom := errors.New("disk full")
	_, err := New(Config{Targets: wordset.New("cat"), Left: filter.New(nil, ""), Right: filter.New(nil, "")}).Run(src, &memSink{err: boom})
	assert.True(t, errors.Is(err, boom))
}

func TestMono(t *testing.T) {
	rs := openAll(t, map[string]string{"in": "the bank of the river\n, bank account 99 holder\n"})
	sink := &memSink{}
	var progress bytes.Buffer
	e := New(Config{
		HalfWidth: 1,
		Targets:   wordset.New("bank"),
		Right:     filter.New(wordset.New("the", "of"), ""),
		Scope:     ScopeStream,
		Progress:  &progress,
	})
	stats, err := e.Run(NewMono(rs["in"]), sink)
	require.NoError(t, err)
	// admitted stream: bank river bank account holder
	require.Len(t, sink.got, 1)
	in := sink.got[0]
	assert.Equal(t, "river/r account/r ", in.RightText())
	assert.Empty(t, in.Left)
	assert.Empty(t, in.Translation)
	assert.Equal(t, "1_2", in.Name())
	assert.Equal(t, int64(5), stats.Admitted)
	assert.Empty(t, progress.String())
}

func TestProgressDots(t *testing.T) {
	rs := openAll(t, map[string]string{"in": strings.Repeat("cat ", 2003) + "\n"})
	var progress bytes.Buffer
	e := New(Config{Targets: wordset.New("cat"), Right: filter.New(nil, ""), Progress: &progress})
	stats, err := e.Run(NewMono(rs["in"]), &memSink{})
	require.NoError(t, err)
	assert.Equal(t, 2003, stats.Instances)
	assert.Equal(t, "..", progress.String())
}

func TestParseScope(t *testing.T) {
	s, err := ParseScope("stream")
	require.NoError(t, err)
	assert.Equal(t, ScopeStream, s)
	assert.Equal(t, "stream", s.String())
	_, err = ParseScope("sentence")
	assert.Error(t, err)
}
