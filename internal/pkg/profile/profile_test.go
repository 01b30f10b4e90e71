package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStop(t *testing.T) {
	dir := t.TempDir()
	p := &Profile{CPU: filepath.Join(dir, "cpu.prof"), Mem: filepath.Join(dir, "mem.prof")}
	require.NoError(t, p.Start(nil))
	require.NoError(t, p.Stop(nil))
	for _, f := range []string{p.CPU, p.Mem} {
		st, err := os.Stat(f)
		require.NoError(t, err)
		assert.True(t, st.Size() > 0, f)
	}
}

func TestDisabled(t *testing.T) {
	p := &Profile{}
	assert.NoError(t, p.Start(nil))
	assert.NoError(t, p.Stop(nil))
	assert.Len(t, p.Flags(), 2)
}
