package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path,
		[]byte("NEO4J_URI=bolt://localhost:7687\nNEO4J_USER=neo4j\nNEO4J_PASSWORD=secret\n"), 0o600))

	var config Env
	require.NoError(t, loadEnv(path, true, &config))
	assert.Equal(t, "bolt://localhost:7687", config.Neo4J.Uri)
	assert.Equal(t, "neo4j", config.Neo4J.User)
	assert.Equal(t, "secret", config.Neo4J.Pass)
}

func TestLoadEnvMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), ".env")
	var config Env
	assert.NoError(t, loadEnv(missing, false, &config))
	assert.Error(t, loadEnv(missing, true, &config))
}
