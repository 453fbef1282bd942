package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Source)
	assert.Equal(t, "dataset/ml-latest-small", cfg.DataDir)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "cinematch", cfg.Mongo.Database)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"source: mongo\n"+
			"top_n: 25\n"+
			"mongo:\n"+
			"  uri: mongodb://localhost:27017\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mongo", cfg.Source)
	assert.Equal(t, 25, cfg.TopN)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	// untouched keys keep their defaults
	assert.Equal(t, "user_ratings", cfg.Mongo.RatingsCollection)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CINEMATCH_TOP_N", "3")
	t.Setenv("CINEMATCH_MONGO__URI", "mongodb://example:27017")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, "mongodb://example:27017", cfg.Mongo.URI)
}

func TestUnknownSourceRejected(t *testing.T) {
	t.Setenv("CINEMATCH_SOURCE", "carrier-pigeon")

	_, err := Load("")
	require.Error(t, err)
}

func TestMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
