package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTemplateIsLoadable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gkestack.yaml")
	require.NoError(t, WriteTemplate(path))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "my-platform", cfg.Name)
	assert.Equal(t, "REGULAR", cfg.Cluster.ReleaseChannel)
	assert.Len(t, cfg.NodePools, 2)
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gkestack.yaml")
	require.NoError(t, WriteTemplate(path))

	err := WriteTemplate(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to overwrite")
}

func TestWriteFileRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Config
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, cfg.Name, loaded.Name)
	assert.Equal(t, cfg.Region, loaded.Region)
	assert.Equal(t, cfg.State.Bucket, loaded.State.Bucket)
}

func TestWriteFileRefusesOverwrite(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(cfg, path))

	err := WriteFile(cfg, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to overwrite")
}
