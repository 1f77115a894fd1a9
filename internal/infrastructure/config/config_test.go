package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("/work")

	assert.Equal(t, filepath.Join("/work", ".biopax", "archive.db"), cfg.Archive.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestWriteDefaultAndLoad(t *testing.T) {
	dir := t.TempDir()

	assert.False(t, Exists(dir))
	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultConfigDir, DefaultArchiveFile), cfg.Archive.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestWriteDefault_AlreadyExists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))

	err := WriteDefault(dir)
	assert.ErrorContains(t, err, "already exists")
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "config file not found")
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))

	content := "archive:\n  path: /tmp/custom.db\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.Archive.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))

	content := "log:\n  level: warn\n"
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, DefaultConfigDir, DefaultArchiveFile), cfg.Archive.Path)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("not: [valid"), 0644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "parsing config file")
}
