package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("segment:\n  max_length: 30\nspeech:\n  command: [say, -v, Tingting]\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Segment.MaxLength)
	assert.Equal(t, 6, cfg.Segment.MinLength)
	assert.Equal(t, []string{"say", "-v", "Tingting"}, cfg.Speech.Command)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("segment: [\n"), 0644))
	_, err := Load(bad)
	assert.ErrorContains(t, err, "parsing config file")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("segment:\n  min_length: 40\n"), 0644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "exceeds max_length")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.Dictionary.DataDir = "/var/lib/readafter"
	cfg.Speech.Repeat = 3

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Segment.MaxDepth = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Speech.SecondsPerSegment = -1
	assert.Error(t, cfg.Validate())
}

func TestDataDir(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "/cfg", cfg.DataDir("/cfg"))

	cfg.Dictionary.DataDir = "/data"
	assert.Equal(t, "/data", cfg.DataDir("/cfg"))
}
