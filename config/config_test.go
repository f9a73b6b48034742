package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"esparse", "--range", "--loc", "--comment"}, cfg.Parser.Command)
	assert.Equal(t, "gpt-4", cfg.OpenAI.Model)
	assert.Equal(t, 8192, cfg.OpenAI.MaxTokens)
	assert.InDelta(t, 0.2, cfg.OpenAI.Temperature, 0.001)
	assert.True(t, cfg.OpenAI.SuggestNames)
	assert.True(t, cfg.OpenAI.AddComments)
	assert.Equal(t, "F_", cfg.Rename.OverridePrefix)
	assert.True(t, cfg.Rename.XrefSuffix)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unmangle.yaml")
	content := `
parser:
  command: ["node", "parse.js"]
openai:
  suggest_names: false
  model: gpt-4o
rename:
  functions: ["f_a", "f_b"]
  lines: [10, 20]
  xref_suffix: false
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"node", "parse.js"}, cfg.Parser.Command)
	assert.False(t, cfg.OpenAI.SuggestNames)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, []string{"f_a", "f_b"}, cfg.Rename.Functions)
	assert.Equal(t, []int{10, 20}, cfg.Rename.Lines)
	assert.False(t, cfg.Rename.XrefSuffix)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched keys keep their defaults.
	assert.True(t, cfg.OpenAI.AddComments)
	assert.Equal(t, 8192, cfg.OpenAI.MaxTokens)
	assert.Equal(t, "F_", cfg.Rename.OverridePrefix)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })

	cfg := LoadOrDefault()
	assert.Equal(t, DefaultConfig(), cfg)
}
