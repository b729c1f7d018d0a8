package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haliax/globc/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(os.TempDir(), "does-not-exist-globc.json"))
	assert.NoError(t, err)
	assert.False(t, cfg.Options.NoCase)
	assert.Empty(t, cfg.Patterns)
}

func TestLoadParsesPatternsAndOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "globc.json")
	body := `{
		"nocase": true,
		"dot": true,
		"patterns": [
			{"name": "js", "pattern": "*.js"},
			{"name": "ts", "pattern": "*.ts"}
		]
	}`
	assert.NoError(t, ioutil.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	assert.NoError(t, err)
	assert.True(t, cfg.Options.NoCase)
	assert.True(t, cfg.Options.Dot)
	assert.Equal(t, "*.js", cfg.Patterns["js"])
	assert.Equal(t, "*.ts", cfg.Resolve("ts"))
	assert.Equal(t, "*.go", cfg.Resolve("*.go"))
}

func TestLoadRejectsInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "globc.json")
	body := `{"patterns": [{"name": "", "pattern": ""}]}`
	assert.NoError(t, ioutil.WriteFile(path, []byte(body), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
