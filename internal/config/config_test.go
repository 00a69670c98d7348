package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdresser/devtools/internal/config"
)

func writeConfig(t *testing.T, dir string, content string) {
	t.Helper()

	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.GitStat{}, cfg)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "days: 90\nauthor: Ada\nexport: out.json\nlimit: 10\n")

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, config.GitStat{
		Days:   90,
		Author: "Ada",
		Export: "out.json",
		Limit:  10,
	}, cfg)
}

func TestLoadPartial(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "days: 14\n")

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Days)
	assert.Empty(t, cfg.Author)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "days: [not an int\n")

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestLoadNegativeDays(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "days: -5\n")

	_, err := config.Load(dir)
	assert.Error(t, err)
}
