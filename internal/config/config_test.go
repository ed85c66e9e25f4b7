package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temporal-IPA/hewiktparse/internal/grammar"
)

func TestLoadAndApplyOverridesGenderTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 4\ngender:\n  בדיקה: test-gender\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, c.Workers)

	Apply(c)
	t.Cleanup(func() { delete(grammar.GenderTable, "בדיקה") })

	require.Equal(t, "test-gender", grammar.GenderTable["בדיקה"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApplyNilConfig(t *testing.T) {
	Apply(nil) // must not panic
}
