package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsDir_EnvOverride(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")

	assert.Equal(t, "/custom/migrations", migrationsDir("postgres"))
}

func TestMigrationsDir_Default(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")

	assert.Equal(t, filepath.Join("internal", "store", "migrations", "sqlite"), migrationsDir("sqlite"))
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"up", "down", "status", "create"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestCreateCmd_RequiresName(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"create"})

	assert.Error(t, root.Execute())
}

func TestCreateCmd_NumbersSequentially(t *testing.T) {
	dir := t.TempDir()
	existing := "-- +goose Up\nSELECT 1;\n-- +goose Down\nSELECT 1;\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00001_create_documents.sql"), []byte(existing), 0o644))
	t.Setenv("MIGRATIONS_DIR", dir)

	root := newRootCmd()
	root.SetArgs([]string{"create", "add_books_title_index", "--driver", "sqlite"})
	require.NoError(t, root.Execute())

	_, err := os.Stat(filepath.Join(dir, "00002_add_books_title_index.sql"))
	assert.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
