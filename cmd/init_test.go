package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/xt/internal/config"
	"github.com/chriserin/xt/internal/db"
)

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
	return dir
}

func runInit(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunInit(&buf, config.DefaultConfig()))
	return buf.String()
}

func TestInit_CreatesTableDirectory(t *testing.T) {
	dir := inTempDir(t)
	out := runInit(t)

	info, err := os.Stat(filepath.Join(dir, "xts"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Contains(t, out, "xts/ created")
}

func TestInit_TableDirectoryAlreadyExists(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "xts"), 0o755))

	out := runInit(t)

	info, err := os.Stat(filepath.Join(dir, "xts"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Contains(t, out, "xts/ already exists")
}

func TestInit_InitializesSQLiteDatabase(t *testing.T) {
	dir := inTempDir(t)
	out := runInit(t)

	dbPath := filepath.Join(dir, "xts", "xt.db")
	_, err := os.Stat(dbPath)
	require.NoError(t, err)

	sqlDB, err := db.Open(dbPath)
	require.NoError(t, err)
	defer sqlDB.Close()

	var mode string
	require.NoError(t, sqlDB.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
	assert.Contains(t, out, "xts/xt.db created")
}

func TestInit_DatabaseAlreadyExists(t *testing.T) {
	inTempDir(t)
	runInit(t)

	out := runInit(t)
	assert.Contains(t, out, "xts/xt.db already exists")
}

func TestInit_AddsMigrationSystem(t *testing.T) {
	inTempDir(t)
	runInit(t)

	sqlDB, err := db.Open("xts/xt.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	var version int
	require.NoError(t, sqlDB.QueryRow("SELECT version FROM schema_version").Scan(&version))
	assert.Equal(t, len(db.All), version)
}

func TestInit_AddsToGitignore(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("node_modules\n"), 0o644))

	out := runInit(t)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "xts/xt.db\n")
	assert.Contains(t, string(data), "node_modules\n")
	assert.Contains(t, out, "xts/xt.db added to .gitignore")
}

func TestInit_GitignoreAlreadyHasEntry(t *testing.T) {
	dir := inTempDir(t)
	original := "node_modules\nxts/xt.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(original), 0o644))

	out := runInit(t)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
	assert.Contains(t, out, "xts/xt.db already in .gitignore")
}

func TestInit_NoGitignoreExists(t *testing.T) {
	dir := inTempDir(t)
	out := runInit(t)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "xts/xt.db\n", string(data))
	assert.Contains(t, out, ".gitignore created")
	assert.Contains(t, out, "xts/xt.db added to .gitignore")
}

func TestInit_UsesConfiguredPaths(t *testing.T) {
	dir := inTempDir(t)
	cfg := config.DefaultConfig()
	cfg.Dir = "tables"
	cfg.DB = filepath.Join("state", "catalog.db")

	var buf bytes.Buffer
	require.NoError(t, RunInit(&buf, cfg))

	_, err := os.Stat(filepath.Join(dir, "tables"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "state", "catalog.db"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "state/catalog.db\n", string(data))
	assert.Contains(t, buf.String(), "tables/ created")
}
