package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/xt/internal/config"
)

func runShow(t *testing.T, id, title string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunShow(&buf, config.DefaultConfig(), id, title))
	return buf.String()
}

func TestShow_SingleCase(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeTable(t, "xts/login.xt", loginTable)
	runSync(t)

	out := runShow(t, "2", "")

	assert.Contains(t, out, "@xt:2")
	assert.Contains(t, out, "login.xt:5")
	assert.Regexp(t, `user\s+'bob'`, out)
	assert.Regexp(t, `admin\s+false`, out)
	assert.Regexp(t, `expected\s+'home'`, out)
	assert.NotContains(t, out, "Title:")
}

func TestShow_AcceptsAtXtPrefix(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeTable(t, "xts/login.xt", loginTable)
	runSync(t)

	out := runShow(t, "@xt:1", "")

	assert.Contains(t, out, "@xt:1")
	assert.Contains(t, out, "'ann'")
}

func TestShow_RendersTitle(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeTable(t, "xts/login.xt", loginTable)
	runSync(t)

	out := runShow(t, "1", "${user} lands on ${expected} (admin: ${admin})")

	assert.Contains(t, out, "Title: ann lands on dashboard (admin: true)")
}

func TestShow_TitleError(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeTable(t, "xts/login.xt", loginTable)
	runSync(t)

	var buf bytes.Buffer
	err := RunShow(&buf, config.DefaultConfig(), "1", "${missing}")

	require.Error(t, err)
	assert.Equal(t, "rendering title: missing is not defined", err.Error())
}

func TestShow_KeepsUndefinedFromFile(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeTable(t, "xts/opt.xt", "| a | b |\n| 1 | undefined |\n")
	runSync(t)

	out := runShow(t, "1", "")

	assert.Regexp(t, `b\s+undefined`, out)
}

func TestShow_RemovedFileUsesStoredCase(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeTable(t, "xts/login.xt", loginTable)
	runSync(t)
	require.NoError(t, os.Remove("xts/login.xt"))

	out := runShow(t, "2", "")

	assert.Regexp(t, `user\s+'bob'`, out)
}

func TestShow_UnknownIDReturnsError(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	err := RunShow(&buf, config.DefaultConfig(), "999", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "999")
}

func TestShow_InvalidIDReturnsError(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	err := RunShow(&buf, config.DefaultConfig(), "abc", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid case ID")
}

func TestShow_RequiresInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunShow(&buf, config.DefaultConfig(), "1", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run `xt init` first")
}
