package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/xt/internal/config"
)

func runStatus(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunStatus(&buf, config.DefaultConfig()))
	return buf.String()
}

func TestStatus_NoFiles(t *testing.T) {
	inTempDir(t)
	runInit(t)

	assert.Equal(t, "Files: 0\nCases: 0\n", runStatus(t))
}

func TestStatus_CountsPerFile(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeTable(t, "xts/region.xt", regionTable)
	writeTable(t, "xts/login.xt", loginTable)
	writeTable(t, "xts/empty.xt", "")
	runSync(t)

	out := runStatus(t)

	assert.Equal(t, "Files: 3\nCases: 5\n  region.xt: 3\n  login.xt: 2\n  empty.xt: 0\n", out)
}

func TestStatus_RequiresInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunStatus(&buf, config.DefaultConfig())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run `xt init` first")
}
