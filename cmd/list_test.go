package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/xt/internal/config"
)

const regionTable = `
| tag  | plan       | seats |
| 'us' | 'personal' | 1     |
| 'uk' | 'company'  | 20    |
| 'ca' | 'company'  | 0     |
`

func runList(t *testing.T, file string, skips ...string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunList(&buf, config.DefaultConfig(), file, skips))
	return buf.String()
}

func setupTables(t *testing.T) {
	t.Helper()
	inTempDir(t)
	runInit(t)
	writeTable(t, "xts/region.xt", regionTable)
	writeTable(t, "xts/login.xt", loginTable)
	runSync(t)
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestList_AllCases(t *testing.T) {
	setupTables(t)

	out := runList(t, "")

	lines := nonEmptyLines(out)
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "login.xt")
	assert.Contains(t, lines[0], `{"user":"ann","admin":true,"expected":"dashboard"}`)
	assert.Contains(t, lines[2], "region.xt")
	assert.Contains(t, lines[2], `{"tag":"us","plan":"personal","seats":1}`)
}

func TestList_ShowsCaseTags(t *testing.T) {
	setupTables(t)

	out := runList(t, "")

	assert.Contains(t, out, "@xt:1")
	assert.Contains(t, out, "@xt:5")
}

func TestList_FileNameShowsBasename(t *testing.T) {
	setupTables(t)

	out := runList(t, "")

	assert.Contains(t, out, "region.xt")
	assert.NotContains(t, out, "xts/region.xt")
}

func TestList_ColumnsAligned(t *testing.T) {
	setupTables(t)

	lines := nonEmptyLines(runList(t, ""))
	require.NotEmpty(t, lines)

	col := strings.Index(lines[0], "{")
	for _, line := range lines {
		assert.Equal(t, col, strings.Index(line, "{"), line)
	}
}

func TestList_FilterByFile(t *testing.T) {
	setupTables(t)

	byBase := runList(t, "region.xt")
	byPath := runList(t, "xts/region.xt")

	assert.Len(t, nonEmptyLines(byBase), 3)
	assert.NotContains(t, byBase, "login.xt")
	assert.Equal(t, byBase, byPath)
}

func TestList_SkipByList(t *testing.T) {
	setupTables(t)

	out := runList(t, "region.xt", "tag=us,ca")

	lines := nonEmptyLines(out)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"tag":"uk"`)
}

func TestList_SkipByScalar(t *testing.T) {
	setupTables(t)

	out := runList(t, "region.xt", "plan=company")

	lines := nonEmptyLines(out)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"tag":"us"`)
}

func TestList_SkipNeverDropsFalsyValues(t *testing.T) {
	setupTables(t)

	out := runList(t, "region.xt", "seats=0,1")

	lines := nonEmptyLines(out)
	require.Len(t, lines, 2)
	assert.Contains(t, out, `"tag":"uk"`)
	assert.Contains(t, out, `"tag":"ca"`)
}

func TestList_SkipNumbersAreNotStrings(t *testing.T) {
	setupTables(t)

	out := runList(t, "region.xt", "seats='20'")

	assert.Len(t, nonEmptyLines(out), 3)
}

func TestList_InvalidSkip(t *testing.T) {
	setupTables(t)

	var buf bytes.Buffer
	err := RunList(&buf, config.DefaultConfig(), "", []string{"tag"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --skip")
}

func TestList_EmptyWhenNoCases(t *testing.T) {
	inTempDir(t)
	runInit(t)

	assert.Empty(t, runList(t, ""))
}

func TestList_RequiresInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunList(&buf, config.DefaultConfig(), "", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run `xt init` first")
}
