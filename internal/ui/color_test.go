package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncLines(t *testing.T) {
	var buf bytes.Buffer
	NewLine(&buf, "xts/a.xt", 1)
	TrkLine(&buf, "xts/b.xt", 3)
	SummaryLine(&buf, 2, 4)

	out := buf.String()
	assert.Contains(t, out, "new  xts/a.xt")
	assert.Contains(t, out, "1 case\n")
	assert.Contains(t, out, "trk  xts/b.xt")
	assert.Contains(t, out, "3 cases")
	assert.Contains(t, out, "synced 2 files, 4 cases")
}

func TestCaseRow_PadsColumns(t *testing.T) {
	var buf bytes.Buffer
	CaseRow(&buf, 7, "a.xt", `{"a":1}`, len("@xt:10"), len("long.xt"))
	assert.Regexp(t, `^@xt:7\s+a\.xt\s+\{"a":1\}\n$`, buf.String())
}

func TestWarn_KeepsMessage(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "[WARN] Case:[// x] is being skipped caused of comment.")
	assert.Contains(t, buf.String(), "[WARN] Case:[// x] is being skipped caused of comment.")
}
