package parser

import (
	"errors"

	"github.com/chriserin/xt/internal/value"
)

// Table structure as read from the text. Params is only set by ParseRows.

// ErrMalformedTable is returned when a data row does not have exactly one cell
// per header column. The message is the same for every row.
var ErrMalformedTable = errors.New("malformed table: every row must have the same number of cells as the header")

type LineKind int

const (
	LineBlank LineKind = iota
	LineComment
	LineHeader
	LineData
)

type Line struct {
	Number int    // 1-based
	Raw    string // as written, without the line terminator
	Kind   LineKind
}

type Table struct {
	Columns  []string
	Rows     []Row
	Comments []Line
}

type Row struct {
	Line   int      // 1-based line number
	Cells  []string // trimmed cell source text, one per column
	Params *value.Object
}
