package parser

import (
	"strings"

	"github.com/chriserin/xt/internal/diag"
)

const commentPrefix = "//"

// Parse splits table text into a header and raw data rows without evaluating
// any cell. Comment lines are reported to sink and dropped. The first row whose
// cell count differs from the header stops parsing with ErrMalformedTable.
func Parse(text string, sink diag.Sink) (*Table, error) {
	return scan(text, sink, nil)
}

// scan walks text line by line. Each data row is checked against the header
// and then handed to visit before the next line is read, so an error from
// visit stops the walk where it happened.
func scan(text string, sink diag.Sink, visit func(columns []string, row *Row) error) (*Table, error) {
	sink = diag.OrDiscard(sink)
	lines := strings.Split(text, "\n")
	table := &Table{}
	haveHeader := false

	for i, raw := range lines {
		raw = strings.TrimSuffix(raw, "\r")
		line := Line{Number: i + 1, Raw: raw}

		switch classify(raw, haveHeader) {
		case LineBlank:
			continue
		case LineComment:
			line.Kind = LineComment
			table.Comments = append(table.Comments, line)
			sink.Warn(diag.CommentSkipped(raw))
		case LineHeader:
			table.Columns = splitRow(raw)
			haveHeader = true
		case LineData:
			cells := splitRow(raw)
			if len(cells) != len(table.Columns) {
				return nil, ErrMalformedTable
			}
			row := Row{Line: line.Number, Cells: cells}
			if visit != nil {
				if err := visit(table.Columns, &row); err != nil {
					return nil, err
				}
			}
			table.Rows = append(table.Rows, row)
		}
	}

	return table, nil
}

// classify decides a line's role; the first substantive line is the header.
func classify(raw string, haveHeader bool) LineKind {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return LineBlank
	case strings.HasPrefix(trimmed, commentPrefix):
		return LineComment
	case !haveHeader:
		return LineHeader
	default:
		return LineData
	}
}

// splitRow splits a line on "|" and trims each cell. The empty segments in
// front of a leading pipe and after a trailing pipe are dropped; empty cells
// between two pipes are kept.
func splitRow(raw string) []string {
	parts := strings.Split(strings.TrimSpace(raw), "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
