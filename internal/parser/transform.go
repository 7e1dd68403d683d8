package parser

import (
	"github.com/chriserin/xt/internal/diag"
	"github.com/chriserin/xt/internal/expr"
	"github.com/chriserin/xt/internal/value"
)

// ParseRows parses table text and evaluates each data row as soon as its cell
// count has been checked. Rows are handled in order; the first malformed row
// or evaluation error is returned as is and nothing after it is read.
func ParseRows(text string, sink diag.Sink) (*Table, error) {
	return scan(text, sink, func(columns []string, row *Row) error {
		params, err := evalRow(columns, row.Cells)
		if err != nil {
			return err
		}
		row.Params = params
		return nil
	})
}

// ParseTable parses table text into parameter objects, one per data row.
func ParseTable(text string, sink diag.Sink) ([]*value.Object, error) {
	table, err := ParseRows(text, sink)
	if err != nil {
		return nil, err
	}
	params := make([]*value.Object, 0, len(table.Rows))
	for _, row := range table.Rows {
		params = append(params, row.Params)
	}
	return params, nil
}

// evalRow builds one parameter object. Keys follow the header's column order.
func evalRow(columns, cells []string) (*value.Object, error) {
	values := make([]value.Value, len(cells))
	// Cells are evaluated from the last column to the first.
	for i := len(cells) - 1; i >= 0; i-- {
		v, err := evalCell(cells[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	obj := value.NewObject()
	for i, column := range columns {
		obj.Set(column, values[i])
	}
	return obj, nil
}

// evalCell evaluates a cell with an empty scope. An empty cell is undefined.
func evalCell(src string) (value.Value, error) {
	if src == "" {
		return value.Undefined{}, nil
	}
	return expr.Eval(src, nil)
}
