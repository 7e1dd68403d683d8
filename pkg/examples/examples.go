// Package examples drives table-driven tests from example tables.
//
// A table is pipe-delimited text. The first line names the columns and every
// later line is one case whose cells are literal expressions:
//
//	| user  | admin | expected    |
//	| 'ann' | true  | 'dashboard' |
//	// lines starting with // are skipped with a warning
//	| 'bob' | false | 'home'      |
//
// Run parses the table and starts one subtest per row, naming it by rendering
// the step title, where ${...} placeholders are evaluated against the row.
package examples

import (
	"strings"
	"testing"

	"github.com/chriserin/xt/internal/diag"
	"github.com/chriserin/xt/internal/filter"
	"github.com/chriserin/xt/internal/parser"
	"github.com/chriserin/xt/internal/template"
	"github.com/chriserin/xt/internal/value"
)

type (
	Value  = value.Value
	Object = value.Object
	List   = value.List
	Sink   = diag.Sink
	Filter = filter.Func
)

// ErrMalformedTable is returned when a row and the header differ in cell count.
var ErrMalformedTable = parser.ErrMalformedTable

// ParseTable turns table text into one parameter object per data row.
// Skipped comment lines are reported to sink; nil discards them.
func ParseTable(text string, sink Sink) ([]*Object, error) {
	return parser.ParseTable(text, sink)
}

// Compile replaces every ${expr} in tmpl with expr evaluated against context.
func Compile(tmpl string, context *Object) (string, error) {
	return template.Compile(tmpl, context)
}

// Skip drops the params matched by exclude. See filter.Matches.
func Skip(params []*Object, exclude *Object) []*Object {
	return filter.Skip(params, exclude)
}

// Exclude returns a Filter that applies Skip with exclude.
func Exclude(exclude *Object) Filter {
	return filter.Exclude(exclude)
}

// Step is a titled test step, optionally backed by an example table.
type Step struct {
	Title    string
	Examples string
	Filters  []Filter

	// Sink receives comment warnings. When nil they are logged with slog.
	Sink Sink
}

// Case is one row of a step's table with its rendered title.
type Case struct {
	Index   int
	Title   string
	Example *Object
}

// Cases parses the step's table, applies its filters in order and renders the
// title for every remaining row. A step without a table has a single case with
// the raw title and a nil example.
func Cases(step Step) ([]Case, error) {
	if strings.TrimSpace(step.Examples) == "" {
		return []Case{{Title: step.Title}}, nil
	}

	sink := step.Sink
	if sink == nil {
		sink = diag.NewSlog(nil)
	}

	params, err := parser.ParseTable(step.Examples, sink)
	if err != nil {
		return nil, err
	}
	params = filter.Chain(step.Filters...)(params)

	cases := make([]Case, 0, len(params))
	for i, p := range params {
		title, err := template.Compile(step.Title, p)
		if err != nil {
			return nil, err
		}
		cases = append(cases, Case{Index: i, Title: title, Example: p})
	}
	return cases, nil
}

// Run runs fn as a subtest of t for every case of step. A table or title error
// fails t before any subtest starts.
func Run(t *testing.T, step Step, fn func(t *testing.T, c Case)) {
	t.Helper()
	cases, err := Cases(step)
	if err != nil {
		t.Fatalf("examples for %q: %v", step.Title, err)
	}
	for _, c := range cases {
		t.Run(c.Title, func(t *testing.T) {
			fn(t, c)
		})
	}
}
