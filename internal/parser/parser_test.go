package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/xt/internal/diag"
)

func TestParse_HeaderAndRows(t *testing.T) {
	text := `
    | accountTag   | isContactType | smsMessage          | sum          |
    | 'us'         | false         | {a:1}               | 1            |
    | 'uk'         | true          | {}                  | 1234         |
  `
	table, err := Parse(text, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"accountTag", "isContactType", "smsMessage", "sum"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"'us'", "false", "{a:1}", "1"}, table.Rows[0].Cells)
	assert.Equal(t, 3, table.Rows[0].Line)
	assert.Equal(t, []string{"'uk'", "true", "{}", "1234"}, table.Rows[1].Cells)
	assert.Equal(t, 4, table.Rows[1].Line)
}

func TestParse_WithoutOuterPipes(t *testing.T) {
	table, err := Parse("a | b\n1 | 2", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"1", "2"}, table.Rows[0].Cells)
}

func TestParse_CRLF(t *testing.T) {
	table, err := Parse("| a |\r\n// note\r\n| 1 |\r\n", nil)
	require.NoError(t, err)
	require.Len(t, table.Comments, 1)
	assert.Equal(t, "// note", table.Comments[0].Raw)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"1"}, table.Rows[0].Cells)
}

func TestParse_EmptyText(t *testing.T) {
	table, err := Parse("   \n\n", nil)
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestParse_HeaderOnly(t *testing.T) {
	table, err := Parse("| name | value |", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "value"}, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestParse_CommentsAreReported(t *testing.T) {
	var rec diag.Recorder
	text := `
    // Comment before the header
    | name | value |
    // Comment at the beginning
    | 'test1' | 100 |
      // Comment with leading whitespace
    | 'test2' | 200 |
    // Comment at the end
  `
	table, err := Parse(text, &rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "value"}, table.Columns)
	require.Len(t, table.Rows, 2)
	require.Len(t, table.Comments, 4)
	assert.Equal(t, 2, table.Comments[0].Number)
	assert.Equal(t, LineComment, table.Comments[0].Kind)

	assert.Equal(t, []string{
		"[WARN] Case:[    // Comment before the header] is being skipped caused of comment.",
		"[WARN] Case:[    // Comment at the beginning] is being skipped caused of comment.",
		"[WARN] Case:[      // Comment with leading whitespace] is being skipped caused of comment.",
		"[WARN] Case:[    // Comment at the end] is being skipped caused of comment.",
	}, rec.Messages())
}

func TestParse_ExtraTrailingCell(t *testing.T) {
	text := `
      | accountTag   | contactType | smsMessage |
      | us           | personal    | aaa        |
      | uk           | company     | bbb        |
      | ca           | all         | xxx        | |
    `
	_, err := Parse(text, nil)
	require.ErrorIs(t, err, ErrMalformedTable)
}

func TestParse_EmptyHeaderColumn(t *testing.T) {
	text := `
      | accountTag  | | contactType | smsMessage |
      | us           | personal    | aaa        |
    `
	_, err := Parse(text, nil)
	require.ErrorIs(t, err, ErrMalformedTable)
}

func TestParse_MissingCell(t *testing.T) {
	text := `
      | accountTag | contactType | smsMessage |
      | 'us'       | 'personal'  | 'hi'       |
      | 'uk'       | 'company'   |
    `
	_, err := Parse(text, nil)
	require.ErrorIs(t, err, ErrMalformedTable)
	assert.Equal(t, ErrMalformedTable.Error(), err.Error())
}

func TestParse_InteriorEmptyCellsCount(t *testing.T) {
	text := `
      | accountTag  | contactType | smsMessage |
      | ca      ||   |  all         | aaa        |
    `
	_, err := Parse(text, nil)
	require.ErrorIs(t, err, ErrMalformedTable)
}

func TestParse_EmptyCellKept(t *testing.T) {
	table, err := Parse("| a | b | c |\n| 1 |   | 3 |", nil)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"1", "", "3"}, table.Rows[0].Cells)
}

func TestSplitRow(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitRow("| a | b |"))
	assert.Equal(t, []string{"a", "b"}, splitRow("  a|b  "))
	assert.Equal(t, []string{"a", "", "b"}, splitRow("|a||b|"))
	assert.Equal(t, []string{}, splitRow("|"))
}
