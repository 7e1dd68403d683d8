package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	newStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	trkStyle   = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	fileStyle  = lipgloss.NewStyle().Faint(true)
	labelStyle = lipgloss.NewStyle().Bold(true)
)

func NewLine(w io.Writer, path string, cases int) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+path+"  "+trkStyle.Render(caseCount(cases)))
}

func TrkLine(w io.Writer, path string, cases int) {
	fmt.Fprintln(w, trkStyle.Render("trk")+"  "+path+"  "+trkStyle.Render(caseCount(cases)))
}

func SummaryLine(w io.Writer, files, cases int) {
	fmt.Fprintf(w, "synced %d files, %s\n", files, caseCount(cases))
}

// Warn prints a diagnostic line as is, colored when the terminal allows it.
func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render(msg))
}

// CaseTag is the reference printed for a stored case and accepted by show.
func CaseTag(id int64) string {
	return fmt.Sprintf("@xt:%d", id)
}

// CaseRow prints one list line, padding the tag and file columns.
func CaseRow(w io.Writer, id int64, fileName, params string, idWidth, fileWidth int) {
	tag := fmt.Sprintf("%-*s", idWidth, CaseTag(id))
	file := fmt.Sprintf("%-*s", fileWidth, fileName)
	fmt.Fprintln(w, idStyle.Render(tag)+"  "+fileStyle.Render(file)+"  "+params)
}

func ShowHeader(w io.Writer, id int64, fileName string, line int) {
	fmt.Fprintln(w, idStyle.Render(CaseTag(id))+"  "+fileStyle.Render(fmt.Sprintf("%s:%d", fileName, line)))
}

// ShowField prints one key of a case with its value in table-cell syntax.
func ShowField(w io.Writer, key, literal string, keyWidth int) {
	fmt.Fprintln(w, "  "+labelStyle.Render(fmt.Sprintf("%-*s", keyWidth, key))+"  "+literal)
}

func ShowTitle(w io.Writer, title string) {
	fmt.Fprintln(w, labelStyle.Render("Title:")+" "+title)
}

func caseCount(n int) string {
	if n == 1 {
		return "1 case"
	}
	return fmt.Sprintf("%d cases", n)
}
