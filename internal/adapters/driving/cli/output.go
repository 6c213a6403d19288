package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// terminalWidth reports whether w is a terminal and, if so, its width.
// The width is 0 when it cannot be determined.
func terminalWidth(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok {
		return false, 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return false, 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return true, 0
	}
	return true, width
}

// renderTable draws rows under headers. Terminals get rounded borders
// and a table fitted to the window; other writers get plain ASCII.
func renderTable(w io.Writer, headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	tty, width := terminalWidth(w)
	if !tty {
		return t.Border(lipgloss.ASCIIBorder()).String()
	}

	t = t.Border(lipgloss.RoundedBorder()).BorderStyle(borderStyle)
	if width > 0 {
		t = t.Width(width)
	}
	return t.String()
}
