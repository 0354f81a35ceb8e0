package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vtable/internal/domain"
)

// Lines drawn around the table body: title and status, plus the help line when shown
const (
	titleLines  = 1
	statusLines = 1
	helpLines   = 1
)

// ChromeLines is the number of terminal lines not available to the table body.
// The column header is part of the body; the page-size formula reserves it.
func ChromeLines(showHelp bool) int {
	n := titleLines + statusLines
	if showHelp {
		n += helpLines
	}
	return n
}

// TableState contains all the state needed for rendering
type TableState struct {
	Title         string
	Width         int
	Height        int
	Columns       []string
	Rows          []domain.Row
	Viewport      domain.ViewportState
	StatusMessage string
	ErrorMessage  string
	HelpView      string // empty hides the help line
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state TableState) string {
	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}
	// Account for the main container padding
	inner := width - r.styles.Main.GetHorizontalPadding()
	if inner < 1 {
		inner = 1
	}

	lines := make([]string, 0, state.Height)
	lines = append(lines, r.styles.Title.Render(FitCell(state.Title, inner)))

	widths := ColumnWidths(state.Columns, state.Viewport.DataLength, inner)
	lines = append(lines, r.styles.Header.Render(FormatRow(state.Columns, widths)))

	for i, row := range state.Rows {
		style := r.styles.Row
		if (state.Viewport.ScrollOffset+i)%2 == 1 {
			style = style.Inherit(r.styles.RowAlt)
		}
		lines = append(lines, style.Render(FormatRow(row.Fields, widths)))
	}

	footer := []string{r.renderStatus(state, inner)}
	if state.HelpView != "" {
		footer = append(footer, r.styles.Help.Render(state.HelpView))
	}

	// Pad so the status line sits at the bottom of the terminal
	if state.Height > 0 {
		if padding := state.Height - len(lines) - len(footer); padding > 0 {
			lines = append(lines, make([]string, padding)...)
		}
	}
	lines = append(lines, footer...)

	return r.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (r *Renderer) renderStatus(state TableState, width int) string {
	if state.ErrorMessage != "" {
		return r.styles.Error.Render(FitCell(state.ErrorMessage, width))
	}
	status := StatusText(state.Viewport)
	if state.StatusMessage != "" {
		status = status + "  " + state.StatusMessage
	}
	return r.styles.Status.Render(FitCell(status, width))
}

// PlainText renders rows as tab-separated lines with a header, for pagers and exports
func PlainText(columns []string, rows []domain.Row) string {
	var b strings.Builder
	b.WriteString(strings.Join(columns, "\t"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row.Fields, "\t"))
		b.WriteString("\n")
	}
	return b.String()
}
