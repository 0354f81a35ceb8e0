package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"vtable/internal/domain"
)

const (
	ellipsis    = "…"
	columnGap   = 1
	minColWidth = 3
)

// FitCell truncates or pads s to exactly width terminal cells
func FitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	// Cells are single-line
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, ellipsis)
	}
	return runewidth.FillRight(s, width)
}

// ColumnWidths splits width between the columns. The first column is sized
// to the widest row number; the rest share what is left.
func ColumnWidths(columns []string, dataLength, width int) []int {
	n := len(columns)
	if n == 0 {
		return nil
	}
	available := width - columnGap*(n-1)
	if available < n {
		available = n
	}
	widths := make([]int, n)
	if n == 1 {
		widths[0] = available
		return widths
	}

	first := max(runewidth.StringWidth(columns[0]), len(strconv.Itoa(dataLength)), minColWidth)
	if first > available/n {
		first = available / n
	}
	widths[0] = first

	rest := available - first
	for i := 1; i < n; i++ {
		widths[i] = rest / (n - 1)
	}
	// hand out the remainder left to right
	for i := 1; i <= rest%(n-1); i++ {
		widths[i]++
	}
	return widths
}

// FormatRow joins row fields into one line using the given widths
func FormatRow(fields []string, widths []int) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		value := ""
		if i < len(fields) {
			value = fields[i]
		}
		cells[i] = FitCell(value, w)
	}
	return strings.Join(cells, strings.Repeat(" ", columnGap))
}

// StatusText describes the visible window, e.g. "rows 41-60 of 10,000"
func StatusText(s domain.ViewportState) string {
	if s.DataLength == 0 {
		return "no rows"
	}
	if s.End() == s.ScrollOffset {
		return fmt.Sprintf("%s rows, none visible", humanize.Comma(int64(s.DataLength)))
	}
	return fmt.Sprintf("rows %s-%s of %s",
		humanize.Comma(int64(s.ScrollOffset+1)),
		humanize.Comma(int64(s.End())),
		humanize.Comma(int64(s.DataLength)))
}
