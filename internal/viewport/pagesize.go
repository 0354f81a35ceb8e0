package viewport

import "math"

const (
	// DefaultRowHeightPx is the fixed height of one rendered row
	DefaultRowHeightPx = 40
	// DefaultFallbackPageSize is used until the surface can be measured
	DefaultFallbackPageSize = 10

	maxPageSize = math.MaxInt32
)

// Measurement is a surface height in pixels, or the absence of one.
type Measurement struct {
	px    float64
	known bool
}

// Unmeasured means the surface has not been laid out yet
var Unmeasured = Measurement{}

// Px wraps a pixel height. Zero, NaN and infinite heights count as unmeasured.
func Px(height float64) Measurement {
	if height == 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		return Unmeasured
	}
	return Measurement{px: height, known: true}
}

// Known reports whether the measurement carries a height
func (m Measurement) Known() bool { return m.known }

// Pixels returns the measured height, or 0 when unmeasured
func (m Measurement) Pixels() float64 { return m.px }

// Calculator turns a pixel height into the number of fully visible rows.
type Calculator struct {
	RowHeightPx      float64
	FallbackPageSize int
}

// NewCalculator returns a calculator; non-positive arguments fall back to the defaults
func NewCalculator(rowHeightPx float64, fallbackPageSize int) Calculator {
	if rowHeightPx <= 0 || math.IsNaN(rowHeightPx) || math.IsInf(rowHeightPx, 0) {
		rowHeightPx = DefaultRowHeightPx
	}
	if fallbackPageSize < 0 {
		fallbackPageSize = DefaultFallbackPageSize
	}
	return Calculator{RowHeightPx: rowHeightPx, FallbackPageSize: fallbackPageSize}
}

// PageSize computes abs(floor(height/rowHeight) - 1).
// The -1 keeps one row for the column header; abs keeps tiny heights from going negative.
// TODO: revisit the -1 if the header ever stops being a single fixed-height row.
func (c Calculator) PageSize(m Measurement) int {
	if !m.Known() {
		return c.FallbackPageSize
	}
	rowHeight := c.RowHeightPx
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeightPx
	}

	rows := math.Floor(m.Pixels()/rowHeight) - 1
	rows = math.Abs(rows)
	if rows > maxPageSize {
		return maxPageSize
	}
	return int(rows)
}
