package viewport

import "vtable/internal/domain"

// rows is a minimal Records implementation that counts Rows calls
type rows struct {
	n     int
	calls int
}

func (r *rows) Len() int { return r.n }

func (r *rows) Rows(from, to int) []domain.Row {
	r.calls++
	out := make([]domain.Row, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, domain.Row{ID: i + 1})
	}
	return out
}

// heightFor returns a pixel height that yields pageSize rows with the default calculator
func heightFor(pageSize int) Measurement {
	return Px(float64((pageSize + 1) * DefaultRowHeightPx))
}
