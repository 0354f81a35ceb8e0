package source

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"vtable/internal/domain"
)

// DateLayout is the timestamp format of generated rows
const DateLayout = "2006-01-02 15:04:05"

// RowSource supplies an ordered, immutable sequence of rows
type RowSource interface {
	Columns() []string
	Len() int
	Rows(from, to int) []domain.Row
}

// Slice is an in-memory RowSource
type Slice struct {
	columns []string
	rows    []domain.Row
}

// NewSlice wraps rows that are already in display order
func NewSlice(columns []string, rows []domain.Row) *Slice {
	return &Slice{columns: columns, rows: rows}
}

// Columns returns the header labels
func (s *Slice) Columns() []string { return s.columns }

// Len returns the number of rows
func (s *Slice) Len() int { return len(s.rows) }

// Rows returns rows[from:to] clipped to the data. The result shares memory with the source.
func (s *Slice) Rows(from, to int) []domain.Row {
	if from < 0 {
		from = 0
	}
	if to > len(s.rows) {
		to = len(s.rows)
	}
	if from >= to {
		return []domain.Row{}
	}
	return s.rows[from:to:to]
}

// Generate builds n rows of synthetic data: a 1-based id, a random identifier and a timestamp
func Generate(n int, now time.Time) *Slice {
	if n < 0 {
		n = 0
	}
	date := now.Format(DateLayout)
	rows := make([]domain.Row, n)
	for i := range rows {
		id := i + 1
		rows[i] = domain.Row{
			ID:     id,
			Fields: []string{strconv.Itoa(id), uuid.NewString(), date},
		}
	}
	return NewSlice([]string{"#", "UUID", "Date"}, rows)
}
