package viewport

import (
	"log"

	"vtable/internal/domain"
)

// Records is the ordered dataset the viewport windows over
type Records interface {
	Len() int
	Rows(from, to int) []domain.Row
}

type derivationKey struct {
	offset     int
	pageSize   int
	dataLength int
}

// Deriver produces the visible rows, recomputing only when an input changed.
type Deriver struct {
	records    Records
	key        derivationKey
	cached     []domain.Row
	valid      bool
	recomputes int
}

// NewDeriver creates a deriver over records
func NewDeriver(records Records) *Deriver {
	return &Deriver{records: records}
}

// Visible returns records[offset : offset+pageSize], clipped to the data.
// The same slice is returned while offset, page size and data length are unchanged.
func (d *Deriver) Visible(offset, pageSize int) []domain.Row {
	key := derivationKey{offset: offset, pageSize: pageSize, dataLength: d.records.Len()}
	if d.valid && key == d.key {
		return d.cached
	}

	from, to := window(key)
	log.Printf("from: %d to: %d", from, to)
	if from == to {
		d.cached = []domain.Row{}
	} else {
		d.cached = d.records.Rows(from, to)
	}
	d.key = key
	d.valid = true
	d.recomputes++
	return d.cached
}

// Recomputations counts how many times the slice was rebuilt
func (d *Deriver) Recomputations() int { return d.recomputes }

func window(k derivationKey) (int, int) {
	from := k.offset
	if from < 0 {
		from = 0
	}
	if from > k.dataLength {
		from = k.dataLength
	}
	size := k.pageSize
	if size < 0 {
		size = 0
	}
	to := from + size
	if to > k.dataLength || to < from {
		to = k.dataLength
	}
	return from, to
}
