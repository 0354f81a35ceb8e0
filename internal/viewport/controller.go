package viewport

import "math"

// Bounds are the inputs the scroll offset is clamped against
type Bounds struct {
	DataLength int
	PageSize   int
}

// MaxOffset is the largest valid scroll offset, never negative
func (b Bounds) MaxOffset() int {
	limit := b.DataLength - b.PageSize
	if limit < 0 {
		return 0
	}
	return limit
}

// Clamp restricts an offset to [0, MaxOffset]
func (b Bounds) Clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if limit := b.MaxOffset(); offset >= limit {
		return limit
	}
	return offset
}

// Update computes a new offset from the latest committed one
type Update func(current int) int

// To sets an absolute offset
func To(offset int) Update {
	return func(int) int { return offset }
}

// By moves the offset by delta rows
func By(delta int) Update {
	return func(current int) int { return addSaturating(current, delta) }
}

// Controller holds the scroll offset for one set of bounds.
// A bounds change must go through Rebind so clamping never uses stale values.
type Controller struct {
	bounds Bounds
	offset int
}

// NewController starts at offset 0
func NewController(b Bounds) *Controller {
	return &Controller{bounds: b}
}

// Rebind returns a controller for new bounds carrying the current offset, re-clamped
func (c *Controller) Rebind(b Bounds) *Controller {
	return &Controller{bounds: b, offset: b.Clamp(c.offset)}
}

// SetScrollPosition applies u to the committed offset and clamps the result
func (c *Controller) SetScrollPosition(u Update) int {
	if u == nil {
		return c.offset
	}
	c.offset = c.bounds.Clamp(u(c.offset))
	return c.offset
}

// Offset returns the committed offset
func (c *Controller) Offset() int { return c.offset }

// Bounds returns the bounds this controller clamps against
func (c *Controller) Bounds() Bounds { return c.bounds }

func addSaturating(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}
