package viewport

import (
	"log"
	"math"

	"vtable/internal/domain"
	"vtable/internal/eventbus"
)

// Widget is the viewport controller for one table instance.
// All methods must be called from the surface's event loop.
type Widget struct {
	calc     Calculator
	records  Records
	bus      eventbus.EventBus
	pageSize int
	scroll   *Controller
	deriver  *Deriver

	// fractional wheel rows not yet applied
	wheelRemainder float64

	unsubscribe func()
}

// NewWidget creates a widget at offset 0 with the fallback page size.
// A nil bus gets a private one.
func NewWidget(records Records, calc Calculator, bus eventbus.EventBus) *Widget {
	if bus == nil {
		bus = eventbus.New()
	}
	w := &Widget{
		calc:     calc,
		records:  records,
		bus:      bus,
		pageSize: calc.PageSize(Unmeasured),
		deriver:  NewDeriver(records),
	}
	w.scroll = NewController(w.bounds())
	return w
}

// Mount sizes the widget from the initial measurement and starts reacting to resize events.
// Mounting twice replaces the earlier subscription.
func (w *Widget) Mount(initial Measurement) {
	if w.unsubscribe != nil {
		w.unsubscribe()
	}
	w.unsubscribe = w.bus.Subscribe(domain.EventResize, w.onResize)
	w.Resize(initial)
}

// Unmount releases the resize subscription. Safe to call more than once.
func (w *Widget) Unmount() {
	if w.unsubscribe == nil {
		return
	}
	w.unsubscribe()
	w.unsubscribe = nil
}

// Mounted reports whether the widget is listening for resizes
func (w *Widget) Mounted() bool { return w.unsubscribe != nil }

func (w *Widget) onResize(e domain.DomainEvent) {
	ev, ok := e.(domain.ResizeEvent)
	if !ok {
		return
	}
	if !ev.Measured {
		w.Resize(Unmeasured)
		return
	}
	w.Resize(Px(ev.HeightPx))
}

// Resize recomputes the page size and rebinds the scroll controller to the new bounds
func (w *Widget) Resize(m Measurement) {
	old := w.State()
	w.pageSize = w.calc.PageSize(m)
	w.rebind()
	w.publishChange(old)
}

// Wheel scrolls by a signed row delta. Fractions carry over to the next
// call, so two half-row deltas move one row.
func (w *Widget) Wheel(deltaY float64) {
	if math.IsNaN(deltaY) {
		return
	}
	total := w.wheelRemainder + deltaY
	whole := math.Trunc(total)
	w.wheelRemainder = total - whole
	if math.IsNaN(w.wheelRemainder) || math.IsInf(w.wheelRemainder, 0) {
		w.wheelRemainder = 0
	}
	w.SetScrollPosition(InterpretWheel(whole))
}

// KeyDown applies a navigation key and reports whether it was consumed
func (w *Widget) KeyDown(ev KeyEvent) bool {
	u, ok := InterpretKey(ev, w.pageSize)
	if !ok {
		return false
	}
	w.SetScrollPosition(u)
	return true
}

// SetScrollPosition applies an update through the clamp
func (w *Widget) SetScrollPosition(u Update) {
	old := w.State()
	// The row count is read on every update so a source that grew is never clamped against stale bounds
	if w.scroll.Bounds() != w.bounds() {
		w.rebind()
	}
	w.scroll.SetScrollPosition(u)
	w.publishChange(old)
}

// Visible returns the rows currently in the window
func (w *Widget) Visible() []domain.Row {
	if w.scroll.Bounds() != w.bounds() {
		w.rebind()
	}
	return w.deriver.Visible(w.scroll.Offset(), w.pageSize)
}

// State returns a snapshot of offset, page size and data length
func (w *Widget) State() domain.ViewportState {
	return domain.ViewportState{
		ScrollOffset: w.scroll.Offset(),
		PageSize:     w.pageSize,
		DataLength:   w.records.Len(),
	}
}

// PageSize returns the current page size
func (w *Widget) PageSize() int { return w.pageSize }

// Recomputations exposes how often the visible slice was rebuilt
func (w *Widget) Recomputations() int { return w.deriver.Recomputations() }

func (w *Widget) bounds() Bounds {
	return Bounds{DataLength: w.records.Len(), PageSize: w.pageSize}
}

func (w *Widget) rebind() {
	w.scroll = w.scroll.Rebind(w.bounds())
}

func (w *Widget) publishChange(old domain.ViewportState) {
	now := w.State()
	if now == old {
		return
	}
	if now.PageSize != old.PageSize {
		log.Printf("Viewport: page size %d -> %d", old.PageSize, now.PageSize)
	}
	w.bus.Publish(domain.ViewportChangedEvent{Old: old, New: now})
}
