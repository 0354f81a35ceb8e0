package viewport

import "math"

// Key identifies a navigation key independent of the terminal library
type Key int

const (
	KeyOther Key = iota
	KeySpace
	KeyArrowUp
	KeyArrowDown
	KeyPageUp
	KeyPageDown
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	default:
		return "Other"
	}
}

// KeyEvent is a key press with the shift modifier state
type KeyEvent struct {
	Key   Key
	Shift bool
}

// InterpretKey maps a key press to an offset update.
// It returns false for keys that do not navigate.
func InterpretKey(ev KeyEvent, pageSize int) (Update, bool) {
	switch ev.Key {
	case KeySpace:
		if ev.Shift {
			return By(-pageSize), true
		}
		return By(pageSize), true
	case KeyArrowUp:
		return By(-1), true
	case KeyArrowDown:
		return By(1), true
	case KeyPageUp:
		return By(-pageSize), true
	case KeyPageDown:
		return By(pageSize), true
	}
	return nil, false
}

// InterpretWheel forwards a wheel delta as a relative update.
// Fractional rows are truncated toward zero; Widget.Wheel keeps the
// remainder between events.
func InterpretWheel(deltaY float64) Update {
	if math.IsNaN(deltaY) {
		return By(0)
	}
	switch {
	case deltaY > math.MaxInt32:
		deltaY = math.MaxInt32
	case deltaY < math.MinInt32:
		deltaY = math.MinInt32
	}
	return By(int(deltaY))
}
