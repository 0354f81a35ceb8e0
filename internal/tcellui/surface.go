// Package tcellui draws the table straight onto a tcell screen.
package tcellui

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"vtable/internal/config"
	"vtable/internal/domain"
	"vtable/internal/eventbus"
	"vtable/internal/source"
	"vtable/internal/ui/views"
	"vtable/internal/viewport"
)

// title and status lines
const chromeLines = 2

var (
	styleTitle  = tcell.StyleDefault.Bold(true).Foreground(tcell.PaletteColor(99))
	styleHeader = tcell.StyleDefault.Bold(true).Foreground(tcell.PaletteColor(220)).Background(tcell.PaletteColor(236))
	styleRow    = tcell.StyleDefault
	styleRowAlt = tcell.StyleDefault.Background(tcell.PaletteColor(235))
	styleStatus = tcell.StyleDefault.Foreground(tcell.PaletteColor(241))
)

// Surface forwards tcell events to a viewport widget and paints its visible rows
type Surface struct {
	screen  tcell.Screen
	cfg     *config.Config
	bus     eventbus.EventBus
	widget  *viewport.Widget
	columns []string

	// set when the screen no longer matches the widget
	dirty        bool
	stopWatching func()
}

// New creates a surface; the screen must already be initialised
func New(screen tcell.Screen, cfg *config.Config, bus eventbus.EventBus, records source.RowSource) *Surface {
	return &Surface{
		screen:  screen,
		cfg:     cfg,
		bus:     bus,
		widget:  viewport.NewWidget(records, cfg.Calculator(), bus),
		columns: records.Columns(),
	}
}

// Widget exposes the viewport controller
func (s *Surface) Widget() *viewport.Widget {
	return s.widget
}

// Mount sizes the widget from the current screen and subscribes it to resizes
func (s *Surface) Mount() {
	if s.stopWatching == nil {
		s.stopWatching = s.bus.Subscribe(domain.EventViewportChanged, func(domain.DomainEvent) {
			s.dirty = true
		})
	}
	_, h := s.screen.Size()
	s.widget.Mount(s.measure(h))
	s.dirty = true
	log.Printf("Mounted with page size %d", s.widget.PageSize())
}

// Unmount releases the widget and stops tracking viewport changes. Safe to call more than once.
func (s *Surface) Unmount() {
	s.widget.Unmount()
	if s.stopWatching != nil {
		s.stopWatching()
		s.stopWatching = nil
	}
}

// Dirty reports whether the next Draw would change the screen
func (s *Surface) Dirty() bool {
	return s.dirty
}

// Run processes events until the user quits or ctx is done
func (s *Surface) Run(ctx context.Context) error {
	s.screen.EnableMouse()
	s.Mount()
	defer s.Unmount()
	s.Draw()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !s.HandleEvent(ev) {
				return nil
			}
			if s.dirty {
				s.Draw()
			}
		}
	}
}

// HandleEvent applies one event and reports whether the surface should keep running
func (s *Surface) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.dirty = true
		_, h := ev.Size()
		measured := s.measure(h)
		s.bus.Publish(domain.ResizeEvent{HeightPx: measured.Pixels(), Measured: measured.Known()})

	case *tcell.EventKey:
		if isQuit(ev) {
			s.Unmount()
			return false
		}
		s.widget.KeyDown(navigationKey(ev))

	case *tcell.EventMouse:
		rows := float64(s.cfg.Input.WheelRows)
		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			s.widget.Wheel(-rows)
		}
		if buttons&tcell.WheelDown != 0 {
			s.widget.Wheel(rows)
		}
	}
	return true
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func navigationKey(ev *tcell.EventKey) viewport.KeyEvent {
	shift := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyUp:
		return viewport.KeyEvent{Key: viewport.KeyArrowUp, Shift: shift}
	case tcell.KeyDown:
		return viewport.KeyEvent{Key: viewport.KeyArrowDown, Shift: shift}
	case tcell.KeyPgUp:
		return viewport.KeyEvent{Key: viewport.KeyPageUp, Shift: shift}
	case tcell.KeyPgDn:
		return viewport.KeyEvent{Key: viewport.KeyPageDown, Shift: shift}
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return viewport.KeyEvent{Key: viewport.KeySpace, Shift: shift}
		}
	}
	return viewport.KeyEvent{Key: viewport.KeyOther}
}

func (s *Surface) measure(lines int) viewport.Measurement {
	if lines <= 0 {
		return viewport.Unmeasured
	}
	body := max(lines-chromeLines, 1)
	return viewport.Px(float64(body) * s.cfg.Viewport.CellHeightPx)
}

// Draw paints title, header, visible rows and status
func (s *Surface) Draw() {
	s.screen.Clear()
	width, height := s.screen.Size()

	drawText(s.screen, 0, 0, styleTitle, views.FitCell(s.cfg.UI.Title, width))

	state := s.widget.State()
	widths := views.ColumnWidths(s.columns, state.DataLength, width)
	drawText(s.screen, 0, 1, styleHeader, views.FormatRow(s.columns, widths))

	for i, row := range s.widget.Visible() {
		y := 2 + i
		if y >= height-1 {
			break
		}
		style := styleRow
		if (state.ScrollOffset+i)%2 == 1 {
			style = styleRowAlt
		}
		drawText(s.screen, 0, y, style, views.FormatRow(row.Fields, widths))
	}

	if height > 2 {
		drawText(s.screen, 0, height-1, styleStatus, views.FitCell(views.StatusText(state), width))
	}
	s.screen.Show()
	s.dirty = false
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
