package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vtable/internal/config"
	"vtable/internal/domain"
	"vtable/internal/eventbus"
	"vtable/internal/source"
	"vtable/internal/ui/views"
	"vtable/internal/viewport"
)

// ReadyMarker is appended to the status line when the E2E flag is set
const ReadyMarker = "__READY__"

// Model is the Bubble Tea surface for the table
type Model struct {
	cfg     *config.Config
	bus     eventbus.EventBus
	widget  *viewport.Widget
	records source.RowSource
	columns []string

	// initial terminal height in lines, 0 when unknown
	initialLines int

	width  int
	height int
	keys   keyMap
	help   help.Model

	renderer    *views.Renderer
	pager       *Pager
	inPagerMode bool // tracks if we're currently in pager mode
	errMessage  string
	notice      string // shown in the status line until the next key
	readyMarker bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over records
func NewModel(cfg *config.Config, bus eventbus.EventBus, records source.RowSource, initialLines int) *Model {
	m := &Model{
		cfg:          cfg,
		bus:          bus,
		records:      records,
		columns:      records.Columns(),
		initialLines: initialLines,
		keys:         defaultKeyMap(),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		pager:        NewPager(),
	}
	m.widget = viewport.NewWidget(records, cfg.Calculator(), bus)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// SetReadyMarker makes the view print ReadyMarker, used by end-to-end tests
func (m *Model) SetReadyMarker(on bool) {
	m.readyMarker = on
}

// SetNotice shows a one-off message in the status line
func (m *Model) SetNotice(msg string) {
	m.notice = msg
}

// Widget exposes the viewport controller
func (m *Model) Widget() *viewport.Widget {
	return m.widget
}

// Close releases the widget's resize subscription
func (m *Model) Close() {
	m.widget.Unmount()
}

// measure converts a terminal height in lines to the pixel height of the table body
func (m *Model) measure(lines int) viewport.Measurement {
	if lines <= 0 {
		return viewport.Unmeasured
	}
	// A real terminal is always a measurement; one line leaves room for the header only
	body := max(lines-views.ChromeLines(m.cfg.UI.ShowHelp), 1)
	return viewport.Px(float64(body) * m.cfg.Viewport.CellHeightPx)
}

// Init mounts the widget with whatever height is known before the first WindowSizeMsg
func (m *Model) Init() tea.Cmd {
	m.widget.Mount(m.measure(m.initialLines))
	log.Printf("Mounted with page size %d", m.widget.PageSize())
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		measured := m.measure(msg.Height)
		m.bus.Publish(domain.ResizeEvent{HeightPx: measured.Pixels(), Measured: measured.Known()})

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case pagerDoneMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			m.errMessage = "pager: " + msg.err.Error()
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMessage = ""
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.widget.Unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m, m.showInPager(m.helpContent)
	case key.Matches(msg, m.keys.Pager):
		return m, m.showInPager(m.allRowsContent)
	}

	m.widget.KeyDown(m.keys.navigationKey(msg))
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	rows := float64(m.cfg.Input.WheelRows)
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.widget.Wheel(-rows)
	case tea.MouseButtonWheelDown:
		m.widget.Wheel(rows)
	}
}

// View renders the visible window
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	status := m.notice
	if m.readyMarker {
		status = strings.TrimSpace(status + "  " + ReadyMarker)
	}
	helpView := ""
	if m.cfg.UI.ShowHelp {
		helpView = m.help.View(m.keys)
	}

	return m.renderer.Render(views.TableState{
		Title:         m.cfg.UI.Title,
		Width:         m.width,
		Height:        m.height,
		Columns:       m.columns,
		Rows:          m.widget.Visible(),
		Viewport:      m.widget.State(),
		StatusMessage: status,
		ErrorMessage:  m.errMessage,
		HelpView:      helpView,
	})
}
