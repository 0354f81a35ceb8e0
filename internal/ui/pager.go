package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"vtable/internal/ui/views"
)

// Pager shows text full screen while the table is suspended
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show runs ov over r until the user quits it
func (p *Pager) Show(r io.Reader) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showInPager returns a command that pages content, pausing and resuming rendering
func (m *Model) showInPager(content func() string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return pagerDoneMsg{err: fmt.Errorf("program not set")}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(strings.NewReader(content()))
		m.program.Send(resumeRenderingMsg{})
		return pagerDoneMsg{err: err}
	}
}

// helpContent renders the full key reference
func (m *Model) helpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	var help strings.Builder
	help.WriteString(titleStyle.Render(m.cfg.UI.Title + " help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Scrolling"))
	help.WriteString("\n")
	for _, b := range []struct{ keys, desc string }{
		{"↑/k ↓/j", "one row up/down"},
		{"PgUp/PgDn", "one page up/down"},
		{"Space", "one page down"},
		{"b", "one page up (shift+space)"},
		{"wheel", fmt.Sprintf("%d rows per notch", m.cfg.Input.WheelRows)},
	} {
		help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render(b.keys), b.desc))
	}

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render("v"), "view every row in the pager"))
	help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render("?"), "this help"))
	help.WriteString(fmt.Sprintf("  %-12s %s\n", keyStyle.Render("q"), "quit"))

	return help.String()
}

// allRowsContent renders the whole dataset as plain text
func (m *Model) allRowsContent() string {
	return views.PlainText(m.columns, m.records.Rows(0, m.records.Len()))
}
