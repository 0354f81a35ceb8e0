package ui

// pagerDoneMsg contains the result of a pager command
type pagerDoneMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
