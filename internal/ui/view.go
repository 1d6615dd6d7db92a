package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition: a landing variant or modal with its own
// model, update, and render, mirroring Bubble Tea's Init/Update/View cycle.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
