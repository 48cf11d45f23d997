package tui

import (
	tea "charm.land/bubbletea/v2"
)

// Run starts the Bubble Tea program and blocks until the participant quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts))
	_, err := p.Run()
	return err
}
