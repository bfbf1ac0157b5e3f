package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, b.spinnerC.Tick}

	if b.state != historyState {
		cmds = append(cmds, b.openList(b.options.TypeID))
	}

	return tea.Batch(cmds...)
}
