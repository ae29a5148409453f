package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModal guards destructive operations. It holds the command to run
// when the user confirms; cancelling drops it.
type confirmModal struct {
	prompt  string
	confirm tea.Cmd
}

func newConfirmModal(prompt string, confirm tea.Cmd) *confirmModal {
	return &confirmModal{prompt: prompt, confirm: confirm}
}

func (cm *confirmModal) view() string {
	return modalStyle.Render(
		errorStyle.Render(cm.prompt) + "\n\n" +
			helpStyle.Render("y confirm · n/esc cancel"),
	)
}
