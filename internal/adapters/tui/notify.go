package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type notifyLevel int

const (
	notifyInfo notifyLevel = iota
	notifyWarn
	notifyError
)

// notification is a transient one-line message with an expiry timer.
// Errors linger a little longer than confirmations.
type notification struct {
	text  string
	level notifyLevel
	seq   int
}

type notifier struct {
	current *notification
	seq     int
}

func (n *notifier) ttl(level notifyLevel) time.Duration {
	switch level {
	case notifyError:
		return 5 * time.Second
	case notifyWarn:
		return 4 * time.Second
	default:
		return 3 * time.Second
	}
}

// Notify replaces the current message and returns the expiry command.
func (n *notifier) Notify(text string, level notifyLevel) tea.Cmd {
	n.seq++
	n.current = &notification{text: text, level: level, seq: n.seq}
	seq := n.seq
	return tea.Tick(n.ttl(level), func(time.Time) tea.Msg {
		return notifyExpireMsg{seq: seq}
	})
}

// Expire clears the message if it is still the one the timer was armed for.
func (n *notifier) Expire(seq int) {
	if n.current != nil && n.current.seq == seq {
		n.current = nil
	}
}

// View renders the notification line, empty when nothing is pending.
func (n *notifier) View() string {
	if n.current == nil {
		return ""
	}
	switch n.current.level {
	case notifyError:
		return errorStyle.Render(n.current.text)
	case notifyWarn:
		return notifyWarnStyle.Render(n.current.text)
	default:
		return notifyInfoStyle.Render(n.current.text)
	}
}
