package tui

import (
	"fmt"
	"strings"

	"github.com/flycatch/DockerManager/internal/core/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch {
	case m.confirm != nil:
		b.WriteString(m.confirm.view())
	case m.info != nil:
		b.WriteString(m.info.view())
	case m.logs != nil:
		b.WriteString(m.logs.view(m.contexts.Top() == ctxLogFilter))
	case m.stopped:
		b.WriteString(errorStyle.Render("poll loop stopped"))
	case !m.loaded:
		b.WriteString(m.spinner.View() + dimStyle.Render(" connecting to docker..."))
	case len(m.rows) == 0:
		b.WriteString(dimStyle.Render("no containers"))
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n\n")
	if note := m.notify.View(); note != "" {
		b.WriteString(note)
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) headerView() string {
	tabs := []string{"Containers", "Projects"}
	rendered := make([]string, len(tabs))
	for i, name := range tabs {
		if tab(i) == m.tab {
			rendered[i] = tabActiveStyle.Render(name)
		} else {
			rendered[i] = tabInactiveStyle.Render(name)
		}
	}
	return titleStyle.Render("dockman") + "  " + strings.Join(rendered, "  ")
}

// listView renders a window of rows around the cursor so long lists stay
// usable on small terminals.
func (m Model) listView() string {
	visible := m.visibleRowCount()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	var lines []string
	for i := start; i < end; i++ {
		r := m.rows[i]
		selected := i == m.cursor
		switch r.kind {
		case rowProject:
			lines = append(lines, m.projectRowView(r.id, selected))
		default:
			lines = append(lines, m.containerRowView(r.id, selected, m.tab == tabProjects))
		}
	}
	if start > 0 {
		lines[0] = dimStyle.Render("…")
	}
	if end < len(m.rows) && len(lines) > 0 {
		lines[len(lines)-1] = dimStyle.Render("…")
	}
	return strings.Join(lines, "\n")
}

func (m Model) visibleRowCount() int {
	// header, blank, notification, help and margins eat about 7 lines
	n := m.height - 7
	if n < 5 {
		n = 5
	}
	return n
}

func (m Model) projectRowView(id string, selected bool) string {
	members := m.store.Members(id)
	running := 0
	for _, cid := range members {
		if card, ok := m.store.Card(cid); ok && card.Container.Status == domain.StatusRunning {
			running++
		}
	}
	counts := dimStyle.Render(fmt.Sprintf("(%d/%d running)", running, len(members)))
	name := projectStyle.Render(id)
	if selected {
		name = selectedStyle.Render(id)
	}
	return cursorMarker(selected) + name + "  " + counts
}

func (m Model) containerRowView(id string, selected, indent bool) string {
	card, ok := m.store.Card(id)
	if !ok {
		return ""
	}
	c := card.Container

	name := fmt.Sprintf("%-24.24s", c.Name)
	if selected {
		name = selectedStyle.Render(name)
	} else {
		name = itemStyle.Render(name)
	}

	line := cursorMarker(selected) +
		name + " " +
		statusView(c) + " " +
		dimStyle.Render(fmt.Sprintf("%-28.28s", c.Image))
	if c.Ports != "" {
		line += " " + dimStyle.Render(c.Ports)
	}
	if indent {
		line = "  " + line
	}
	return line
}

func statusView(c domain.Container) string {
	text := fmt.Sprintf("%-12.12s", c.Status.String())
	switch c.Status {
	case domain.StatusRunning:
		return statusRunningStyle.Render(text)
	case domain.StatusStopped:
		return statusStoppedStyle.Render(text)
	case domain.StatusRestarting:
		return statusRestartStyle.Render(text)
	default:
		return statusOtherStyle.Render(text)
	}
}
