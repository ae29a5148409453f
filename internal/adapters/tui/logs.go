package tui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flycatch/DockerManager/internal/core/ports"
)

const logTailLines = 500

// logsModal shows the tail of one container's output in a scrollable
// viewport with an optional line filter.
type logsModal struct {
	containerID   string
	containerName string
	viewport      viewport.Model
	filterInput   textinput.Model
	lines         []string
	filter        string
	loading       bool
	err           error
}

func newLogsModal(id, name string, width, height int) *logsModal {
	vp := viewport.New(max(20, width-6), max(5, height-8))

	ti := textinput.New()
	ti.Placeholder = "filter logs"
	ti.CharLimit = 80
	ti.Width = 30

	return &logsModal{
		containerID:   id,
		containerName: name,
		viewport:      vp,
		filterInput:   ti,
		loading:       true,
	}
}

// fetchLogs reads the log tail in the background and reports back with a
// logsLoadedMsg.
func fetchLogs(service ports.ContainerService, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		rc, err := service.ContainerLogs(ctx, id, logTailLines)
		if err != nil {
			return logsLoadedMsg{id: id, err: err}
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return logsLoadedMsg{id: id, err: err}
		}
		return logsLoadedMsg{id: id, text: string(data)}
	}
}

func (lm *logsModal) setContent(text string) {
	lm.loading = false
	lm.lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
	lm.refresh()
}

func (lm *logsModal) setFilter(filter string) {
	lm.filter = filter
	lm.refresh()
}

// refresh rebuilds the viewport content from the line buffer and the
// current filter, keeping the view pinned to the bottom.
func (lm *logsModal) refresh() {
	visible := lm.lines
	if lm.filter != "" {
		visible = nil
		needle := strings.ToLower(lm.filter)
		for _, line := range lm.lines {
			if strings.Contains(strings.ToLower(line), needle) {
				visible = append(visible, line)
			}
		}
	}
	lm.viewport.SetContent(strings.Join(visible, "\n"))
	lm.viewport.GotoBottom()
}

func (lm *logsModal) resize(width, height int) {
	lm.viewport.Width = max(20, width-6)
	lm.viewport.Height = max(5, height-8)
}

func (lm *logsModal) view(filtering bool) string {
	title := titleStyle.Render("Logs: " + lm.containerName)

	var body string
	switch {
	case lm.loading:
		body = dimStyle.Render("loading...")
	case lm.err != nil:
		body = errorStyle.Render("failed to load logs: " + lm.err.Error())
	default:
		body = lm.viewport.View()
	}

	footer := helpStyle.Render("j/k scroll · / filter · esc close")
	if filtering {
		footer = lm.filterInput.View()
	} else if lm.filter != "" {
		footer = dimStyle.Render("filter: "+lm.filter) + "  " + footer
	}

	return modalStyle.Render(title + "\n\n" + body + "\n" + footer)
}
