package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flycatch/DockerManager/internal/core/ports"
)

const actionTimeout = 60 * time.Second

// runAction launches the requested verb against the selected container or
// project as a one-shot background command. The card state is not touched
// here; the next poll tick observes the effect.
func (m Model) runAction(verb string) (tea.Model, tea.Cmd) {
	sel, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	switch sel.kind {
	case rowProject:
		return m, projectAction(m.projects, verb, sel.id)
	default:
		card, ok := m.store.Card(sel.id)
		if !ok {
			return m, nil
		}
		return m, containerAction(m.containers, verb, sel.id, card.Container.Name)
	}
}

// openConfirm pushes the confirm context before anything destructive runs.
func (m Model) openConfirm() (tea.Model, tea.Cmd) {
	sel, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	switch sel.kind {
	case rowProject:
		m.confirm = newConfirmModal(
			"Delete all containers of project "+sel.id+"?",
			projectAction(m.projects, "delete", sel.id),
		)
	default:
		card, ok := m.store.Card(sel.id)
		if !ok {
			return m, nil
		}
		m.confirm = newConfirmModal(
			"Delete container "+card.Container.Name+"?",
			containerAction(m.containers, "delete", sel.id, card.Container.Name),
		)
	}
	m.contexts.Push(ctxConfirm)
	return m, nil
}

// openLogs pushes the logs context and kicks off the tail fetch. Project
// rows have no log stream.
func (m Model) openLogs() (tea.Model, tea.Cmd) {
	sel, ok := m.selectedRow()
	if !ok || sel.kind != rowContainer {
		return m, nil
	}
	card, ok := m.store.Card(sel.id)
	if !ok {
		return m, nil
	}
	m.logs = newLogsModal(sel.id, card.Container.Name, m.width, m.height)
	m.contexts.Push(ctxLogs)
	return m, fetchLogs(m.containers, sel.id)
}

// openInfo pushes the info context and fetches the inspect detail. Project
// rows have nothing to inspect.
func (m Model) openInfo() (tea.Model, tea.Cmd) {
	sel, ok := m.selectedRow()
	if !ok || sel.kind != rowContainer {
		return m, nil
	}
	card, ok := m.store.Card(sel.id)
	if !ok {
		return m, nil
	}
	m.info = newInfoModal(sel.id, card.Container.Name)
	m.contexts.Push(ctxInfo)
	return m, fetchInfo(m.containers, sel.id)
}

func containerAction(service ports.ContainerService, verb, id, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		var err error
		switch verb {
		case "start":
			err = service.StartContainer(ctx, id)
		case "stop":
			err = service.StopContainer(ctx, id)
		case "restart":
			err = service.RestartContainer(ctx, id)
		case "delete":
			err = service.RemoveContainer(ctx, id, true)
		}
		return actionResultMsg{verb: verb, target: "container " + name, err: err}
	}
}

func projectAction(service ports.ProjectService, verb, project string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		var err error
		switch verb {
		case "start":
			err = service.StartProject(ctx, project)
		case "stop":
			err = service.StopProject(ctx, project)
		case "restart":
			err = service.RestartProject(ctx, project)
		case "delete":
			err = service.RemoveProject(ctx, project)
		}
		return actionResultMsg{verb: verb, target: "project " + project, err: err}
	}
}

func verbPast(verb string) string {
	switch verb {
	case "start":
		return "Started"
	case "stop":
		return "Stopped"
	case "restart":
		return "Restarted"
	case "delete":
		return "Deleted"
	default:
		return verb
	}
}
