package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/flycatch/DockerManager/internal/core/ports"
	"github.com/flycatch/DockerManager/internal/core/reconcile"
)

type tab int

const (
	tabContainers tab = iota
	tabProjects
)

type rowKind int

const (
	rowContainer rowKind = iota
	rowProject
)

// row is one selectable line in the active view: either a container card
// or a project group header.
type row struct {
	kind rowKind
	id   string
}

// Model is the root Bubble Tea model. It consumes poll events from the
// reconciler, applies mutations to the card store and dispatches key input
// through the context stack.
type Model struct {
	store    *CardStore
	contexts contextStack
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	notify   notifier

	events     <-chan reconcile.Event
	containers ports.ContainerService
	projects   ports.ProjectService

	tab    tab
	rows   []row
	cursor int

	logs    *logsModal
	info    *infoModal
	confirm *confirmModal

	width   int
	height  int
	loaded  bool
	stopped bool

	log zerolog.Logger
}

// New wires the UI to the poll event stream and the control services.
func New(events <-chan reconcile.Event, containers ports.ContainerService, projects ports.ProjectService, log zerolog.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	return Model{
		store:      NewCardStore(),
		contexts:   newContextStack(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		events:     events,
		containers: containers,
		projects:   projects,
		log:        log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForPollEvent())
}

// waitForPollEvent blocks on the reconciler channel and re-enters the
// update loop with whatever the next tick produced.
func (m Model) waitForPollEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return pollStoppedMsg{}
		}
		return pollEventMsg{event: ev}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.logs != nil {
			m.logs.resize(msg.Width, msg.Height)
		}
		return m, nil

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pollEventMsg:
		return m.handlePollEvent(msg.event)

	case pollStoppedMsg:
		m.stopped = true
		return m, nil

	case actionResultMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("verb", msg.verb).Str("target", msg.target).Msg("action failed")
			return m, m.notify.Notify("Failed to "+msg.verb+" "+msg.target, notifyError)
		}
		return m, m.notify.Notify(verbPast(msg.verb)+" "+msg.target, notifyInfo)

	case logsLoadedMsg:
		if m.logs == nil || m.logs.containerID != msg.id {
			return m, nil
		}
		if msg.err != nil {
			m.logs.loading = false
			m.logs.err = msg.err
			return m, nil
		}
		m.logs.setContent(msg.text)
		return m, nil

	case infoLoadedMsg:
		if m.info == nil || m.info.containerID != msg.id {
			return m, nil
		}
		m.info.loading = false
		if msg.err != nil {
			m.info.err = msg.err
			return m, nil
		}
		m.info.details = msg.details
		return m, nil

	case notifyExpireMsg:
		m.notify.Expire(msg.seq)
		return m, nil
	}

	return m, nil
}

// handlePollEvent applies one tick's outcome: mutations on success, a
// transient warning on fetch failure. Either way the next event is awaited.
func (m Model) handlePollEvent(ev reconcile.Event) (tea.Model, tea.Cmd) {
	if ev.Err != nil {
		// Previous state stays on screen untouched.
		return m, tea.Batch(
			m.notify.Notify("Docker unreachable: "+ev.Err.Error(), notifyWarn),
			m.waitForPollEvent(),
		)
	}

	m.loaded = true
	if len(ev.Mutations) > 0 {
		m.store.Apply(ev.Mutations)
		m.rebuildRows()
	}
	return m, m.waitForPollEvent()
}

// rebuildRows recomputes the selectable rows for the active tab and keeps
// the cursor in range.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	switch m.tab {
	case tabContainers:
		for _, project := range m.store.Groups() {
			for _, id := range m.store.Members(project) {
				m.rows = append(m.rows, row{kind: rowContainer, id: id})
			}
		}
		for _, id := range m.store.Standalone() {
			m.rows = append(m.rows, row{kind: rowContainer, id: id})
		}
	case tabProjects:
		for _, project := range m.store.Groups() {
			m.rows = append(m.rows, row{kind: rowProject, id: project})
			for _, id := range m.store.Members(project) {
				m.rows = append(m.rows, row{kind: rowContainer, id: id})
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selectedRow() (row, bool) {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// handleKey dispatches to the handler owning the top input context only.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.contexts.Top() {
	case ctxConfirm:
		return m.handleConfirmKey(msg)
	case ctxLogFilter:
		return m.handleLogFilterKey(msg)
	case ctxLogs:
		return m.handleLogsKey(msg)
	case ctxInfo:
		return m.handleInfoKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Tab):
		if m.tab == tabContainers {
			m.tab = tabProjects
		} else {
			m.tab = tabContainers
		}
		m.cursor = 0
		m.rebuildRows()

	case key.Matches(msg, m.keys.Start):
		return m.runAction("start")

	case key.Matches(msg, m.keys.Stop):
		return m.runAction("stop")

	case key.Matches(msg, m.keys.Restart):
		return m.runAction("restart")

	case key.Matches(msg, m.keys.Delete):
		return m.openConfirm()

	case key.Matches(msg, m.keys.Logs):
		return m.openLogs()

	case key.Matches(msg, m.keys.Info):
		return m.openInfo()
	}
	return m, nil
}

func (m Model) handleInfoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.info == nil {
		m.contexts.Pop()
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Close):
		m.contexts.Pop()
		m.info = nil
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logs == nil {
		m.contexts.Pop()
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Close):
		m.contexts.Pop()
		m.logs = nil
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.contexts.Push(ctxLogFilter)
		m.logs.filterInput.SetValue(m.logs.filter)
		m.logs.filterInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.logs.viewport, cmd = m.logs.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleLogFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logs == nil {
		m.contexts.Pop()
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.contexts.Pop()
		m.logs.filterInput.Blur()
		return m, nil
	case "enter":
		m.contexts.Pop()
		m.logs.setFilter(m.logs.filterInput.Value())
		m.logs.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.logs.filterInput, cmd = m.logs.filterInput.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm == nil {
		m.contexts.Pop()
		return m, nil
	}
	switch msg.String() {
	case "y", "Y", "enter":
		confirm := m.confirm.confirm
		m.contexts.Pop()
		m.confirm = nil
		return m, confirm
	case "n", "N", "esc":
		m.contexts.Pop()
		m.confirm = nil
		return m, nil
	}
	return m, nil
}
