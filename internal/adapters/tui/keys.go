package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the application-level binding table shown in the help line.
type keyMap struct {
	Quit    key.Binding
	Down    key.Binding
	Up      key.Binding
	Tab     key.Binding
	Start   key.Binding
	Stop    key.Binding
	Restart key.Binding
	Delete  key.Binding
	Logs    key.Binding
	Info    key.Binding
	Filter  key.Binding
	Close   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "next")),
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "prev")),
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Stop:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "stop")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Logs:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logs")),
		Info:    key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "info")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Tab, k.Start, k.Stop, k.Restart, k.Delete, k.Logs, k.Info, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Tab},
		{k.Start, k.Stop, k.Restart, k.Delete},
		{k.Logs, k.Info, k.Filter, k.Close, k.Quit},
	}
}

// inputContext identifies who currently owns the keyboard. Modal screens
// push a context on open and pop it on close; key dispatch only ever
// consults the top of the stack, so a modal can never leak keys into the
// view underneath it.
type inputContext int

const (
	ctxBrowse inputContext = iota
	ctxLogs
	ctxLogFilter
	ctxConfirm
	ctxInfo
)

func (c inputContext) String() string {
	switch c {
	case ctxBrowse:
		return "browse"
	case ctxLogs:
		return "logs"
	case ctxLogFilter:
		return "log-filter"
	case ctxConfirm:
		return "confirm"
	case ctxInfo:
		return "info"
	default:
		return "unknown"
	}
}

// contextStack is the explicit stack of input-handling contexts. The base
// browse context is always present and cannot be popped.
type contextStack struct {
	stack []inputContext
}

func newContextStack() contextStack {
	return contextStack{stack: []inputContext{ctxBrowse}}
}

func (s *contextStack) Push(c inputContext) {
	s.stack = append(s.stack, c)
}

// Pop removes the top context. The base context stays put.
func (s *contextStack) Pop() inputContext {
	if len(s.stack) <= 1 {
		return s.Top()
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top
}

func (s *contextStack) Top() inputContext {
	return s.stack[len(s.stack)-1]
}

func (s *contextStack) Depth() int {
	return len(s.stack)
}
