package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds all key bindings for the TUI.
type keyMap struct {
	Quit          key.Binding
	Refresh       key.Binding
	Help          key.Binding
	Pause         key.Binding
	Deployment    key.Binding
	Fresh         key.Binding
	EditCalls     key.Binding
	Deploy        key.Binding
	DeleteActions key.Binding
	Import        key.Binding
	ClearLogs     key.Binding
	ClearStore    key.Binding
	Export        key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
	Escape        key.Binding
	Enter         key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh now"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause updates"),
	),
	Deployment: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "next deployment"),
	),
	Fresh: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "toggle fresh"),
	),
	EditCalls: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "edit calls"),
	),
	Deploy: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "deploy"),
	),
	DeleteActions: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete actions"),
	),
	Import: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import"),
	),
	ClearLogs: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "clear logs"),
	),
	ClearStore: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "clear remote store"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export chart"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
}

// helpText is the full help string displayed in the footer when help is toggled on.
const helpText = "q: quit  r: refresh  p: pause  t: deployment  f: fresh  c: calls  " +
	"d: deploy  x: delete actions  i: import  L: clear logs  S: clear store  e: export  ?: help"
