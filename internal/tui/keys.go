package tui

import "github.com/charmbracelet/bubbles/key"

// listKeyMap holds the bindings of the shortcut listing.
type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Show   key.Binding
	Remove key.Binding
	Quit   key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Show, k.Remove, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Show},
		{k.Add, k.Remove, k.Quit},
	}
}

// formKeyMap holds the bindings of the add-shortcut drawer.
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Enter  key.Binding
	Submit key.Binding
	Close  key.Binding
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Enter, k.Submit, k.Close}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Enter, k.Submit, k.Close}}
}

// replaceKeyMap holds the bindings of the replace dialog.
type replaceKeyMap struct {
	Replace key.Binding
	Cancel  key.Binding
}

func (k replaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Replace, k.Cancel}
}

func (k replaceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Replace, k.Cancel}}
}

var listKeys = listKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Add: key.NewBinding(
		key.WithKeys("a", "n"),
		key.WithHelp("a", "add shortcut"),
	),
	Show: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "remove keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var formKeys = formKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "add"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

var replaceKeys = replaceKeyMap{
	Replace: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "replace"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n", "keep"),
	),
}
