package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Views
	Dashboard key.Binding
	Providers key.Binding
	Manual    key.Binding

	// Actions
	RunBatch   key.Binding
	Report     key.Binding
	Refresh    key.Binding
	ToggleChat key.Binding
	ToggleDark key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		Providers: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "providers"),
		),
		Manual: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "manual review"),
		),

		RunBatch: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "run batch"),
		),
		Report: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "download report"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "reload"),
		),
		ToggleChat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle assistant"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle dark mode"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dashboard, k.Providers, k.Manual, k.ToggleChat, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dashboard, k.Providers, k.Manual},
		{k.RunBatch, k.Report, k.Refresh},
		{k.ToggleChat, k.ToggleDark},
		{k.Help, k.Quit},
	}
}
