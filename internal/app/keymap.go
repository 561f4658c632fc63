package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings used across the application.
// They are inactive while a menu or dialog holds focus.
type KeyMap struct {
	Quit          key.Binding
	Help          key.Binding
	Refresh       key.Binding
	ToggleSidebar key.Binding
	Back          key.Binding
	ToggleTheme   key.Binding

	Branch        key.Binding
	BranchJump    key.Binding // 1..n picks Branches[n-1]
	DateRange     key.Binding
	ClearDate     key.Binding
	Notifications key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Refresh:       key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
		ToggleSidebar: key.NewBinding(key.WithKeys("ctrl+b", "["), key.WithHelp("[", "sidebar")),
		Back:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ToggleTheme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),

		Branch:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "branch")),
		BranchJump:    key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "jump to branch")),
		DateRange:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "date range")),
		ClearDate:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "clear dates")),
		Notifications: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
	}
}
