package common

import (
	"github.com/Akashdeep-Patra/posdash/internal/config"
	"github.com/Akashdeep-Patra/posdash/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// ── Navigation ──────────────────────────────────────────────────────────────

// NavItems is the fixed sidebar navigation. Only the dashboard is routed;
// the other entries are static links.
var NavItems = []components.NavItem{
	{Icon: "⌂", Label: "Dashboard", Href: "/", Active: true},
	{Icon: "⊕", Label: "Open Cart", Href: "/cart"},
	{Icon: "▭", Label: "Transactions", Href: "/transactions"},
	{Icon: "⇅", Label: "Transfers", Href: "/transfers"},
	{Icon: "▦", Label: "Items", Href: "/items"},
	{Icon: "♟", Label: "Credits", Href: "/credits"},
	{Icon: "▥", Label: "Stock", Href: "/stock"},
	{Icon: "⚙", Label: "General", Href: "/general"},
	{Icon: "♪", Label: "Notifications", Href: "/notifications"},
	{Icon: "?", Label: "Help Center", Href: "/help"},
}

// ── Custom messages ─────────────────────────────────────────────────────────

// RefreshMsg signals views to reload data.
type RefreshMsg struct{}

// ErrMsg carries an error to be displayed.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// BranchChangedMsg tells views the page's branch changed.
type BranchChangedMsg struct{ ID string }

// ThemeChangedMsg tells views the palette was swapped.
type ThemeChangedMsg struct{ Dark bool }

// ConfigReloadedMsg carries a freshly loaded config after the file changed.
type ConfigReloadedMsg struct{ Cfg *config.Config }

// CmdRefresh returns a RefreshMsg (use as return from tea.Cmd).
func CmdRefresh() tea.Msg { return RefreshMsg{} }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// ── View interface ──────────────────────────────────────────────────────────

// View is the interface the main content pane implements.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
	ShortHelp() []components.HelpEntry
}
