package components

import (
	"strings"

	"github.com/Akashdeep-Patra/posdash/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// NavItem is one sidebar navigation entry.
type NavItem struct {
	Icon   string
	Label  string
	Href   string
	Active bool
}

// SidebarData is everything the sidebar needs for one render.
type SidebarData struct {
	Items      []NavItem
	Width      int // columns, including the right border
	Height     int
	ShowLabels bool
	CloseGlyph bool
	DarkMode   bool
	ThemeLabel string
	User       string
	Role       string
}

// Sidebar glyphs.
const (
	glyphMenu  = "☰"
	glyphClose = "✕"
	glyphMoon  = "☾"
	glyphSun   = "☀"
)

// sidebarFooterRows is the number of rows below the navigation:
// separator, theme button, separator, user profile.
const sidebarFooterRows = 4

// SidebarToggleRow is the row of the open/close button.
const SidebarToggleRow = 0

// SidebarThemeRow returns the row of the theme button for a sidebar of the
// given height.
func SidebarThemeRow(height int) int {
	return height - sidebarFooterRows + 1
}

// RenderSidebar renders the navigation column. Collapsed sidebars show
// icons only.
func RenderSidebar(styles ui.Styles, d SidebarData) string {
	inner := d.Width - 1 // right border
	if inner < 1 || d.Height < 1 {
		return ""
	}
	t := styles.Theme
	line := func(s string) string { return ui.PadRight(s, inner) }
	sep := lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", inner))

	var rows []string

	// Logo and toggle.
	toggle := glyphMenu
	if d.CloseGlyph {
		toggle = glyphClose
	}
	logo := styles.Logo.Render("POS")
	if d.ShowLabels {
		rows = append(rows, ui.SpreadRow(logo+" "+styles.Bold.Render("Business Pro"), toggle+" ", inner))
	} else {
		rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Center, toggle))
	}
	rows = append(rows, sep)

	// Navigation.
	for _, item := range d.Items {
		label := item.Icon
		if d.ShowLabels {
			label = item.Icon + " " + item.Label
		}
		var rendered string
		switch {
		case item.Active && d.ShowLabels:
			rendered = styles.NavActive.Width(inner).Render(ui.Truncate(label, inner-2))
		case item.Active:
			rendered = styles.NavActive.Width(inner).Align(lipgloss.Center).Render(label)
		case d.ShowLabels:
			rendered = styles.NavItem.Width(inner).Render(ui.Truncate(label, inner-2))
		default:
			rendered = styles.NavItem.Width(inner).Align(lipgloss.Center).Render(label)
		}
		rows = append(rows, rendered)
	}

	// Footer pinned to the bottom.
	for len(rows) < d.Height-sidebarFooterRows {
		rows = append(rows, strings.Repeat(" ", inner))
	}
	rows = rows[:max(0, min(len(rows), d.Height-sidebarFooterRows))]

	themeGlyph := glyphMoon
	if d.DarkMode {
		themeGlyph = glyphSun
	}
	themeBtn := themeGlyph
	if d.ShowLabels {
		themeBtn = themeGlyph + " " + d.ThemeLabel
		themeBtn = styles.NavItem.Render(themeBtn)
	} else {
		themeBtn = lipgloss.PlaceHorizontal(inner, lipgloss.Center, themeGlyph)
	}

	avatar := styles.Logo.Render(d.User)
	profile := lipgloss.PlaceHorizontal(inner, lipgloss.Center, avatar)
	if d.ShowLabels {
		profile = " " + avatar + " " + styles.Bold.Render(d.User) + " " + styles.Muted.Render(d.Role)
	}

	rows = append(rows, sep, line(themeBtn), sep, line(profile))
	if len(rows) > d.Height {
		rows = rows[len(rows)-d.Height:]
	}

	return styles.Sidebar.Width(inner).Height(d.Height).Render(strings.Join(rows, "\n"))
}
