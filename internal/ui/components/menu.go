package components

import (
	"strings"

	"github.com/Akashdeep-Patra/posdash/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one selectable dropdown row.
type MenuItem struct {
	Glyph   string
	Title   string
	Detail  string
	Meta    string // right-aligned, e.g. a timestamp
	Checked bool
	Color   lipgloss.Color // glyph colour; empty uses the muted colour
}

// MenuResult is sent when the menu is dismissed.
type MenuResult struct {
	Tag    string
	Index  int // chosen item, -1 for the footer or a cancel
	Chosen bool
	Footer bool
}

// Menu is a dropdown list anchored under a header control.
type Menu struct {
	Tag    string
	Label  string
	Badge  string
	Items  []MenuItem
	Footer string
	Width  int

	cursor  int // len(Items) selects the footer
	visible bool
}

// NewMenu creates a visible menu with the cursor on start.
func NewMenu(tag, label string, items []MenuItem, start int) Menu {
	if start < 0 || start >= len(items) {
		start = 0
	}
	return Menu{Tag: tag, Label: label, Items: items, Width: 40, cursor: start, visible: true}
}

// Visible returns whether the menu is showing.
func (m Menu) Visible() bool { return m.visible }

// Cursor returns the highlighted row.
func (m Menu) Cursor() int { return m.cursor }

func (m Menu) rows() int {
	n := len(m.Items)
	if m.Footer != "" {
		n++
	}
	return n
}

// Update handles key events for the menu.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.visible = false
		return m, func() tea.Msg { return MenuResult{Tag: m.Tag, Index: -1} }
	case "j", "down", "tab":
		if m.cursor < m.rows()-1 {
			m.cursor++
		}
	case "k", "up", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", " ":
		return m.Choose(m.cursor)
	}
	return m, nil
}

// Choose closes the menu with row i selected.
func (m Menu) Choose(i int) (Menu, tea.Cmd) {
	if i < 0 || i >= m.rows() {
		return m, nil
	}
	m.visible = false
	res := MenuResult{Tag: m.Tag, Index: i, Chosen: true}
	if i >= len(m.Items) {
		res = MenuResult{Tag: m.Tag, Index: -1, Footer: true}
	}
	return m, func() tea.Msg { return res }
}

// MenuItemRows is the number of screen rows each item occupies.
const MenuItemRows = 2

// menuHeaderRows covers the border, label and separator above the items.
const menuHeaderRows = 3

// RowAt maps a Y offset within the rendered menu to an item index, or -1.
func (m Menu) RowAt(y int) int {
	y -= menuHeaderRows
	if y < 0 {
		return -1
	}
	i := y / MenuItemRows
	if i < len(m.Items) {
		return i
	}
	// Footer sits after a separator row.
	if m.Footer != "" && y == len(m.Items)*MenuItemRows+1 {
		return len(m.Items)
	}
	return -1
}

// View renders the menu.
func (m Menu) View(styles ui.Styles) string {
	if !m.visible {
		return ""
	}
	t := styles.Theme
	inner := m.Width - 4
	sep := lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", inner))

	label := styles.MenuLabel.Render(m.Label)
	if m.Badge != "" {
		label = ui.SpreadRow(label, styles.BadgeSubtle.Render(m.Badge), inner)
	}

	lines := []string{label, sep}
	for i, it := range m.Items {
		color := it.Color
		if color == "" {
			color = t.TextMuted
		}
		glyph := lipgloss.NewStyle().Foreground(color).Render(it.Glyph)
		title := it.Title
		if it.Checked {
			title += " " + lipgloss.NewStyle().Foreground(t.Success).Render("✓")
		}
		first := ui.SpreadRow(glyph+" "+title, styles.Muted.Render(it.Meta), inner-1)
		second := "  " + styles.Muted.Render(ui.Truncate(it.Detail, inner-3))

		row := lipgloss.JoinVertical(lipgloss.Left, first, second)
		if i == m.cursor {
			row = styles.MenuSelected.Width(inner).Render(row)
		} else {
			row = styles.MenuItem.Width(inner).Render(row)
		}
		lines = append(lines, row)
	}
	if m.Footer != "" {
		footer := lipgloss.PlaceHorizontal(inner-1, lipgloss.Center,
			lipgloss.NewStyle().Foreground(t.Primary).Render(m.Footer))
		if m.cursor == len(m.Items) {
			footer = styles.MenuSelected.Width(inner).Render(footer)
		} else {
			footer = styles.MenuItem.Width(inner).Render(footer)
		}
		lines = append(lines, sep, footer)
	}

	return styles.Menu.Width(m.Width - 2).Render(strings.Join(lines, "\n"))
}
