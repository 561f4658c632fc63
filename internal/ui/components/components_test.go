package components

import (
	"strings"
	"testing"

	"github.com/Akashdeep-Patra/posdash/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridColumns(t *testing.T) {
	assert.Equal(t, 1, GridColumns(10, 30, 4))
	assert.Equal(t, 2, GridColumns(64, 30, 4))
	assert.Equal(t, 4, GridColumns(400, 30, 4))
	assert.Equal(t, 1, GridColumns(100, 0, 4))
}

func TestRenderGridRows(t *testing.T) {
	out := RenderGrid([]string{"a", "b", "c"}, 2)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ab", lines[0])
	assert.Equal(t, "c", strings.TrimSpace(lines[1]))
}

func TestRenderProgressWidth(t *testing.T) {
	styles := ui.DefaultStyles()
	for _, pct := range []int{-5, 0, 7, 55, 100, 140} {
		assert.Equal(t, 20, lipgloss.Width(RenderProgress(styles, pct, 20, styles.Theme.Success)))
	}
	assert.Empty(t, RenderProgress(styles, 50, 0, styles.Theme.Success))
}

func TestRenderScrollbar(t *testing.T) {
	styles := ui.DefaultStyles()
	assert.Empty(t, RenderScrollbar(styles, 10, 5, 10, 0))
	out := RenderScrollbar(styles, 10, 40, 10, 1)
	assert.Len(t, strings.Split(out, "\n"), 10)
}

func TestMenuNavigationAndChoose(t *testing.T) {
	m := NewMenu("branch", "Select Branch", []MenuItem{{Title: "A"}, {Title: "B"}}, 0)
	m.Footer = "more"

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Cursor(), "footer row is selectable")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Cursor())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, m.Visible())
	res := cmd().(MenuResult)
	assert.True(t, res.Footer)
	assert.False(t, res.Chosen)

	m = NewMenu("branch", "Select Branch", []MenuItem{{Title: "A"}, {Title: "B"}}, 1)
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res = cmd().(MenuResult)
	assert.Equal(t, MenuResult{Tag: "branch", Index: 1, Chosen: true}, res)
}

func TestMenuEscCancels(t *testing.T) {
	m := NewMenu("n", "Notifications", []MenuItem{{Title: "A"}}, 5)
	assert.Equal(t, 0, m.Cursor(), "out of range start clamps to 0")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Visible())
	assert.Equal(t, MenuResult{Tag: "n", Index: -1}, cmd().(MenuResult))
}

func TestMenuRowAt(t *testing.T) {
	m := NewMenu("n", "x", []MenuItem{{Title: "A"}, {Title: "B"}}, 0)
	m.Footer = "all"
	assert.Equal(t, -1, m.RowAt(0))
	assert.Equal(t, 0, m.RowAt(3))
	assert.Equal(t, 0, m.RowAt(4))
	assert.Equal(t, 1, m.RowAt(5))
	assert.Equal(t, -1, m.RowAt(7), "separator")
	assert.Equal(t, 2, m.RowAt(8), "footer")
}

func TestMenuView(t *testing.T) {
	styles := ui.DefaultStyles()
	m := NewMenu("branch", "Select Branch", []MenuItem{
		{Glyph: "⌖", Title: "Main Branch", Detail: "Downtown", Checked: true},
	}, 0)
	out := m.View(styles)
	assert.Contains(t, out, "Select Branch")
	assert.Contains(t, out, "Main Branch")
	assert.Contains(t, out, "Downtown")
	assert.Contains(t, out, "✓")
}

func TestDialogReturnsValue(t *testing.T) {
	d := NewInputDialog("Date range", "FROM..TO", "2024-01-01", "", "date")
	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, d.Visible())
	assert.Equal(t, DialogResult{Confirmed: true, Value: "2024-01-01", Tag: "date"}, cmd())

	d = NewInputDialog("Date range", "", "", "", "date")
	_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, DialogResult{Tag: "date"}, cmd())
}

func TestHeaderZones(t *testing.T) {
	styles := ui.DefaultStyles()
	out, zones := RenderHeader(styles, HeaderData{
		Title: "Dashboard", Subtitle: "Welcome", MenuButton: true,
		BranchName: "Main Branch", NotificationCount: 4,
	}, 120)
	assert.Len(t, strings.Split(out, "\n"), HeaderRows)
	require.Len(t, zones, 4)
	assert.Equal(t, HeaderMenu, HeaderControlAt(zones, 1))
	assert.Equal(t, HeaderNotifications, HeaderControlAt(zones, 118))
	assert.Equal(t, HeaderNone, HeaderControlAt(zones, 50))

	branch := zones[1]
	assert.Equal(t, HeaderBranch, branch.Control)
	assert.Equal(t, HeaderBranch, HeaderControlAt(zones, branch.Start))
}

func TestSidebarRender(t *testing.T) {
	styles := ui.DefaultStyles()
	items := []NavItem{{Icon: "⌂", Label: "Dashboard", Active: true}, {Icon: "▦", Label: "Items"}}

	open := RenderSidebar(styles, SidebarData{Items: items, Width: 32, Height: 20, ShowLabels: true,
		ThemeLabel: "Dark Mode", User: "SS", Role: "Administrator"})
	assert.Contains(t, open, "Business Pro")
	assert.Contains(t, open, "Dashboard")
	assert.Contains(t, open, "Dark Mode")
	assert.Contains(t, open, "☰")
	assert.Len(t, strings.Split(open, "\n"), 20)
	assert.Equal(t, 32, lipgloss.Width(open))

	collapsed := RenderSidebar(styles, SidebarData{Items: items, Width: 8, Height: 20, User: "SS"})
	assert.NotContains(t, collapsed, "Dashboard")
	assert.NotContains(t, collapsed, "Business Pro")

	mobile := RenderSidebar(styles, SidebarData{Items: items, Width: 32, Height: 20, ShowLabels: true, CloseGlyph: true})
	assert.Contains(t, mobile, "✕")

	assert.Equal(t, 17, SidebarThemeRow(20))
	assert.Empty(t, RenderSidebar(styles, SidebarData{Width: 1, Height: 5}))
}

func TestStatusBar(t *testing.T) {
	styles := ui.DefaultStyles()
	out := RenderStatusBar(styles, StatusBarData{Branch: "Bole Branch", DateRange: "2024-01-01..2024-01-02",
		Class: "desktop", WidthPx: 1024}, 120)
	assert.Contains(t, out, "Bole Branch")
	assert.Contains(t, out, "2024-01-01..2024-01-02")
	assert.Contains(t, out, "desktop 1024px")

	out = RenderStatusBar(styles, StatusBarData{Branch: "Main Branch", Class: "mobile", Message: "boom", IsError: true}, 50)
	assert.Contains(t, out, "mobile")
	assert.Contains(t, out, "boom")
}

func TestSkeletonCardWidth(t *testing.T) {
	styles := ui.DefaultStyles()
	assert.Equal(t, 30, lipgloss.Width(RenderSkeletonCard(styles, 30)))
}

func TestHelpTitleFitsOnOneLine(t *testing.T) {
	styles := ui.DefaultStyles()
	for _, w := range []int{80, 120, 200} {
		out := RenderHelp(styles, "Keyboard Shortcuts", GlobalHelpEntries(), w, 40)
		assert.Contains(t, out, "Keyboard Shortcuts", "width %d", w)
	}
}
