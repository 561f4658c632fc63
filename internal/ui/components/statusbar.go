package components

import (
	"fmt"
	"strings"

	"github.com/Akashdeep-Patra/posdash/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	Branch    string
	DateRange string // empty when cleared
	Class     string // viewport class
	WidthPx   int
	Dark      bool
	Message   string // transient info/error message
	IsError   bool
}

// RenderStatusBar renders the bottom status bar with sections separated by
// dim vertical bars.
//
// Wide (>= 60):   Main Branch │ 2024-01-01..2024-01-07 │ desktop 1024px      ? help
// Narrow (< 60):  Main Branch │ mobile
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Faint(true)
	sep := sepStyle.Render(" │ ")

	// ── Left sections ────────────────────────────────────────────

	branchStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	left := " " + branchStyle.Render("⌖ "+data.Branch)

	if width >= 60 && data.DateRange != "" {
		left += sep + lipgloss.NewStyle().Foreground(t.Text).Render("◷ "+data.DateRange)
	}

	class := data.Class
	if width >= 60 {
		class = fmt.Sprintf("%s %dpx", data.Class, data.WidthPx)
	}
	left += sep + lipgloss.NewStyle().Foreground(t.TextMuted).Render(class)

	if data.Dark {
		left += sep + lipgloss.NewStyle().Foreground(t.Accent).Render("dark")
	}

	// ── Right section ────────────────────────────────────────────

	var right string
	if data.Message != "" {
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(data.Message) + " "
	} else if width >= 60 {
		right = ui.RenderKeyValue(styles, "?", "help") + " "
	}

	// ── Assemble ─────────────────────────────────────────────────

	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := width - 2 - leftW - rightW // StatusBar padding
	if gap < 0 {
		gap = 1
		right = "" // drop right side if no room
	}

	content := left + strings.Repeat(" ", gap) + right

	return styles.StatusBar.Width(width).Render(content)
}
