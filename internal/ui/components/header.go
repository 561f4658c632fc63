package components

import (
	"fmt"
	"strings"

	"github.com/Akashdeep-Patra/posdash/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// HeaderControl identifies a clickable header element.
type HeaderControl int

const (
	HeaderNone HeaderControl = iota
	HeaderMenu
	HeaderBranch
	HeaderDate
	HeaderNotifications
)

// HeaderData carries the values shown in the header.
type HeaderData struct {
	Title             string
	Subtitle          string
	MenuButton        bool // mobile only
	BranchName        string
	DateLabel         string // empty when no range is set
	NotificationCount int
	Compact           bool // hide control labels on narrow widths
}

// HeaderZone maps an X range of the header's first row to a control.
type HeaderZone struct {
	Control HeaderControl
	Start   int // inclusive
	End     int // exclusive
}

// HeaderRows is the fixed header height: title row, subtitle row, rule.
const HeaderRows = 3

// RenderHeader renders the header and returns the hit zones of its
// controls, relative to the header's left edge.
func RenderHeader(styles ui.Styles, d HeaderData, width int) (string, []HeaderZone) {
	t := styles.Theme
	var zones []HeaderZone

	left := ""
	col := 1
	if d.MenuButton {
		btn := "[" + glyphMenu + "]"
		left = " " + btn + " "
		zones = append(zones, HeaderZone{Control: HeaderMenu, Start: col, End: col + lipgloss.Width(btn)})
	} else {
		left = " "
	}
	left += styles.Header.Render(d.Title)

	branch := "⌖ " + d.BranchName + " ▾"
	date := "◷ " + d.DateLabel
	if d.DateLabel == "" {
		date = "◷ Pick a date"
	}
	if d.Compact {
		branch = "⌖ ▾"
		date = "◷"
	}
	bell := fmt.Sprintf("♪ %d", d.NotificationCount)

	controls := []struct {
		id    HeaderControl
		label string
		style lipgloss.Style
	}{
		{HeaderBranch, branch, lipgloss.NewStyle().Foreground(t.Primary)},
		{HeaderDate, date, lipgloss.NewStyle().Foreground(t.Text)},
		{HeaderNotifications, bell, lipgloss.NewStyle().Foreground(t.Error).Bold(true)},
	}

	var parts []string
	for _, c := range controls {
		parts = append(parts, c.style.Render("["+c.label+"]"))
	}
	right := strings.Join(parts, " ") + " "

	row := ui.SpreadRow(left, right, width)

	// Zones are computed from the unstyled widths, right-aligned like the row.
	x := width - lipgloss.Width(right)
	if x < lipgloss.Width(left)+1 {
		x = lipgloss.Width(left) + 1
	}
	for _, c := range controls {
		w := lipgloss.Width("[" + c.label + "]")
		zones = append(zones, HeaderZone{Control: c.id, Start: x, End: x + w})
		x += w + 1
	}

	sub := " " + styles.HeaderSub.Render(d.Subtitle)
	rule := lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", max(0, width)))

	return lipgloss.JoinVertical(lipgloss.Left, row, sub, rule), zones
}

// HeaderControlAt returns the control under x on the header's first row.
func HeaderControlAt(zones []HeaderZone, x int) HeaderControl {
	for _, z := range zones {
		if x >= z.Start && x < z.End {
			return z.Control
		}
	}
	return HeaderNone
}
