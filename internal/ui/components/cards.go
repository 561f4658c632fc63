package components

import (
	"strings"

	"github.com/Akashdeep-Patra/posdash/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// GridColumns picks how many cards fit side by side in width, capped at
// maxCols and never below one.
func GridColumns(width, minCardWidth, maxCols int) int {
	if minCardWidth <= 0 {
		return 1
	}
	cols := width / minCardWidth
	if cols > maxCols {
		cols = maxCols
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

// RenderGrid lays out rendered cards in rows of cols, padding every row to
// the height of its tallest card.
func RenderGrid(cards []string, cols int) string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := min(i+cols, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderProgress renders a horizontal bar filled to pct (0–100).
func RenderProgress(styles ui.Styles, pct, width int, fill lipgloss.Color) string {
	if width < 1 {
		return ""
	}
	pct = max(0, min(100, pct))
	filled := pct * width / 100
	return lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(styles.Theme.Border).Render(strings.Repeat("░", width-filled))
}

// RenderSkeletonCard renders a placeholder card of the given width while
// data is loading.
func RenderSkeletonCard(styles ui.Styles, width int) string {
	inner := max(4, width-4)
	bar := func(n int) string {
		return styles.Skeleton.Render(strings.Repeat("▇", max(1, min(n, inner))))
	}
	lines := []string{
		ui.SpreadRow(bar(inner/2), bar(2), inner),
		bar(inner / 3),
		bar(inner / 4),
		ui.SpreadRow(bar(inner/4), bar(inner/5), inner),
		ui.SpreadRow(bar(inner/5), bar(inner/4), inner),
	}
	return styles.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}
