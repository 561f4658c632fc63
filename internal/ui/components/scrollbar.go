package components

import (
	"strings"

	"github.com/Akashdeep-Patra/posdash/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar returns a vertical track of height rows whose thumb is
// sized by visible/total and placed by scrollPct (0.0–1.0). It returns ""
// when everything fits.
func RenderScrollbar(styles ui.Styles, height, total, visible int, scrollPct float64) string {
	if total <= visible || height < 1 {
		return ""
	}

	thumb := max(1, min(height, height*visible/total))
	free := height - thumb
	start := max(0, min(free, int(scrollPct*float64(free))))

	thumbStyle := lipgloss.NewStyle().Foreground(styles.Theme.Primary)
	trackStyle := lipgloss.NewStyle().Foreground(styles.Theme.Border)

	var b strings.Builder
	b.Grow(height * 4)
	for i := 0; i < height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= start && i < start+thumb {
			b.WriteString(thumbStyle.Render("█"))
		} else {
			b.WriteString(trackStyle.Render("░"))
		}
	}
	return b.String()
}
