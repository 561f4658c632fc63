package views

import (
	"fmt"
	"strings"

	"github.com/Akashdeep-Patra/posdash/internal/metrics"
	"github.com/Akashdeep-Patra/posdash/internal/ui"
	"github.com/Akashdeep-Patra/posdash/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

const (
	minHeadlineWidth = 30
	minPanelWidth    = 40
)

// CardColor resolves a headline accent against the active theme.
func CardColor(t ui.Theme, c metrics.Color) lipgloss.Color {
	switch c {
	case metrics.Green:
		return t.CardGreen
	case metrics.Blue:
		return t.CardBlue
	case metrics.Red:
		return t.CardRed
	case metrics.Purple:
		return t.CardPurple
	}
	return t.Neutral
}

func renderSkeleton(styles ui.Styles, width int) string {
	cols := components.GridColumns(width, minHeadlineWidth, 4)
	cardW := width / cols
	cards := make([]string, 4)
	for i := range cards {
		cards[i] = components.RenderSkeletonCard(styles, cardW)
	}
	return components.RenderGrid(cards, cols)
}

func renderPanels(styles ui.Styles, m metrics.BranchMetrics, o metrics.Overview, width int) string {
	cols := components.GridColumns(width, minHeadlineWidth, 4)
	cardW := width / cols
	var headline []string
	for _, c := range metrics.Cards(m) {
		headline = append(headline, renderHeadline(styles, c, cardW))
	}

	pcols := components.GridColumns(width, minPanelWidth, 2)
	panelW := width / pcols
	panels := []string{
		renderInventory(styles, o.Inventory, panelW),
		renderFinancial(styles, o.Financial, panelW),
		renderPayments(styles, o.PaymentMethods, panelW),
		renderCustomers(styles, o.TopCustomers, panelW),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.RenderGrid(headline, cols),
		components.RenderGrid(panels, pcols),
	)
}

func renderHeadline(styles ui.Styles, c metrics.Card, width int) string {
	inner := max(4, width-4)
	accent := CardColor(styles.Theme, c.Color)

	badge := styles.BadgeUp
	if !c.Metric.Up() {
		badge = styles.BadgeDown
	}
	icon := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(c.Icon)

	lines := []string{
		ui.SpreadRow(styles.Muted.Render(c.Title), icon, inner),
		lipgloss.NewStyle().Foreground(accent).Bold(true).Render(c.Metric.Value),
		badge.Render(c.Metric.Badge()) + styles.Muted.Render(" from yesterday"),
	}
	if c.Metric.Transactions > 0 {
		lines = append(lines, ui.SpreadRow(styles.Muted.Render(c.Metric.TransactionsLabel()),
			styles.Body.Render("Total "+c.Metric.Total), inner))
	} else {
		lines = append(lines, ui.SpreadRow(styles.Muted.Render("Total"), styles.Body.Render(c.Metric.Total), inner))
	}
	lines = append(lines, ui.SpreadRow(styles.Muted.Render("Yesterday"), styles.Body.Render(c.Metric.Yesterday), inner))

	return styles.Card.BorderForeground(accent).Width(width - 2).Render(strings.Join(lines, "\n"))
}

func panel(styles ui.Styles, title string, width int, rows []string) string {
	body := append([]string{styles.PanelTitle.Render(title), ""}, rows...)
	return styles.Card.Width(width - 2).Render(strings.Join(body, "\n"))
}

func renderInventory(styles ui.Styles, inv metrics.Inventory, width int) string {
	inner := max(4, width-4)
	value := inv.Value
	if inv.ValueHidden {
		value = "••••••"
	}
	rows := []string{
		ui.SpreadRow(styles.Muted.Render("Total Items"), styles.Bold.Render(inv.TotalItems), inner),
		ui.SpreadRow(styles.Muted.Render("Inventory Value"), styles.Bold.Render(value), inner),
		ui.SpreadRow(styles.Muted.Render("Critical Stock"),
			styles.BadgeAlert.Render(fmt.Sprintf("%d items", inv.CriticalCount)), inner),
	}
	return panel(styles, "Inventory Status", width, rows)
}

func renderFinancial(styles ui.Styles, f metrics.Financial, width int) string {
	inner := max(4, width-4)
	kv := func(k, v string, s lipgloss.Style) string {
		return ui.SpreadRow(styles.Muted.Render(k), s.Render(v), inner)
	}
	rows := []string{
		kv("Net Position", f.NetPosition, styles.BadgeUp),
		kv("Receivables", f.Receivables, styles.Bold),
		kv("Payables", f.Payables, styles.Bold),
		kv("Gross Profit", f.GrossProfit, styles.Bold),
		kv("Net Profit", f.NetProfit, styles.BadgeUp),
		kv("Profit Margin", f.Margin, styles.Bold),
	}
	return panel(styles, "Financial Overview", width, rows)
}

func renderPayments(styles ui.Styles, methods []metrics.PaymentMethod, width int) string {
	inner := max(4, width-4)
	fills := []lipgloss.Color{styles.Theme.CardGreen, styles.Theme.CardBlue, styles.Theme.CardPurple}
	var rows []string
	for i, pm := range methods {
		rows = append(rows,
			ui.SpreadRow(styles.Body.Render(pm.Name),
				styles.Muted.Render(fmt.Sprintf("%d%%  %s", pm.Percent, pm.Amount)), inner),
			components.RenderProgress(styles, pm.Percent, inner, fills[i%len(fills)]),
		)
	}
	return panel(styles, "Payment Methods", width, rows)
}

func renderCustomers(styles ui.Styles, customers []metrics.Customer, width int) string {
	inner := max(4, width-4)
	var rows []string
	for i, c := range customers {
		left := styles.BadgeSubtle.Render(metrics.Initials(c.Name)) + " " + styles.Body.Render(c.Name)
		right := styles.Bold.Render(c.Spent) + styles.Muted.Render(fmt.Sprintf(" %d txn", c.Transactions))
		rows = append(rows, ui.SpreadRow(fmt.Sprintf("%d. %s", i+1, left), right, inner))
	}
	return panel(styles, "Top Customers", width, rows)
}
