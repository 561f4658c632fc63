package views

import (
	"strings"
	"testing"

	"github.com/Akashdeep-Patra/posdash/internal/common"
	"github.com/Akashdeep-Patra/posdash/internal/dashboard"
	"github.com/Akashdeep-Patra/posdash/internal/metrics"
	"github.com/Akashdeep-Patra/posdash/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct{ branch string }

func (s *stubSource) Branch() string                 { return s.branch }
func (s *stubSource) Metrics() metrics.BranchMetrics { return metrics.Lookup(s.branch) }

func load(t *testing.T, v *DashboardView, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	v.Update(cmd())
}

func TestDashboardShowsSkeletonUntilLoaded(t *testing.T) {
	v := NewDashboardView(&stubSource{branch: "main"}, ui.NewStyleSet())
	v.SetSize(100, 40)
	assert.False(t, v.Loaded())
	assert.NotContains(t, v.View(), "Today's Sales")

	load(t, v, v.Init())
	assert.True(t, v.Loaded())
	out := v.View()
	assert.Contains(t, out, "Today's Sales")
	assert.Contains(t, out, "$15,750")
}

func TestDashboardReloadsOnBranchChange(t *testing.T) {
	src := &stubSource{branch: "main"}
	v := NewDashboardView(src, ui.NewStyleSet())
	v.SetSize(200, 80)
	load(t, v, v.Init())

	src.branch = "bole"
	_, cmd := v.Update(common.BranchChangedMsg{ID: "bole"})
	load(t, v, cmd)

	assert.Equal(t, metrics.Lookup("bole"), v.Data())
	out := v.View()
	assert.Contains(t, out, "$18,900")
	assert.Contains(t, out, "↘ 8.5%")
	assert.Contains(t, out, "35 transactions")
}

func TestDashboardOverviewPanels(t *testing.T) {
	v := NewDashboardView(&stubSource{branch: "addis"}, ui.NewStyleSet())
	v.SetSize(200, 80)
	load(t, v, v.Init())
	out := v.View()
	for _, want := range []string{"Inventory Status", "Financial Overview", "Payment Methods", "Top Customers", "John Smith", "23 items"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "$187,500", "inventory value is hidden")
}

func TestDashboardFitsWidth(t *testing.T) {
	v := NewDashboardView(&stubSource{branch: "main"}, ui.NewStyleSet())
	for _, w := range []int{40, 80, 130} {
		v.SetSize(w, 30)
		load(t, v, v.Init())
		for _, line := range strings.Split(v.View(), "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), w)
		}
	}
}

func TestDashboardThemeChangeRerenders(t *testing.T) {
	set := ui.NewStyleSet()
	v := NewDashboardView(&stubSource{branch: "main"}, set)
	v.SetSize(100, 40)
	load(t, v, v.Init())

	set.Apply(true)
	_, cmd := v.Update(common.ThemeChangedMsg{Dark: true})
	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "Today's Sales")
}

func TestCardColor(t *testing.T) {
	th := ui.DarkTheme()
	assert.Equal(t, th.CardGreen, CardColor(th, metrics.Green))
	assert.Equal(t, th.CardPurple, CardColor(th, metrics.Purple))
	assert.Equal(t, th.Neutral, CardColor(th, metrics.Color(99)))
}

func TestDashboardRefreshSnapshotsSource(t *testing.T) {
	page := dashboard.NewPage(nil, "")
	page.HandleBranchChange("bole")
	v := NewDashboardView(page, ui.NewStyleSet())
	v.SetSize(100, 40)

	cmd := v.Init()
	done := make(chan tea.Msg)
	go func() { done <- cmd() }()
	page.HandleBranchChange("addis")
	msg := (<-done).(metricsResultMsg)

	assert.Equal(t, "bole", msg.branch)
	assert.Equal(t, metrics.Lookup("bole"), msg.data)
}

func TestDashboardDropsSupersededResult(t *testing.T) {
	page := dashboard.NewPage(nil, "")
	v := NewDashboardView(page, ui.NewStyleSet())
	v.SetSize(100, 40)

	page.HandleBranchChange("bole")
	_, cmdBole := v.Update(common.BranchChangedMsg{ID: "bole"})
	page.HandleBranchChange("addis")
	_, cmdAddis := v.Update(common.BranchChangedMsg{ID: "addis"})

	v.Update(cmdAddis())
	v.Update(cmdBole())
	assert.Equal(t, metrics.Lookup("addis"), v.Data())

	v2 := NewDashboardView(page, ui.NewStyleSet())
	v2.Update(cmdBole())
	assert.False(t, v2.Loaded(), "a result for another branch is ignored")
	v2.Update(cmdAddis())
	assert.Equal(t, metrics.Lookup("addis"), v2.Data())
}
