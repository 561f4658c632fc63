package views

import (
	"github.com/Akashdeep-Patra/posdash/internal/common"
	"github.com/Akashdeep-Patra/posdash/internal/metrics"
	"github.com/Akashdeep-Patra/posdash/internal/ui"
	"github.com/Akashdeep-Patra/posdash/internal/ui/components"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MetricsSource supplies the headline bucket for the selected branch.
type MetricsSource interface {
	Branch() string
	Metrics() metrics.BranchMetrics
}

// DashboardView renders the metric cards in a scrollable pane.
type DashboardView struct {
	source   MetricsSource
	styles   *ui.StyleSet
	width    int
	height   int
	vp       viewport.Model
	loaded   bool
	branch   string
	data     metrics.BranchMetrics
	overview metrics.Overview
}

// NewDashboardView creates a new DashboardView.
func NewDashboardView(source MetricsSource, styles *ui.StyleSet) *DashboardView {
	return &DashboardView{
		source: source,
		styles: styles,
		vp:     viewport.New(0, 0),
	}
}

type metricsResultMsg struct {
	branch   string
	data     metrics.BranchMetrics
	overview metrics.Overview
}

func (v *DashboardView) Init() tea.Cmd { return v.refresh() }

func (v *DashboardView) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.vp.Width = max(0, w-1) // scrollbar column
	v.vp.Height = h
	v.render()
}

// Loaded reports whether the first lookup has completed.
func (v *DashboardView) Loaded() bool { return v.loaded }

// Data returns the bucket currently displayed.
func (v *DashboardView) Data() metrics.BranchMetrics { return v.data }

// refresh snapshots the source on the Update goroutine; the command only
// carries the values.
func (v *DashboardView) refresh() tea.Cmd {
	res := metricsResultMsg{
		branch:   v.source.Branch(),
		data:     v.source.Metrics(),
		overview: metrics.StaticOverview(),
	}
	return func() tea.Msg { return res }
}

func (v *DashboardView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case metricsResultMsg:
		if msg.branch != v.source.Branch() {
			return v, nil // superseded by a later selection
		}
		v.loaded = true
		if msg.branch != v.branch {
			v.vp.GotoTop()
		}
		v.branch = msg.branch
		v.data = msg.data
		v.overview = msg.overview
		v.render()
		return v, nil

	case common.RefreshMsg, common.BranchChangedMsg:
		return v, v.refresh()

	case common.ThemeChangedMsg:
		v.render()
		return v, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			v.vp.ScrollUp(3)
			return v, nil
		case tea.MouseButtonWheelDown:
			v.vp.ScrollDown(3)
			return v, nil
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "g", "home":
			v.vp.GotoTop()
			return v, nil
		case "G", "end":
			v.vp.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *DashboardView) render() {
	if v.width <= 0 {
		return
	}
	styles := v.styles.Get()
	if !v.loaded {
		v.vp.SetContent(renderSkeleton(styles, v.vp.Width))
		return
	}
	v.vp.SetContent(renderPanels(styles, v.data, v.overview, v.vp.Width))
}

func (v *DashboardView) View() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	styles := v.styles.Get()
	body := v.vp.View()
	bar := components.RenderScrollbar(styles, v.height, v.vp.TotalLineCount(), v.vp.Height, v.vp.ScrollPercent())
	if bar == "" {
		return body
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
}

func (v *DashboardView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "j/k", Desc: "Scroll"},
		{Key: "pgup/pgdn", Desc: "Page up/down"},
		{Key: "g/G", Desc: "Top / bottom"},
	}
}
