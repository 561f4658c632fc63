package app

import (
	"fmt"
	"time"

	"github.com/Akashdeep-Patra/posdash/internal/common"
	"github.com/Akashdeep-Patra/posdash/internal/config"
	"github.com/Akashdeep-Patra/posdash/internal/dashboard"
	"github.com/Akashdeep-Patra/posdash/internal/logger"
	"github.com/Akashdeep-Patra/posdash/internal/metrics"
	"github.com/Akashdeep-Patra/posdash/internal/notifications"
	"github.com/Akashdeep-Patra/posdash/internal/shell"
	"github.com/Akashdeep-Patra/posdash/internal/ui"
	"github.com/Akashdeep-Patra/posdash/internal/ui/components"
	"github.com/Akashdeep-Patra/posdash/internal/ui/views"
	"github.com/Akashdeep-Patra/posdash/internal/viewport"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	pageTitle    = "Dashboard"
	pageSubtitle = "Welcome back to your business overview"
	profileName  = "SS"
	profileRole  = "Administrator"

	menuBranch        = "branch"
	menuNotifications = "notifications"
	dialogDate        = "date"
)

// Model is the top-level Bubbletea model: the responsive shell around the
// dashboard page.
type Model struct {
	cfg     *config.Config
	log     *logger.Logger
	styles  *ui.StyleSet
	keys    KeyMap
	width   int
	height  int
	content common.View

	tracker     *viewport.Tracker
	unsubscribe func()
	sidebar     *shell.Sidebar
	theme       *shell.Theme
	page        *dashboard.Page
	branches    *dashboard.BranchSelector
	dates       *dashboard.DateRangeSelector

	menu   *components.Menu
	dialog *components.Dialog

	showHelp  bool
	statusMsg string
	statusErr bool
	statusExp time.Time

	// Last size handed to the content view.
	contentW, contentH int
}

// frame is the layout of one render, in terminal cells.
type frame struct {
	layout      shell.Layout
	sidebarCols int
	marginCols  int
	contentW    int
	bodyH       int // everything above the status bar
	contentH    int
}

// New wires the shell, the page and its selectors. A nil logger discards.
func New(cfg *config.Config, log *logger.Logger) Model {
	if log == nil {
		log = logger.Discard()
	}
	styles := ui.NewStyleSet()
	page := dashboard.NewPage(log.Logger, cfg.DateLayout)

	sidebar := shell.NewSidebar(func(s shell.SidebarState) {
		log.Debug("sidebar changed", "open", s.Open, "class", s.Class.String())
	})
	tracker := viewport.NewTracker()
	unsubscribe := tracker.Subscribe(sidebar.OnViewport)

	return Model{
		cfg:         cfg,
		log:         log,
		styles:      styles,
		keys:        DefaultKeyMap(),
		content:     views.NewDashboardView(page, styles),
		tracker:     tracker,
		unsubscribe: unsubscribe,
		sidebar:     sidebar,
		theme:       shell.NewTheme(styles.Apply),
		page:        page,
		branches:    dashboard.NewBranchSelector(page.HandleBranchChange),
		dates:       dashboard.NewDateRangeSelector(page.HandleDateRangeChange),
	}
}

// Close detaches the shell from the viewport tracker.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init loads the dashboard data.
func (m Model) Init() tea.Cmd {
	return m.content.Init()
}

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Dialog has exclusive input when visible.
	if m.dialog != nil && m.dialog.Visible() {
		switch msg.(type) {
		case tea.MouseMsg:
			return m, nil
		case tea.KeyMsg:
			d, cmd := m.dialog.Update(msg)
			m.dialog = &d
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.observe()
		m.syncSize()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.menu != nil && m.menu.Visible() {
			menu, cmd := m.menu.Update(msg)
			m.menu = &menu
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Back):
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
			m.sidebar.ClickOverlay()
			m.syncSize()
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, common.CmdRefresh
		case key.Matches(msg, m.keys.ToggleSidebar):
			m.sidebar.Toggle()
			m.syncSize()
			return m, nil
		case key.Matches(msg, m.keys.ToggleTheme):
			return m, m.toggleTheme()
		case key.Matches(msg, m.keys.Branch):
			m.openBranchMenu()
			return m, nil
		case key.Matches(msg, m.keys.BranchJump):
			i := int(msg.Runes[0] - '1')
			if i < 0 || i >= len(dashboard.Branches) {
				return m, nil
			}
			return m, m.selectBranch(dashboard.Branches[i].ID)
		case key.Matches(msg, m.keys.DateRange):
			m.openDateDialog()
			return m, nil
		case key.Matches(msg, m.keys.ClearDate):
			if m.dates.Current() == nil {
				return m, nil
			}
			m.dates.Clear()
			return m, common.CmdInfo("Date range cleared")
		case key.Matches(msg, m.keys.Notifications):
			m.openNotifications()
			return m, nil
		}
		// Keys not handled globally are forwarded to the content view below.

	case components.MenuResult:
		m.menu = nil
		return m, m.handleMenuResult(msg)

	case components.DialogResult:
		m.dialog = nil
		return m, m.handleDialogResult(msg)

	case common.ConfigReloadedMsg:
		if msg.Cfg == nil {
			return m, nil
		}
		m.cfg = msg.Cfg
		m.log.SetDebug(msg.Cfg.Debug)
		m.log.Info("config reloaded", "file", msg.Cfg.File, "cell_width_px", msg.Cfg.CellWidthPx)
		if m.width > 0 {
			m.observe()
			m.syncSize()
		}
		return m, common.CmdInfo("Config reloaded")

	case common.ErrMsg:
		m.log.Error("dashboard error", "err", msg.Err)
		m.statusMsg = msg.Err.Error()
		m.statusErr = true
		m.statusExp = time.Now().Add(5 * time.Second)
		return m, nil

	case common.InfoMsg:
		m.statusMsg = msg.Text
		m.statusErr = false
		m.statusExp = time.Now().Add(3 * time.Second)
		return m, nil
	}

	return m, m.forward(msg)
}

// forward passes msg to the content view.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	updated, cmd := m.content.Update(msg)
	m.content = updated
	return cmd
}

// observe reports the terminal width, in pixels, to the viewport tracker.
// The tracker notifies the sidebar on class transitions.
func (m *Model) observe() {
	px := viewport.CellsToPixels(m.width, m.cfg.CellWidthPx)
	class, changed := m.tracker.Observe(px)
	if changed {
		m.log.Info("viewport class changed", "class", class.String(), "width_px", px)
	}
}

// frame derives the cell layout from the sidebar state.
func (m Model) frame() frame {
	l := shell.Derive(m.sidebar.State())
	f := frame{
		layout:      l,
		sidebarCols: min(m.width, viewport.PixelsToCells(l.SidebarWidth, m.cfg.CellWidthPx)),
		marginCols:  min(m.width, viewport.PixelsToCells(l.ContentMargin, m.cfg.CellWidthPx)),
		bodyH:       max(1, m.height-1),
	}
	f.contentW = max(1, m.width-f.marginCols)
	f.contentH = max(1, f.bodyH-components.HeaderRows)
	return f
}

// syncSize resizes the content view when the layout moved.
func (m *Model) syncSize() {
	f := m.frame()
	if f.contentW == m.contentW && f.contentH == m.contentH {
		return
	}
	m.contentW, m.contentH = f.contentW, f.contentH
	m.content.SetSize(f.contentW, f.contentH)
}

func (m *Model) toggleTheme() tea.Cmd {
	dark := m.theme.Toggle()
	m.log.Info("theme toggled", "dark", dark)
	return m.forward(common.ThemeChangedMsg{Dark: dark})
}

func (m *Model) selectBranch(id string) tea.Cmd {
	if err := m.branches.Select(id); err != nil {
		return common.CmdErr(err)
	}
	b := m.branches.Selected()
	return tea.Batch(
		m.forward(common.BranchChangedMsg{ID: b.ID}),
		common.CmdInfo("Showing "+b.Name),
	)
}

func (m *Model) openBranchMenu() {
	selected := m.branches.Selected().ID
	items := make([]components.MenuItem, len(dashboard.Branches))
	for i, b := range dashboard.Branches {
		items[i] = components.MenuItem{
			Glyph:   "⌖",
			Title:   b.Name,
			Detail:  b.Location,
			Checked: b.ID == selected,
		}
	}
	menu := components.NewMenu(menuBranch, "Select Branch", items, m.branches.Index())
	m.menu = &menu
}

func (m *Model) openNotifications() {
	t := m.styles.Get().Theme
	feed := notifications.Feed()
	items := make([]components.MenuItem, len(feed))
	for i, n := range feed {
		p := n.Kind.Present()
		items[i] = components.MenuItem{
			Glyph:  p.Glyph,
			Title:  n.Title,
			Detail: n.Message,
			Meta:   n.Time,
			Color:  toneColor(t, p.Tone),
		}
	}
	menu := components.NewMenu(menuNotifications, "Notifications", items, 0)
	menu.Badge = fmt.Sprintf("%d new", len(feed))
	menu.Footer = "View all notifications"
	menu.Width = 48
	m.menu = &menu
}

func (m *Model) openDateDialog() {
	layout := m.page.DateLayout()
	value := ""
	if r := m.dates.Current(); r != nil {
		value = r.Format(layout)
	}
	hint := "FROM..TO or a single day, " + layout + ". Empty clears."
	d := components.NewInputDialog("Date range", layout+".."+layout, value, hint, dialogDate)
	m.dialog = &d
}

func (m *Model) handleMenuResult(res components.MenuResult) tea.Cmd {
	switch res.Tag {
	case menuBranch:
		if res.Chosen && res.Index < len(dashboard.Branches) {
			return m.selectBranch(dashboard.Branches[res.Index].ID)
		}
	case menuNotifications:
		feed := notifications.Feed()
		switch {
		case res.Footer:
			m.log.Info("notifications opened", "count", len(feed))
			return common.CmdInfo(fmt.Sprintf("%d notifications", len(feed)))
		case res.Chosen && res.Index < len(feed):
			n := feed[res.Index]
			m.log.Info("notification opened", "id", n.ID, "kind", n.Kind.String())
			return common.CmdInfo(n.Title + ": " + n.Message)
		}
	}
	return nil
}

func (m *Model) handleDialogResult(res components.DialogResult) tea.Cmd {
	if res.Tag != dialogDate || !res.Confirmed {
		return nil
	}
	r, err := dashboard.ParseDateRange(res.Value, m.page.DateLayout())
	if err != nil {
		return common.CmdErr(err)
	}
	m.dates.Set(r)
	if r == nil {
		return common.CmdInfo("Date range cleared")
	}
	return common.CmdInfo("Date range " + r.Format(m.page.DateLayout()))
}

func toneColor(t ui.Theme, tone notifications.Tone) lipgloss.Color {
	switch tone {
	case notifications.ToneInfo:
		return t.Info
	case notifications.ToneSuccess:
		return t.Success
	case notifications.ToneWarning:
		return t.Warning
	}
	return t.Neutral
}

// menuOrigin places the open menu under the header's right-hand controls.
func (m Model) menuOrigin(styles ui.Styles) (x, y int) {
	w := lipgloss.Width(m.menu.View(styles))
	return max(0, m.width-w-1), components.HeaderRows - 1
}

func (m Model) headerData(f frame) components.HeaderData {
	label := ""
	if r := m.dates.Current(); r != nil {
		label = r.Format(m.page.DateLayout())
	}
	return components.HeaderData{
		Title:             pageTitle,
		Subtitle:          pageSubtitle,
		MenuButton:        f.layout.HeaderMenuButton,
		BranchName:        m.branches.Selected().Name,
		DateLabel:         label,
		NotificationCount: notifications.Count(),
		Compact:           f.contentW < 70,
	}
}

func (m Model) sidebarData(f frame) components.SidebarData {
	return components.SidebarData{
		Items:      common.NavItems,
		Width:      f.sidebarCols,
		Height:     f.bodyH,
		ShowLabels: f.layout.ShowLabels,
		CloseGlyph: f.layout.CloseGlyph,
		DarkMode:   m.theme.Dark(),
		ThemeLabel: m.theme.Label(),
		User:       profileName,
		Role:       profileRole,
	}
}

// handleMouse hit-tests clicks against the menu, the sidebar, the mobile
// overlay and the header controls. The wheel scrolls the content.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	f := m.frame()

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if (m.menu != nil && m.menu.Visible()) || f.layout.Overlay || m.showHelp {
			return m, nil
		}
		msg.Y -= components.HeaderRows
		return m, m.forward(msg)

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	styles := m.styles.Get()

	if m.menu != nil && m.menu.Visible() {
		x0, y0 := m.menuOrigin(styles)
		w, h := lipgloss.Size(m.menu.View(styles))
		if msg.X >= x0 && msg.X < x0+w && msg.Y >= y0 && msg.Y < y0+h {
			if row := m.menu.RowAt(msg.Y - y0); row >= 0 {
				menu, cmd := m.menu.Choose(row)
				m.menu = &menu
				return m, cmd
			}
			return m, nil
		}
		// Clicking elsewhere dismisses the menu.
		menu, cmd := m.menu.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m.menu = &menu
		return m, cmd
	}

	if msg.Y >= f.bodyH {
		return m, nil
	}

	if f.layout.Visible() && msg.X < f.sidebarCols {
		switch msg.Y {
		case components.SidebarToggleRow:
			m.sidebar.Toggle()
			m.syncSize()
		case components.SidebarThemeRow(f.bodyH):
			return m, m.toggleTheme()
		}
		return m, nil
	}

	if f.layout.Overlay {
		m.sidebar.ClickOverlay()
		m.syncSize()
		return m, nil
	}

	if msg.Y == 0 {
		_, zones := components.RenderHeader(styles, m.headerData(f), f.contentW)
		switch components.HeaderControlAt(zones, msg.X-f.marginCols) {
		case components.HeaderMenu:
			m.sidebar.Toggle()
			m.syncSize()
		case components.HeaderBranch:
			m.openBranchMenu()
		case components.HeaderDate:
			m.openDateDialog()
		case components.HeaderNotifications:
			m.openNotifications()
		}
		return m, nil
	}

	if msg.Y >= components.HeaderRows {
		msg.Y -= components.HeaderRows
		msg.X -= f.marginCols
		return m, m.forward(msg)
	}
	return m, nil
}

// View renders the entire UI. This is a pure function — no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	styles := m.styles.Get()

	if m.showHelp {
		sections := components.GlobalHelpEntries()
		sections["Dashboard"] = m.content.ShortHelp()
		return components.RenderHelp(styles, "Keyboard Shortcuts", sections, m.width, m.height)
	}

	f := m.frame()
	header, _ := components.RenderHeader(styles, m.headerData(f), f.contentW)
	content := lipgloss.NewStyle().Width(f.contentW).Height(f.contentH).MaxHeight(f.contentH).
		Render(m.content.View())
	main := lipgloss.JoinVertical(lipgloss.Left, header, content)

	var body string
	switch {
	case !f.layout.Visible():
		body = main
	case f.layout.Overlay:
		sidebar := components.RenderSidebar(styles, m.sidebarData(f))
		body = ui.Overlay(ui.Dim(styles.Overlay, main), sidebar, 0, 0)
	default:
		sidebar := components.RenderSidebar(styles, m.sidebarData(f))
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	}

	screen := lipgloss.JoinVertical(lipgloss.Left, body, components.RenderStatusBar(styles, m.statusData(), m.width))

	if m.menu != nil && m.menu.Visible() {
		x, y := m.menuOrigin(styles)
		screen = ui.Overlay(screen, m.menu.View(styles), x, y)
	}
	if m.dialog != nil && m.dialog.Visible() {
		box := m.dialog.View(styles)
		w, h := lipgloss.Size(box)
		screen = ui.Overlay(screen, box, (m.width-w)/2, (m.height-h)/2)
	}
	return screen
}

func (m Model) statusData() components.StatusBarData {
	data := components.StatusBarData{
		Branch:  m.branches.Selected().Name,
		Class:   m.tracker.Class().String(),
		WidthPx: m.tracker.Width(),
		Dark:    m.theme.Dark(),
	}
	if r := m.dates.Current(); r != nil {
		data.DateRange = r.Format(m.page.DateLayout())
	}
	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		data.Message = m.statusMsg
		data.IsError = m.statusErr
	}
	return data
}

// Metrics returns the bucket the dashboard is showing for the selected
// branch.
func (m Model) Metrics() metrics.BranchMetrics { return m.page.Metrics() }
