package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds all colours for the application.
type Theme struct {
	Dark bool

	Bg            lipgloss.Color
	Surface       lipgloss.Color
	SurfaceHover  lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color
	Overlay       lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	TextInverse lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
	Neutral lipgloss.Color

	// Card accents, indexed by metrics.Color.
	CardGreen  lipgloss.Color
	CardBlue   lipgloss.Color
	CardRed    lipgloss.Color
	CardPurple lipgloss.Color
	CardOrange lipgloss.Color
	CardPink   lipgloss.Color
}

// DarkTheme returns the dark palette (Catppuccin Mocha based).
func DarkTheme() Theme {
	return Theme{
		Dark:          true,
		Bg:            lipgloss.Color("#1e1e2e"),
		Surface:       lipgloss.Color("#282840"),
		SurfaceHover:  lipgloss.Color("#313152"),
		Border:        lipgloss.Color("#3b3b5c"),
		BorderFocused: lipgloss.Color("#7c7cf0"),
		Overlay:       lipgloss.Color("#11111b"),

		Text:        lipgloss.Color("#cdd6f4"),
		TextMuted:   lipgloss.Color("#9399b2"),
		TextSubtle:  lipgloss.Color("#6c7086"),
		TextInverse: lipgloss.Color("#1e1e2e"),

		Primary:   lipgloss.Color("#89b4fa"),
		Secondary: lipgloss.Color("#b4befe"),
		Accent:    lipgloss.Color("#cba6f7"),

		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),
		Info:    lipgloss.Color("#89b4fa"),
		Neutral: lipgloss.Color("#9399b2"),

		CardGreen:  lipgloss.Color("#a6e3a1"),
		CardBlue:   lipgloss.Color("#89dceb"),
		CardRed:    lipgloss.Color("#f38ba8"),
		CardPurple: lipgloss.Color("#cba6f7"),
		CardOrange: lipgloss.Color("#fab387"),
		CardPink:   lipgloss.Color("#f5c2e7"),
	}
}

// LightTheme returns the light palette (Catppuccin Latte based). It is the
// palette every session starts with.
func LightTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#eff1f5"),
		Surface:       lipgloss.Color("#e6e9ef"),
		SurfaceHover:  lipgloss.Color("#dce0e8"),
		Border:        lipgloss.Color("#bcc0cc"),
		BorderFocused: lipgloss.Color("#1e66f5"),
		Overlay:       lipgloss.Color("#9ca0b0"),

		Text:        lipgloss.Color("#4c4f69"),
		TextMuted:   lipgloss.Color("#6c6f85"),
		TextSubtle:  lipgloss.Color("#8c8fa1"),
		TextInverse: lipgloss.Color("#eff1f5"),

		Primary:   lipgloss.Color("#1e66f5"),
		Secondary: lipgloss.Color("#7287fd"),
		Accent:    lipgloss.Color("#8839ef"),

		Success: lipgloss.Color("#40a02b"),
		Warning: lipgloss.Color("#df8e1d"),
		Error:   lipgloss.Color("#d20f39"),
		Info:    lipgloss.Color("#1e66f5"),
		Neutral: lipgloss.Color("#6c6f85"),

		CardGreen:  lipgloss.Color("#40a02b"),
		CardBlue:   lipgloss.Color("#04a5e5"),
		CardRed:    lipgloss.Color("#d20f39"),
		CardPurple: lipgloss.Color("#8839ef"),
		CardOrange: lipgloss.Color("#fe640b"),
		CardPink:   lipgloss.Color("#ea76cb"),
	}
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	// Layout
	Header    lipgloss.Style
	HeaderSub lipgloss.Style
	Sidebar   lipgloss.Style
	Content   lipgloss.Style
	StatusBar lipgloss.Style
	Overlay   lipgloss.Style

	// Navigation
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	Logo      lipgloss.Style

	// Panels
	Card       lipgloss.Style
	PanelTitle lipgloss.Style

	// Menus
	Menu         lipgloss.Style
	MenuLabel    lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style

	// Text
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	KeyBind lipgloss.Style
	KeyDesc lipgloss.Style

	// Badges
	BadgeUp     lipgloss.Style
	BadgeDown   lipgloss.Style
	BadgeAlert  lipgloss.Style
	BadgeSubtle lipgloss.Style

	Skeleton lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.Header = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.HeaderSub = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Sidebar = lipgloss.NewStyle().Background(t.Surface).Foreground(t.Text).
		BorderRight(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(t.Border)
	s.Content = lipgloss.NewStyle().Padding(1, 2)
	s.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)
	s.Overlay = lipgloss.NewStyle().Foreground(t.Overlay).Faint(true)

	s.NavItem = lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
	s.NavActive = lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Primary).Bold(true).Padding(0, 1)
	s.Logo = lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Accent).Bold(true).Padding(0, 1)

	s.Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	s.PanelTitle = lipgloss.NewStyle().Foreground(t.Text).Bold(true)

	s.Menu = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Primary).
		Background(t.Bg).Padding(0, 1)
	s.MenuLabel = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	s.MenuItem = lipgloss.NewStyle().Foreground(t.Text).PaddingLeft(1)
	s.MenuSelected = lipgloss.NewStyle().Foreground(t.Text).Background(t.SurfaceHover).Bold(true).PaddingLeft(1)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Body = lipgloss.NewStyle().Foreground(t.Text)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Bold = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	s.BadgeUp = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	s.BadgeDown = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	s.BadgeAlert = lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Error).Bold(true).Padding(0, 1)
	s.BadgeSubtle = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)

	s.Skeleton = lipgloss.NewStyle().Foreground(t.SurfaceHover)

	return s
}

// DefaultStyles returns styles using the light theme.
func DefaultStyles() Styles {
	return NewStyles(LightTheme())
}

// StyleSet is the single shared holder of the active styles. Swapping it is
// the terminal equivalent of toggling the document-wide dark class: every
// component reads from the same holder on its next render.
type StyleSet struct {
	current Styles
}

// NewStyleSet starts with the light styles.
func NewStyleSet() *StyleSet {
	return &StyleSet{current: DefaultStyles()}
}

// Apply swaps the palette.
func (s *StyleSet) Apply(dark bool) {
	if dark {
		s.current = NewStyles(DarkTheme())
		return
	}
	s.current = NewStyles(LightTheme())
}

// Get returns the active styles.
func (s *StyleSet) Get() Styles { return s.current }
