// Package shell holds the layout state of the dashboard frame: whether the
// sidebar is open, which viewport class is active, and the light/dark theme.
package shell

import "github.com/Akashdeep-Patra/posdash/internal/viewport"

// Sidebar widths in pixels.
const (
	CollapsedWidth = 64
	ExpandedWidth  = 256
)

// EventKind identifies a sidebar input.
type EventKind int

const (
	// EventViewport is delivered on mount and on every viewport-class change.
	EventViewport EventKind = iota
	// EventToggle is the menu/close button.
	EventToggle
	// EventOverlayClick is a click on the dimmed background behind the
	// mobile sidebar.
	EventOverlayClick
)

func (k EventKind) String() string {
	switch k {
	case EventViewport:
		return "viewport"
	case EventToggle:
		return "toggle"
	case EventOverlayClick:
		return "overlay-click"
	}
	return "unknown"
}

// Event is a single input to the sidebar state machine.
type Event struct {
	Kind  EventKind
	Class viewport.Class // only for EventViewport
}

// ViewportEvent builds an EventViewport for class c.
func ViewportEvent(c viewport.Class) Event { return Event{Kind: EventViewport, Class: c} }

// SidebarState is the pair of orthogonal axes the layout derives from.
type SidebarState struct {
	Open  bool
	Class viewport.Class
}

type rule func(SidebarState, Event) SidebarState

// rules is the complete transition table.
var rules = map[EventKind]rule{
	EventViewport: func(s SidebarState, e Event) SidebarState {
		s.Class = e.Class
		s.Open = e.Class == viewport.Desktop
		return s
	},
	EventToggle: func(s SidebarState, _ Event) SidebarState {
		s.Open = !s.Open
		return s
	},
	EventOverlayClick: func(s SidebarState, _ Event) SidebarState {
		if s.Class == viewport.Mobile && s.Open {
			s.Open = false
		}
		return s
	},
}

// Next applies e to s. Unknown event kinds leave s unchanged.
func Next(s SidebarState, e Event) SidebarState {
	r, ok := rules[e.Kind]
	if !ok {
		return s
	}
	return r(s, e)
}

// Sidebar owns the sidebar state. The zero value is a closed mobile-first
// sidebar waiting for its mount event.
type Sidebar struct {
	state    SidebarState
	onChange func(SidebarState)
}

// NewSidebar creates a sidebar; onChange (optional) is invoked after every
// transition that changes the state.
func NewSidebar(onChange func(SidebarState)) *Sidebar {
	return &Sidebar{
		state:    SidebarState{Open: false, Class: viewport.Mobile},
		onChange: onChange,
	}
}

// State returns the current state.
func (s *Sidebar) State() SidebarState { return s.state }

// Dispatch applies e and returns the resulting state.
func (s *Sidebar) Dispatch(e Event) SidebarState {
	prev := s.state
	s.state = Next(s.state, e)
	if s.state != prev && s.onChange != nil {
		s.onChange(s.state)
	}
	return s.state
}

// OnViewport is a viewport.Listener feeding class changes into the sidebar.
func (s *Sidebar) OnViewport(c viewport.Class) { s.Dispatch(ViewportEvent(c)) }

// Toggle flips the sidebar.
func (s *Sidebar) Toggle() SidebarState { return s.Dispatch(Event{Kind: EventToggle}) }

// ClickOverlay closes the mobile sidebar; a no-op otherwise.
func (s *Sidebar) ClickOverlay() SidebarState { return s.Dispatch(Event{Kind: EventOverlayClick}) }

// Layout is derived from SidebarState on every render.
type Layout struct {
	// SidebarWidth is the rendered sidebar width in pixels.
	SidebarWidth int
	// Offscreen is true when the mobile sidebar is translated out of view.
	Offscreen bool
	// ContentMargin is the left margin of the main content in pixels.
	ContentMargin int
	// Overlay is true when the dimmed background is shown.
	Overlay bool
	// ShowLabels is true when nav entries render their text.
	ShowLabels bool
	// CloseGlyph is true when the toggle button shows the close icon.
	CloseGlyph bool
	// HeaderMenuButton is true when the header carries its own menu button.
	HeaderMenuButton bool
}

// Derive computes the layout for s.
func Derive(s SidebarState) Layout {
	mobile := s.Class == viewport.Mobile
	l := Layout{
		Overlay:          mobile && s.Open,
		ShowLabels:       s.Open || mobile,
		CloseGlyph:       mobile && s.Open,
		HeaderMenuButton: mobile,
	}
	switch {
	case mobile:
		l.SidebarWidth = ExpandedWidth
		l.Offscreen = !s.Open
		l.ContentMargin = 0
	case s.Open:
		l.SidebarWidth = ExpandedWidth
		l.ContentMargin = ExpandedWidth
	default:
		l.SidebarWidth = CollapsedWidth
		l.ContentMargin = CollapsedWidth
	}
	return l
}

// Visible reports whether any sidebar columns are on screen.
func (l Layout) Visible() bool { return !l.Offscreen }
