package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Akashdeep-Patra/posdash/internal/viewport"
)

func TestViewportForcesDefault(t *testing.T) {
	s := NewSidebar(nil)

	s.OnViewport(viewport.Desktop)
	assert.True(t, s.State().Open)

	s.Toggle()
	assert.False(t, s.State().Open, "manual close on desktop")

	s.OnViewport(viewport.Mobile)
	assert.False(t, s.State().Open)

	s.Toggle()
	assert.True(t, s.State().Open, "manual open on mobile")

	s.OnViewport(viewport.Desktop)
	assert.True(t, s.State().Open)
	assert.Equal(t, viewport.Desktop, s.State().Class)
}

func TestCrossingDiscardsManualChoice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := viewport.NewTracker()
		s := NewSidebar(nil)
		tr.Subscribe(s.OnViewport)

		widths := rapid.SliceOfN(rapid.IntRange(0, 3000), 1, 40).Draw(t, "widths")
		toggles := rapid.SliceOfN(rapid.IntRange(0, 3), len(widths), len(widths)).Draw(t, "toggles")

		for i, w := range widths {
			before := tr.Class()
			_, changed := tr.Observe(w)
			if changed {
				want := w >= viewport.Breakpoint
				if s.State().Open != want {
					t.Fatalf("width %d (from %s): open=%v, want %v", w, before, s.State().Open, want)
				}
			}
			for j := 0; j < toggles[i]; j++ {
				s.Toggle()
			}
		}
	})
}

func TestOverlayClick(t *testing.T) {
	s := NewSidebar(nil)
	s.OnViewport(viewport.Mobile)
	require.False(t, s.State().Open)

	s.ClickOverlay()
	assert.False(t, s.State().Open, "no-op when closed")

	s.Toggle()
	require.True(t, s.State().Open)
	s.ClickOverlay()
	assert.False(t, s.State().Open)

	s.OnViewport(viewport.Desktop)
	s.ClickOverlay()
	assert.True(t, s.State().Open, "overlay clicks are ignored on desktop")
}

func TestOnChangeOnlyOnRealTransitions(t *testing.T) {
	var calls []SidebarState
	s := NewSidebar(func(st SidebarState) { calls = append(calls, st) })

	s.OnViewport(viewport.Mobile) // already closed mobile
	s.ClickOverlay()
	assert.Empty(t, calls)

	s.Toggle()
	require.Len(t, calls, 1)
	assert.Equal(t, SidebarState{Open: true, Class: viewport.Mobile}, calls[0])
}

func TestNextUnknownEvent(t *testing.T) {
	st := SidebarState{Open: true, Class: viewport.Desktop}
	assert.Equal(t, st, Next(st, Event{Kind: EventKind(42)}))
	assert.Equal(t, "unknown", EventKind(42).String())
	assert.Equal(t, "overlay-click", EventOverlayClick.String())
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		state SidebarState
		want  Layout
	}{
		{
			name:  "desktop expanded",
			state: SidebarState{Open: true, Class: viewport.Desktop},
			want:  Layout{SidebarWidth: 256, ContentMargin: 256, ShowLabels: true},
		},
		{
			name:  "desktop collapsed",
			state: SidebarState{Open: false, Class: viewport.Desktop},
			want:  Layout{SidebarWidth: 64, ContentMargin: 64},
		},
		{
			name:  "mobile open",
			state: SidebarState{Open: true, Class: viewport.Mobile},
			want: Layout{SidebarWidth: 256, Overlay: true, ShowLabels: true,
				CloseGlyph: true, HeaderMenuButton: true},
		},
		{
			name:  "mobile closed",
			state: SidebarState{Open: false, Class: viewport.Mobile},
			want: Layout{SidebarWidth: 256, Offscreen: true, ShowLabels: true,
				HeaderMenuButton: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.state)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, !tt.want.Offscreen, got.Visible())
		})
	}
}

func TestThemeRoundTrip(t *testing.T) {
	var applied []bool
	th := NewTheme(func(dark bool) { applied = append(applied, dark) })
	require.False(t, th.Dark(), "fresh theme is light")
	assert.Equal(t, "Dark Mode", th.Label())

	th.Toggle()
	assert.True(t, th.Dark())
	assert.Equal(t, "Light Mode", th.Label())
	th.Toggle()
	assert.False(t, th.Dark())
	assert.Equal(t, []bool{true, false}, applied)
}

func TestThemeToggleTwiceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		th := NewTheme(nil)
		n := rapid.IntRange(0, 20).Draw(t, "n")
		for i := 0; i < n; i++ {
			th.Toggle()
		}
		orig := th.Dark()
		th.Toggle()
		th.Toggle()
		if th.Dark() != orig {
			t.Fatalf("double toggle changed flag from %v", orig)
		}
	})
}
