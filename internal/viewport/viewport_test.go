package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestClassifyBoundary(t *testing.T) {
	assert.Equal(t, Mobile, Classify(0))
	assert.Equal(t, Mobile, Classify(767))
	assert.Equal(t, Desktop, Classify(768))
	assert.Equal(t, Desktop, Classify(1920))
}

func TestClassifyProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(-100, 10000).Draw(t, "width")
		got := Classify(w)
		if (got == Mobile) != (w < Breakpoint) {
			t.Fatalf("Classify(%d) = %s", w, got)
		}
	})
}

func TestCellConversion(t *testing.T) {
	assert.Equal(t, 768, CellsToPixels(96, 8))
	assert.Equal(t, 760, CellsToPixels(95, 8))
	assert.Equal(t, 800, CellsToPixels(100, 0), "non-positive cell width falls back to default")
	assert.Equal(t, 32, PixelsToCells(256, 8))
	assert.Equal(t, 8, PixelsToCells(64, 8))
	assert.Equal(t, 8, PixelsToCells(64, -1))
}

func TestTrackerNotifiesOnMountAndTransitions(t *testing.T) {
	tr := NewTracker()
	var got []Class
	unsubscribe := tr.Subscribe(func(c Class) { got = append(got, c) })

	class, changed := tr.Observe(1024)
	assert.Equal(t, Desktop, class)
	assert.True(t, changed, "first observation is a mount")

	_, changed = tr.Observe(900)
	assert.False(t, changed)

	_, changed = tr.Observe(500)
	assert.True(t, changed)

	_, changed = tr.Observe(800)
	assert.True(t, changed)

	require.Equal(t, []Class{Desktop, Mobile, Desktop}, got)
	assert.Equal(t, 800, tr.Width())
	assert.Equal(t, Desktop, tr.Class())

	unsubscribe()
	assert.Zero(t, tr.Listeners())
	tr.Observe(100)
	assert.Len(t, got, 3, "removed listener must not fire")
}

func TestTrackerMountOnMobile(t *testing.T) {
	tr := NewTracker()
	class, changed := tr.Observe(320)
	assert.Equal(t, Mobile, class)
	assert.True(t, changed)
	assert.Equal(t, "mobile", class.String())
	assert.Equal(t, "desktop", Desktop.String())
}
