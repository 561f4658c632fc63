// Package viewport classifies the terminal width into a mobile or desktop
// layout class.
//
// Widths are expressed in pixels so the breakpoint matches the web layout
// the dashboard was designed against. Terminal columns are converted with a
// configurable cell width (8px by default, which puts the breakpoint at 96
// columns).
package viewport

import "sync"

// Breakpoint is the width (px) at and above which the layout is desktop.
const Breakpoint = 768

// DefaultCellWidth is the assumed width of one terminal cell in pixels.
const DefaultCellWidth = 8

// Class is the binary classification of the viewport width.
type Class int

const (
	Desktop Class = iota
	Mobile
)

func (c Class) String() string {
	if c == Mobile {
		return "mobile"
	}
	return "desktop"
}

// Classify returns Mobile iff widthPx < Breakpoint.
func Classify(widthPx int) Class {
	if widthPx < Breakpoint {
		return Mobile
	}
	return Desktop
}

// CellsToPixels converts a column count to pixels.
func CellsToPixels(cols, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return cols * cellWidth
}

// PixelsToCells converts a pixel width to whole columns, rounding down.
func PixelsToCells(px, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return px / cellWidth
}

// Listener is notified with the new class on mount and on every class
// transition.
type Listener func(Class)

// Tracker recomputes the viewport class on every observed width.
type Tracker struct {
	mu        sync.Mutex
	observed  bool
	class     Class
	width     int
	nextID    int
	listeners map[int]Listener
}

// NewTracker creates a tracker with no observation yet.
func NewTracker() *Tracker {
	return &Tracker{listeners: make(map[int]Listener)}
}

// Subscribe registers fn and returns a function that removes it again.
func (t *Tracker) Subscribe(fn Listener) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.listeners, id)
		t.mu.Unlock()
	}
}

// Listeners returns the number of registered listeners.
func (t *Tracker) Listeners() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners)
}

// Observe records a new width. The first call (mount) and every call whose
// class differs from the previous one notify listeners and report changed.
func (t *Tracker) Observe(widthPx int) (class Class, changed bool) {
	class = Classify(widthPx)

	t.mu.Lock()
	changed = !t.observed || class != t.class
	t.observed = true
	t.class = class
	t.width = widthPx
	var fns []Listener
	if changed {
		fns = make([]Listener, 0, len(t.listeners))
		for _, fn := range t.listeners {
			fns = append(fns, fn)
		}
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(class)
	}
	return class, changed
}

// Class returns the most recently observed class (Desktop before mount).
func (t *Tracker) Class() Class {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.class
}

// Width returns the most recently observed width in pixels.
func (t *Tracker) Width() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width
}
