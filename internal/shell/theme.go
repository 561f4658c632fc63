package shell

// Theme owns the dark-mode flag. It always starts light.
type Theme struct {
	dark  bool
	apply func(dark bool)
}

// NewTheme creates a light theme. apply (optional) is called with the new
// flag after every toggle and is expected to swap the global style set.
func NewTheme(apply func(dark bool)) *Theme {
	return &Theme{apply: apply}
}

// Dark reports whether dark mode is on.
func (t *Theme) Dark() bool { return t.dark }

// Toggle flips the flag and applies it.
func (t *Theme) Toggle() bool {
	t.dark = !t.dark
	if t.apply != nil {
		t.apply(t.dark)
	}
	return t.dark
}

// Label is the text of the sidebar theme button.
func (t *Theme) Label() string {
	if t.dark {
		return "Light Mode"
	}
	return "Dark Mode"
}
