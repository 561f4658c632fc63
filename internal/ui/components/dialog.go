package components

import (
	"github.com/Akashdeep-Patra/posdash/internal/ui"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DialogResult is sent when the dialog is dismissed.
type DialogResult struct {
	Confirmed bool
	Value     string
	Tag       string // arbitrary tag to identify which dialog this was
}

// Dialog is a modal text input dialog.
type Dialog struct {
	Title   string
	Hint    string
	Tag     string
	input   textinput.Model
	visible bool
}

// NewInputDialog creates a text input dialog prefilled with value.
func NewInputDialog(title, placeholder, value, hint, tag string) Dialog {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 44
	ti.SetValue(value)
	ti.Focus()
	return Dialog{
		Title:   title,
		Hint:    hint,
		Tag:     tag,
		input:   ti,
		visible: true,
	}
}

// Visible returns whether the dialog is showing.
func (d Dialog) Visible() bool { return d.visible }

// Update handles key events for the dialog.
func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			d.visible = false
			return d, func() tea.Msg { return DialogResult{Tag: d.Tag} }
		case "enter":
			d.visible = false
			value := d.input.Value()
			return d, func() tea.Msg {
				return DialogResult{Confirmed: true, Value: value, Tag: d.Tag}
			}
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// View renders the dialog.
func (d Dialog) View(styles ui.Styles) string {
	if !d.visible {
		return ""
	}
	t := styles.Theme

	title := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(d.Title)
	content := title + "\n\n" + d.input.View()
	if d.Hint != "" {
		content += "\n\n" + styles.Muted.Render(d.Hint)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Width(56).
		Render(content)
}
