// Package help renders key binding hints for the footer and the full help
// overlay.
package help

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/habitus/pkg/tui/theme"
)

// Model wraps the bubbles help renderer with the habitus theme.
type Model struct {
	help  help.Model
	frame lipgloss.Style
	title lipgloss.Style
}

// New constructs a help model styled by th.
func New(th theme.Theme) Model {
	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = th.Footer.Prompt
	h.Styles.ShortDesc = th.Footer.Help
	h.Styles.ShortSeparator = th.Footer.Help
	h.Styles.FullKey = th.Modal.Label
	h.Styles.FullDesc = th.Modal.Body
	h.Styles.FullSeparator = th.Footer.Help
	return Model{
		help:  h,
		frame: th.Modal.Frame,
		title: th.Modal.Title,
	}
}

// SetWidth limits the short view; zero means unlimited.
func (m *Model) SetWidth(width int) {
	m.help.Width = width
}

// Short renders a single line of enabled bindings.
func (m Model) Short(bindings []key.Binding) string {
	return m.help.ShortHelpView(bindings)
}

// Full renders groups of bindings as columns inside a framed overlay.
func (m Model) Full(title string, groups [][]key.Binding) string {
	body := m.help.FullHelpView(groups)
	return m.frame.Render(m.title.Render(title) + "\n" + body)
}
