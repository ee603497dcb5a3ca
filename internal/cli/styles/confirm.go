package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmKeyMap defines keybindings for the confirm dialog.
type ConfirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Accept key.Binding
	Cancel key.Binding
}

// DefaultConfirmKeyMap returns the default keybindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "switch")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ConfirmModel is a yes/no dialog embedded in a parent model.
type ConfirmModel struct {
	Message  string
	Yes      bool
	Accepted bool
	Canceled bool
	keys     ConfirmKeyMap
	theme    *Theme
}

// NewConfirm creates a dialog with "No" selected.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{Message: message, keys: DefaultConfirmKeyMap(), theme: theme}
}

// Update handles key presses. y and n answer immediately.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Yes):
		m.Yes, m.Accepted = true, true
	case key.Matches(km, m.keys.No):
		m.Yes, m.Accepted = false, true
	case key.Matches(km, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(km, m.keys.Accept):
		m.Accepted = true
	case key.Matches(km, m.keys.Cancel):
		m.Canceled = true
	}
	return m, nil
}

// View renders the dialog box.
func (m ConfirmModel) View() string {
	t := m.theme

	yesStyle, noStyle := t.InactiveTab, t.ActiveTab
	if m.Yes {
		yesStyle, noStyle = t.ActiveTab, t.InactiveTab
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, noStyle.Render(" No "), "  ", yesStyle.Render(" Yes "))

	return t.Box.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title.Render(m.Message),
		"",
		buttons,
		"",
		t.Subtle.Render("y/n • ←/→ switch • enter confirm • esc cancel"),
	))
}

// Done returns true once the dialog was answered or dismissed.
func (m ConfirmModel) Done() bool {
	return m.Accepted || m.Canceled
}

// Result returns true if the user accepted "Yes".
func (m ConfirmModel) Result() bool {
	return m.Accepted && m.Yes && !m.Canceled
}
