package tui

import "github.com/charmbracelet/bubbles/help"

// HelpModel renders the key bindings, either as a one-line hint under the
// list or as the full overlay toggled with '?'.
type HelpModel struct {
	help   help.Model
	keymap KeyMap
}

// NewHelpModel creates a help model for keymap.
func NewHelpModel(keymap KeyMap) HelpModel {
	return HelpModel{help: help.New(), keymap: keymap}
}

// View renders the full help overlay.
func (m HelpModel) View(width int) string {
	m.help.ShowAll = true
	m.help.Width = width - 8 // padding and border
	return helpOverlayStyle.Render(titleStyle.Render("Keys") + "\n\n" + m.help.View(m.keymap))
}

// ShortView renders the one-line hint.
func (m HelpModel) ShortView(width int) string {
	m.help.ShowAll = false
	m.help.Width = width
	return m.help.View(m.keymap)
}
