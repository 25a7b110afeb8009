package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the cue list view.
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// List edits
	Append     key.Binding
	AppendForm key.Binding
	Remove     key.Binding
	PopBack    key.Binding
	Edit       key.Binding

	// Positional moves
	MoveUp      key.Binding
	MoveDown    key.Binding
	MoveToFront key.Binding

	// Renumbering
	Increment          key.Binding
	Decrement          key.Binding
	IncrementSecondary key.Binding
	DecrementSecondary key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous cue"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next cue"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first cue"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last cue"),
		),
		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add cue"),
		),
		AppendForm: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "add cue…"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "remove cue"),
		),
		PopBack: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "remove last cue"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit cue"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		MoveToFront: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "move to start"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "number up"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "number down"),
		),
		IncrementSecondary: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "point up"),
		),
		DecrementSecondary: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "point down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Append, k.MoveUp, k.MoveDown, k.Increment, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Append, k.AppendForm, k.Edit, k.Remove, k.PopBack},
		{k.MoveUp, k.MoveDown, k.MoveToFront},
		{k.Increment, k.Decrement, k.IncrementSecondary, k.DecrementSecondary},
		{k.Help, k.Quit},
	}
}
