// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the staging view.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	NextFile key.Binding
	PrevFile key.Binding
	NextHunk key.Binding
	PrevHunk key.Binding
	TopOfDiff key.Binding
	EndOfDiff key.Binding

	// Staging actions
	StageItem   key.Binding
	UnstageItem key.Binding

	// Sections
	SwitchSection key.Binding

	// General
	Refresh key.Binding
	Help    key.Binding
	Escape  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		NextFile: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "next file"),
		),
		PrevFile: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "previous file"),
		),
		NextHunk: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next hunk"),
		),
		PrevHunk: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous hunk"),
		),
		TopOfDiff: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top of diff"),
		),
		EndOfDiff: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "end of diff"),
		),

		// Staging actions
		StageItem: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stage hunk/file"),
		),
		UnstageItem: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unstage hunk/file"),
		),

		// Sections
		SwitchSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "staged/unstaged"),
		),

		// General
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Default is the shared keymap instance.
var Default = DefaultKeyMap()
