package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding of the host screen and the dialog
type keyMap struct {
	Open          key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
	Help          key.Binding
	Cancel        key.Binding
	Activate      key.Binding
	NextFocus     key.Binding
	PrevFocus     key.Binding
	FocusSearch   key.Binding
	FocusCategory key.Binding
	FocusList     key.Binding
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Home          key.Binding
	End           key.Binding
}

func newKeyMap(gesture string) keyMap {
	return keyMap{
		Open:          key.NewBinding(key.WithKeys(gesture), key.WithHelp(gesture, "open emoji menu")),
		Quit:          key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:     key.NewBinding(key.WithKeys("ctrl+c")),
		Help:          key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "help")),
		Cancel:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Activate:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy")),
		NextFocus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		PrevFocus:     key.NewBinding(key.WithKeys("shift+tab")),
		FocusSearch:   key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "search")),
		FocusCategory: key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "category")),
		FocusList:     key.NewBinding(key.WithKeys("alt+e"), key.WithHelp("alt+e", "emojis")),
		Up:            key.NewBinding(key.WithKeys("up")),
		Down:          key.NewBinding(key.WithKeys("down")),
		Left:          key.NewBinding(key.WithKeys("left")),
		Right:         key.NewBinding(key.WithKeys("right")),
		PageUp:        key.NewBinding(key.WithKeys("pgup")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown")),
		Home:          key.NewBinding(key.WithKeys("home")),
		End:           key.NewBinding(key.WithKeys("end")),
	}
}

// hostHelp is shown while no dialog is open
func (k keyMap) hostHelp() []key.Binding {
	return []key.Binding{k.Open, k.Help, k.Quit}
}

// dialogHelp is shown under the dialog
func (k keyMap) dialogHelp() []key.Binding {
	return []key.Binding{k.Activate, k.NextFocus, k.FocusSearch, k.FocusCategory, k.FocusList, k.Cancel, k.Help}
}
