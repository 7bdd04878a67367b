package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"emojimenu/internal/ui/dialog"
	"emojimenu/internal/ui/logic"
	"emojimenu/internal/ui/views"
)

// dialogView translates keys into controller events and keeps the widgets
// (search field, focus, list viewport) in step with the controller
type dialogView struct {
	ctrl      *dialog.Controller
	keys      keyMap
	input     textinput.Model
	focus     views.Focus
	nav       *logic.Navigator
	refreshes int
}

func newDialogView(ctrl *dialog.Controller, keys keyMap, listHeight int) *dialogView {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type to search"
	ti.CharLimit = 100
	// a blinking cursor makes some screen readers re-read the line
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	d := &dialogView{
		ctrl:      ctrl,
		keys:      keys,
		input:     ti,
		focus:     views.FocusSearch,
		nav:       logic.NewNavigator(listHeight),
		refreshes: -1,
	}
	d.sync()
	return d
}

// Closed reports whether the controller has closed
func (d *dialogView) Closed() bool {
	return d.ctrl.State() == dialog.Closed
}

// HandleKey routes one key press
func (d *dialogView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	defer d.sync()

	switch {
	case key.Matches(msg, d.keys.Cancel):
		d.ctrl.Handle(dialog.Cancel{})
		return nil
	case key.Matches(msg, d.keys.Activate):
		d.ctrl.Handle(dialog.ItemActivated{})
		return nil
	case key.Matches(msg, d.keys.NextFocus):
		return d.setFocus((d.focus + 1) % 3)
	case key.Matches(msg, d.keys.PrevFocus):
		return d.setFocus((d.focus + 2) % 3)
	case key.Matches(msg, d.keys.FocusSearch):
		return d.setFocus(views.FocusSearch)
	case key.Matches(msg, d.keys.FocusCategory):
		return d.setFocus(views.FocusCategory)
	case key.Matches(msg, d.keys.FocusList):
		return d.setFocus(views.FocusList)
	}

	switch d.focus {
	case views.FocusCategory:
		d.handleCategoryKey(msg)
		return nil
	case views.FocusList:
		d.handleMovementKey(msg)
		return nil
	default:
		if d.handleMovementKey(msg) {
			return nil
		}
		before := d.input.Value()
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		if after := d.input.Value(); after != before {
			d.ctrl.Handle(dialog.SearchTextChanged{Text: after})
		}
		return cmd
	}
}

// Update passes non-key messages (cursor blink) to the search field
func (d *dialogView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd
}

// Sync pulls controller state after something other than a key changed it
func (d *dialogView) Sync() {
	d.sync()
}

func (d *dialogView) handleMovementKey(msg tea.KeyMsg) bool {
	var direction string
	switch {
	case key.Matches(msg, d.keys.Up):
		direction = "up"
	case key.Matches(msg, d.keys.Down):
		direction = "down"
	case key.Matches(msg, d.keys.PageUp):
		direction = "pageup"
	case key.Matches(msg, d.keys.PageDown):
		direction = "pagedown"
	case d.focus == views.FocusList && key.Matches(msg, d.keys.Home):
		direction = "home"
	case d.focus == views.FocusList && key.Matches(msg, d.keys.End):
		direction = "end"
	default:
		return false
	}
	if len(d.ctrl.Items()) > 0 {
		d.ctrl.Handle(dialog.SelectionMoved{Index: d.nav.Target(direction)})
	}
	return true
}

func (d *dialogView) handleCategoryKey(msg tea.KeyMsg) {
	current := d.ctrl.Category()
	last := len(d.ctrl.Categories()) - 1
	target := current

	switch {
	case key.Matches(msg, d.keys.Left), key.Matches(msg, d.keys.Up):
		target = current - 1
	case key.Matches(msg, d.keys.Right), key.Matches(msg, d.keys.Down):
		target = current + 1
	case key.Matches(msg, d.keys.Home):
		target = 0
	case key.Matches(msg, d.keys.End):
		target = last
	}

	if target < 0 {
		target = 0
	}
	if target > last {
		target = last
	}
	if target != current && target >= 0 {
		d.ctrl.Handle(dialog.CategoryChanged{Index: target})
	}
}

func (d *dialogView) setFocus(f views.Focus) tea.Cmd {
	d.focus = f
	if f == views.FocusSearch {
		return d.input.Focus()
	}
	d.input.Blur()
	return nil
}

// sync resets the viewport after a recompute and otherwise just follows the
// selection so scrolling is preserved
func (d *dialogView) sync() {
	items := d.ctrl.Items()
	if n := d.ctrl.Refreshes(); n != d.refreshes {
		d.refreshes = n
		d.nav.Reset(len(items), d.ctrl.Selected())
		return
	}
	d.nav.SetSelectedIndex(d.ctrl.Selected())
}

// State builds what the renderer needs
func (d *dialogView) State(width int) views.DialogState {
	start, end := d.nav.VisibleRange()
	return views.DialogState{
		Width:        width,
		Focus:        d.focus,
		SearchView:   d.input.View(),
		Categories:   d.ctrl.Categories(),
		Category:     d.ctrl.Category(),
		Items:        d.ctrl.Items(),
		Selected:     d.ctrl.Selected(),
		Fault:        d.ctrl.Fault(),
		VisibleStart: start,
		VisibleEnd:   end,
		Placeholder:  dialog.PlaceholderError,
	}
}
