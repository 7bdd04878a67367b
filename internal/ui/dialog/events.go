package dialog

import "emojimenu/internal/ui/scheduler"

// Event is an input to Controller.Handle
type Event interface {
	isEvent()
}

// SearchTextChanged carries the full, raw content of the search field
type SearchTextChanged struct {
	Text string
}

// CategoryChanged carries the index of the newly chosen category
type CategoryChanged struct {
	Index int
}

// SelectionMoved moves the list cursor to Index
type SelectionMoved struct {
	Index int
}

// ItemActivated confirms the selected list entry
type ItemActivated struct{}

// Cancel closes the dialog without copying
type Cancel struct{}

// TimerFired reports that a scheduled debounce elapsed
type TimerFired struct {
	ID scheduler.TimerID
}

func (SearchTextChanged) isEvent() {}
func (CategoryChanged) isEvent()   {}
func (SelectionMoved) isEvent()    {}
func (ItemActivated) isEvent()     {}
func (Cancel) isEvent()            {}
func (TimerFired) isEvent()        {}
