package ui

// openDialogMsg asks the model to open the emoji dialog. It is always
// delivered through a command so opening never happens inside a key handler.
type openDialogMsg struct{}

// clearStatusMsg clears the status line if no newer announcement replaced it
type clearStatusMsg struct {
	seq int
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
