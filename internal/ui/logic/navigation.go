package logic

// Navigator keeps a cursor inside a list and the viewport scrolled to it
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a navigator showing height rows at a time
func NewNavigator(height int) *Navigator {
	n := &Navigator{selectedIndex: -1}
	n.SetViewportHeight(height)
	return n
}

// Reset points the navigator at a freshly computed list
func (n *Navigator) Reset(totalItems, selectedIndex int) {
	n.totalItems = totalItems
	n.viewportOffset = 0
	n.SetSelectedIndex(selectedIndex)
}

// SetViewportHeight changes the number of visible rows
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureSelectedVisible()
}

// SetSelectedIndex moves the cursor, clamping to the list bounds.
// An empty list has no selection (-1).
func (n *Navigator) SetSelectedIndex(index int) int {
	switch {
	case n.totalItems == 0:
		index = -1
	case index < 0:
		index = 0
	case index >= n.totalItems:
		index = n.totalItems - 1
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex
}

// Target returns the index a movement key should select
func (n *Navigator) Target(direction string) int {
	switch direction {
	case "up":
		return n.selectedIndex - 1
	case "down":
		return n.selectedIndex + 1
	case "pageup":
		return n.selectedIndex - n.viewportHeight
	case "pagedown":
		return n.selectedIndex + n.viewportHeight
	case "home":
		return 0
	case "end":
		return n.totalItems - 1
	default:
		return n.selectedIndex
	}
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// VisibleRange returns the half-open index range currently on screen
func (n *Navigator) VisibleRange() (int, int) {
	end := n.viewportOffset + n.viewportHeight
	if end > n.totalItems {
		end = n.totalItems
	}
	return n.viewportOffset, end
}

func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < 0 {
		n.viewportOffset = 0
		return
	}
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}
	maxOffset := n.totalItems - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
}
