// Package dialog implements the Emoji Menu search dialog independent of any
// rendering: the filter state, the debounced refresh and the commit flow.
package dialog

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"emojimenu/internal/dataset"
	"emojimenu/internal/domain"
	"emojimenu/internal/ui/logic"
	"emojimenu/internal/ui/scheduler"
	"emojimenu/internal/ui/services/selection"
)

// DefaultDebounce is the quiet period after the last keystroke before the
// list is refreshed
const DefaultDebounce = 300 * time.Millisecond

// PlaceholderError is the only row shown when a refresh fails
const PlaceholderError = "Error loading list"

// State is the lifecycle state of a dialog
type State int

const (
	Initializing State = iota
	Ready
	Closed
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FilterFunc computes the visible list
type FilterFunc func(table *dataset.Table, term, category string) []domain.VisibleItem

// RefreshFault describes a failed list recomputation
type RefreshFault struct {
	Cause interface{}
}

func (f *RefreshFault) Error() string {
	return fmt.Sprintf("refresh failed: %v", f.Cause)
}

// Options configures a Controller
type Options struct {
	Table      *dataset.Table
	Categories dataset.CategoryList
	Selection  *selection.Store
	Scheduler  scheduler.Scheduler
	Committer  *Committer
	Debounce   time.Duration
	Filter     FilterFunc // defaults to logic.Filter
}

// Controller owns the state of one dialog instance. It must only be used
// from the UI goroutine.
type Controller struct {
	table      *dataset.Table
	categories dataset.CategoryList
	store      *selection.Store
	sched      scheduler.Scheduler
	committer  *Committer
	debounce   time.Duration
	filter     FilterFunc

	state     State
	text      string
	category  int
	items     []domain.VisibleItem
	selected  int
	fault     bool
	timer     scheduler.TimerID
	refreshes int
}

// NewController creates a controller in the Initializing state
func NewController(opts Options) *Controller {
	filter := opts.Filter
	if filter == nil {
		filter = logic.Filter
	}
	return &Controller{
		table:      opts.Table,
		categories: opts.Categories,
		store:      opts.Selection,
		sched:      opts.Scheduler,
		committer:  opts.Committer,
		debounce:   opts.Debounce,
		filter:     filter,
		selected:   -1,
	}
}

// Start restores the last category and shows the initial list
func (c *Controller) Start() (err error) {
	if c.state != Initializing {
		return errors.Errorf("dialog already %s", c.state)
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("dialog initialization panicked: %v", r)
			c.close()
		}
	}()

	c.category = 0
	if idx := c.categories.IndexOf(c.store.Load()); idx >= 0 {
		c.category = idx
	}
	c.text = ""
	c.state = Ready
	c.refresh()
	return nil
}

// Handle processes one event. Cancel is honoured in every state; all other
// events are ignored unless the dialog is Ready.
func (c *Controller) Handle(ev Event) {
	if _, ok := ev.(Cancel); ok {
		c.close()
		return
	}
	if c.state != Ready {
		log.Debugf("Ignoring %T while %s", ev, c.state)
		return
	}

	switch ev := ev.(type) {
	case SearchTextChanged:
		c.text = ev.Text
		c.restartDebounce()

	case CategoryChanged:
		c.cancelDebounce()
		c.category = ev.Index
		if name, ok := c.categories.At(ev.Index); ok {
			c.store.Save(name)
		}
		c.refresh()

	case SelectionMoved:
		if len(c.items) == 0 {
			return
		}
		idx := ev.Index
		if idx < 0 {
			idx = 0
		}
		if idx >= len(c.items) {
			idx = len(c.items) - 1
		}
		c.selected = idx

	case ItemActivated:
		c.activate()

	case TimerFired:
		if ev.ID == 0 || ev.ID != c.timer {
			return
		}
		c.timer = 0
		c.refresh()
	}
}

// State returns the lifecycle state
func (c *Controller) State() State {
	return c.state
}

// Items returns the visible list. It is empty while a fault is shown.
func (c *Controller) Items() []domain.VisibleItem {
	return c.items
}

// Selected returns the selected index, or -1
func (c *Controller) Selected() int {
	return c.selected
}

// SelectedItem returns the selected entry if there is one
func (c *Controller) SelectedItem() (domain.VisibleItem, bool) {
	if c.fault || c.selected < 0 || c.selected >= len(c.items) {
		return domain.VisibleItem{}, false
	}
	return c.items[c.selected], true
}

// Fault reports whether the last refresh failed
func (c *Controller) Fault() bool {
	return c.fault
}

// Categories returns the category choices
func (c *Controller) Categories() dataset.CategoryList {
	return c.categories
}

// Category returns the selected category index
func (c *Controller) Category() int {
	return c.category
}

// SearchText returns the raw search text last reported
func (c *Controller) SearchText() string {
	return c.text
}

// Refreshes returns how many times the list has been recomputed
func (c *Controller) Refreshes() int {
	return c.refreshes
}

// DebouncePending reports whether a search refresh is scheduled
func (c *Controller) DebouncePending() bool {
	return c.timer != 0
}

func (c *Controller) restartDebounce() {
	c.cancelDebounce()
	var id scheduler.TimerID
	id = c.sched.ScheduleOnce(c.debounce, func() {
		c.Handle(TimerFired{ID: id})
	})
	c.timer = id
}

func (c *Controller) cancelDebounce() {
	if c.timer != 0 {
		c.sched.Cancel(c.timer)
		c.timer = 0
	}
}

// refresh recomputes the list from the filter state as it is now
func (c *Controller) refresh() {
	if c.state != Ready {
		return
	}

	category, ok := c.categories.At(c.category)
	if !ok {
		log.Debugf("Category index %d out of range, resetting to %s", c.category, domain.AllCategory)
		c.category = 0
		category = domain.AllCategory
	}

	items, err := c.compute(logic.NormalizeTerm(c.text), category)
	c.refreshes++
	if err != nil {
		log.Errorf("Emoji list refresh failed: %v", err)
		c.fault = true
		c.items = nil
		c.selected = -1
		return
	}

	c.fault = false
	c.items = items
	c.selected = -1
	if len(items) > 0 {
		c.selected = 0
	}
}

func (c *Controller) compute(term, category string) (items []domain.VisibleItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			items, err = nil, &RefreshFault{Cause: r}
		}
	}()
	if c.table == nil {
		return nil, &RefreshFault{Cause: "no emoji table"}
	}
	return c.filter(c.table, term, category), nil
}

func (c *Controller) activate() {
	item, ok := c.SelectedItem()
	if !ok {
		return
	}
	if c.committer.Commit(item.Character) {
		log.Printf("Copied %s (%s)", item.Name, item.Character)
		c.close()
	}
}

func (c *Controller) close() {
	if c.state == Closed {
		return
	}
	c.cancelDebounce()
	c.state = Closed
	c.items = nil
	c.selected = -1
}
