// Package scheduler provides one-shot deferred callbacks that always run on
// the UI goroutine.
package scheduler

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimerID identifies a scheduled callback. The zero value is never issued.
type TimerID uint64

// Scheduler schedules one-shot callbacks
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) TimerID
	Cancel(id TimerID)
}

// FiredMsg is delivered to Update when a timer scheduled by Tea elapses
type FiredMsg struct {
	ID TimerID
}

// Tea is a Scheduler backed by tea.Tick. Callbacks only run when the model
// passes the matching FiredMsg to Fire, so they execute inside Update.
type Tea struct {
	next    TimerID
	live    map[TimerID]func()
	pending []tea.Cmd
}

// NewTea creates an idle scheduler
func NewTea() *Tea {
	return &Tea{live: make(map[TimerID]func())}
}

// ScheduleOnce registers fn and queues the tick command for it
func (s *Tea) ScheduleOnce(delay time.Duration, fn func()) TimerID {
	s.next++
	id := s.next
	s.live[id] = fn
	s.pending = append(s.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return FiredMsg{ID: id}
	}))
	return id
}

// Cancel forgets a callback. Its tick still arrives but is ignored.
func (s *Tea) Cancel(id TimerID) {
	delete(s.live, id)
}

// Fire runs the callback for id if it is still live
func (s *Tea) Fire(id TimerID) bool {
	fn, ok := s.live[id]
	if !ok {
		return false
	}
	delete(s.live, id)
	fn()
	return true
}

// Cmd returns the tick commands queued since the last call
func (s *Tea) Cmd() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Stop cancels every outstanding callback
func (s *Tea) Stop() {
	s.live = make(map[TimerID]func())
	s.pending = nil
}

// Live returns the number of outstanding callbacks
func (s *Tea) Live() int {
	return len(s.live)
}

// Manual is a Scheduler driven by a virtual clock, for tests
type Manual struct {
	now    time.Duration
	next   TimerID
	timers map[TimerID]*manualTimer
}

type manualTimer struct {
	at time.Duration
	fn func()
}

// NewManual creates a manual scheduler at virtual time zero
func NewManual() *Manual {
	return &Manual{timers: make(map[TimerID]*manualTimer)}
}

// ScheduleOnce registers fn to run once the clock reaches now+delay
func (m *Manual) ScheduleOnce(delay time.Duration, fn func()) TimerID {
	m.next++
	m.timers[m.next] = &manualTimer{at: m.now + delay, fn: fn}
	return m.next
}

// Cancel forgets a callback
func (m *Manual) Cancel(id TimerID) {
	delete(m.timers, id)
}

// Now returns the virtual time
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of outstanding callbacks
func (m *Manual) Pending() int {
	return len(m.timers)
}

// Advance moves the clock forward, running due callbacks in deadline order
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		id, t := m.earliest()
		if t == nil || t.at > target {
			break
		}
		delete(m.timers, id)
		m.now = t.at
		t.fn()
	}
	m.now = target
}

func (m *Manual) earliest() (TimerID, *manualTimer) {
	ids := make([]TimerID, 0, len(m.timers))
	for id := range m.timers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := m.timers[ids[i]], m.timers[ids[j]]
		if a.at != b.at {
			return a.at < b.at
		}
		return ids[i] < ids[j]
	})
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[0], m.timers[ids[0]]
}
