// Package feedback implements the announcement and audible cue sinks used to
// tell the user what happened.
package feedback

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Announcer speaks or displays a short message. It never blocks the caller
// on delivery.
type Announcer interface {
	Announce(text string)
}

// Beeper emits an audible failure cue
type Beeper interface {
	Beep(frequency int, duration time.Duration)
}

// Failure cue used on every failure path
const (
	FailureFrequency = 200
	FailureDuration  = 80 * time.Millisecond
)

// AnnouncerFunc adapts a function to Announcer
type AnnouncerFunc func(text string)

// Announce calls f
func (f AnnouncerFunc) Announce(text string) { f(text) }

// Multi fans an announcement out to several sinks
type Multi []Announcer

// Announce delivers text to every sink
func (m Multi) Announce(text string) {
	for _, a := range m {
		if a != nil {
			a.Announce(text)
		}
	}
}

// Logger records announcements in the log
type Logger struct{}

// Announce logs text
func (Logger) Announce(text string) {
	log.Infof("Announce: %s", text)
}

// Command passes each announcement to an external speech program, such as
// spd-say or espeak, as its last argument. A new announcement interrupts one
// still being spoken.
type Command struct {
	name string
	args []string
	// Grace is how long Close lets a running announcement finish
	Grace time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCommand creates a Command sink from an argv prefix. It returns nil when
// argv is empty.
func NewCommand(argv []string) *Command {
	if len(argv) == 0 || argv[0] == "" {
		return nil
	}
	return &Command{name: argv[0], args: argv[1:], Grace: CloseGrace}
}

// CloseGrace is the default time Close waits for the last announcement
const CloseGrace = 2 * time.Second

// Announce starts the speech program in the background
func (c *Command) Announce(text string) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	args := append(append([]string{}, c.args...), text)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := exec.CommandContext(ctx, c.name, args...).Run(); err != nil && ctx.Err() == nil {
			log.Warnf("Announce command %s failed: %v", c.name, err)
		}
	}()
}

// Wait blocks until every started announcement has finished
func (c *Command) Wait() {
	c.wg.Wait()
}

// Close lets the announcement in progress finish, stopping it only once
// Grace has passed, and waits for it to exit
func (c *Command) Close() {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-time.After(c.Grace):
		log.Debugf("Announce command %s still running after %s, stopping it", c.name, c.Grace)
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()
	<-done
}

// Bell rings the terminal bell. Terminals cannot play a specific tone, so
// the requested one is only logged.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBell creates a bell writing to out, usually the controlling terminal
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

// Beep writes BEL
func (b *Bell) Beep(frequency int, duration time.Duration) {
	log.Debugf("Beep %d Hz for %s", frequency, duration)
	if b.out == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := fmt.Fprint(b.out, "\a"); err != nil {
		log.Warnf("Could not ring bell: %v", err)
	}
}
