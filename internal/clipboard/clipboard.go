// Package clipboard writes text to the system clipboard or, where no system
// clipboard is reachable, to the terminal's via OSC 52.
package clipboard

import (
	"io"
	"os"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"emojimenu/internal/config"
)

// ErrUnsupported is returned when no system clipboard utility is available
var ErrUnsupported = errors.New("no system clipboard available")

// ErrNotTerminal is returned by OSC52 when its output is a file or pipe that
// no terminal emulator will interpret
var ErrNotTerminal = errors.New("osc52 output is not a terminal")

// Writer is a clipboard sink
type Writer interface {
	Write(text string) error
}

// System writes through the platform clipboard (pbcopy, xclip, wl-copy, ...)
type System struct{}

// Write copies text to the system clipboard
func (System) Write(text string) error {
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	return errors.Wrap(sysclip.WriteAll(text), "system clipboard")
}

// OSC52 asks the terminal emulator to set its clipboard
type OSC52 struct {
	out    io.Writer
	tmux   bool
	screen bool
}

// NewOSC52 creates an OSC 52 writer, wrapping the sequence for tmux or
// screen when running inside one of them
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{
		out:    out,
		tmux:   os.Getenv("TMUX") != "",
		screen: os.Getenv("STY") != "",
	}
}

// Write emits the OSC 52 sequence for text
func (o *OSC52) Write(text string) error {
	if !isTerminal(o.out) {
		return ErrNotTerminal
	}
	seq := osc52.New(text)
	switch {
	case o.tmux:
		seq = seq.Tmux()
	case o.screen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.out); err != nil {
		return errors.Wrap(err, "osc52")
	}
	return nil
}

// isTerminal reports false only for files known not to be terminals.
// Other writers are trusted.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return w != nil
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Fallback tries each writer in order until one succeeds
type Fallback []Writer

// Write returns nil on the first success, otherwise the last error
func (f Fallback) Write(text string) error {
	err := errors.New("no clipboard backend configured")
	for _, w := range f {
		if err = w.Write(text); err == nil {
			return nil
		}
		log.Debugf("Clipboard backend %T failed: %v", w, err)
	}
	return err
}

// New returns the writer for a configured backend name
func New(backend string, terminal io.Writer) Writer {
	switch backend {
	case config.ClipboardSystem:
		return System{}
	case config.ClipboardOSC52:
		return NewOSC52(terminal)
	default:
		return Fallback{System{}, NewOSC52(terminal)}
	}
}
