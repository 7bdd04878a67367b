package dialog

import (
	log "github.com/sirupsen/logrus"

	"emojimenu/internal/clipboard"
	"emojimenu/internal/feedback"
)

// User-facing commit messages
const (
	MsgCopied      = "Emoji copied to clipboard."
	MsgCopyFailed  = "Failed to copy emoji to clipboard."
	MsgCopyErrored = "An error occurred while copying."
)

// Committer copies a chosen character to the clipboard and reports the
// outcome to the user
type Committer struct {
	clip      clipboard.Writer
	announcer feedback.Announcer
	beeper    feedback.Beeper
}

// NewCommitter creates a committer
func NewCommitter(clip clipboard.Writer, announcer feedback.Announcer, beeper feedback.Beeper) *Committer {
	return &Committer{clip: clip, announcer: announcer, beeper: beeper}
}

// Commit writes character to the clipboard and reports whether it succeeded.
// Every failure produces one announcement and one beep.
func (c *Committer) Commit(character string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Clipboard write panicked: %v", r)
			c.fail(MsgCopyErrored)
			ok = false
		}
	}()

	if err := c.clip.Write(character); err != nil {
		log.Warnf("Clipboard write failed: %v", err)
		c.fail(MsgCopyFailed)
		return false
	}
	c.announcer.Announce(MsgCopied)
	return true
}

func (c *Committer) fail(message string) {
	c.announcer.Announce(message)
	c.beeper.Beep(feedback.FailureFrequency, feedback.FailureDuration)
}
