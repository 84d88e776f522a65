// Package clipboard places generated passwords on the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

var ErrNothingToCopy = errors.New("nothing to copy")

// Writer is the subset of clipboard access the Copier needs.
type Writer interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

// System is the Writer backed by the operating system clipboard.
type System struct{}

func (System) WriteAll(text string) error { return clipboard.WriteAll(text) }

func (System) ReadAll() (string, error) { return clipboard.ReadAll() }

// Copier copies text to a Writer and optionally blanks it again after a delay.
type Copier struct {
	w          Writer
	clearAfter time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending string
}

// NewCopier returns a Copier writing to w. A zero clearAfter keeps copied
// text on the clipboard indefinitely.
func NewCopier(w Writer, clearAfter time.Duration) *Copier {
	return &Copier{w: w, clearAfter: clearAfter}
}

// Unavailable reports whether the host has no usable system clipboard.
func Unavailable() bool {
	return clipboard.Unsupported
}

// Copy writes text to the clipboard and schedules the auto-clear.
func (c *Copier) Copy(text string) error {
	if text == "" {
		return ErrNothingToCopy
	}
	if err := c.w.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.clearAfter > 0 {
		c.pending = text
		c.timer = time.AfterFunc(c.clearAfter, func() { c.clearIf(text) })
	}
	return nil
}

// Flush runs a pending auto-clear immediately. Front ends call it on exit.
func (c *Copier) Flush() {
	c.mu.Lock()
	if c.timer == nil {
		c.mu.Unlock()
		return
	}
	c.timer.Stop()
	c.timer = nil
	text := c.pending
	c.mu.Unlock()

	c.clearIf(text)
}

// Stop cancels a pending auto-clear.
func (c *Copier) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// clearIf blanks the clipboard only if it still holds text, so anything the
// user copied in the meantime survives.
func (c *Copier) clearIf(text string) {
	current, err := c.w.ReadAll()
	if err != nil {
		slog.Warn("reading clipboard before clear failed", "error", err)
		return
	}
	if current != text {
		return
	}
	if err := c.w.WriteAll(""); err != nil {
		slog.Warn("clearing clipboard failed", "error", err)
		return
	}
	slog.Debug("clipboard cleared")
}
