// Package clipboard provides the copy capability used for answers.
//
// Copy failures are reported to the caller, which is expected to drop them:
// the copied text is always still visible on screen.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/log"
)

// ErrNoContent is returned when asked to copy an empty string.
var ErrNoContent = errors.New("no content to copy")

// Copier writes text to a copy destination.
type Copier interface {
	Copy(text string) error
}

// CopyFunc adapts a plain function to Copier.
type CopyFunc func(text string) error

// Copy calls f.
func (f CopyFunc) Copy(text string) error { return f(text) }

type discard struct{}

func (discard) Copy(string) error { return nil }

// Discard is a Copier that accepts everything and does nothing.
var Discard Copier = discard{}

// writeAllFn is the native clipboard writer. Tests replace it.
var writeAllFn = clipboard.WriteAll

// System copies through the native clipboard and falls back to an OSC 52
// escape sequence written to the terminal.
type System struct {
	term   io.Writer
	inTmux bool
}

// NewSystem creates a System copier. term receives the OSC 52 fallback; nil disables it.
func NewSystem(term io.Writer) *System {
	return &System{
		term:   term,
		inTmux: os.Getenv("TMUX") != "",
	}
}

// Copy writes text to the clipboard.
func (s *System) Copy(text string) error {
	if text == "" {
		return ErrNoContent
	}

	nativeErr := writeAllFn(text)
	if nativeErr == nil {
		log.Debugf("Copied %d bytes via native clipboard", len(text))
		return nil
	}

	if s.term == nil {
		return fmt.Errorf("native clipboard failed: %w", nativeErr)
	}

	seq := osc52.New(text)
	if s.inTmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(s.term); err != nil {
		return fmt.Errorf("OSC 52 clipboard failed: %w", err)
	}
	log.Debugf("Copied %d bytes via OSC 52 (native: %v)", len(text), nativeErr)
	return nil
}

// Dispatch copies text in the background and swallows any error.
func Dispatch(c Copier, text string) {
	go func() {
		if err := c.Copy(text); err != nil {
			log.Debugf("Copy failed: %v", err)
		}
	}()
}
