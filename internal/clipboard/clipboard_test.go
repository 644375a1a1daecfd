package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

func stubNative(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := writeAllFn
	writeAllFn = fn
	t.Cleanup(func() { writeAllFn = orig })
}

func TestCopy_EmptyContent(t *testing.T) {
	err := NewSystem(nil).Copy("")
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("expected ErrNoContent, got %v", err)
	}
}

func TestCopy_Native(t *testing.T) {
	var got string
	stubNative(t, func(s string) error {
		got = s
		return nil
	})

	var term bytes.Buffer
	if err := NewSystem(&term).Copy("고니"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "고니" {
		t.Errorf("native clipboard got %q", got)
	}
	if term.Len() != 0 {
		t.Errorf("no OSC 52 output expected, got %q", term.String())
	}
}

func TestCopy_OSC52Fallback(t *testing.T) {
	stubNative(t, func(string) error { return errors.New("no clipboard utility") })

	var term bytes.Buffer
	s := NewSystem(&term)
	s.inTmux = false
	if err := s.Copy("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encoded := base64.StdEncoding.EncodeToString([]byte("hello"))
	if !bytes.Contains(term.Bytes(), []byte("\x1b]52;c;"+encoded)) {
		t.Errorf("expected OSC 52 sequence, got %q", term.String())
	}
}

func TestCopy_NoFallback(t *testing.T) {
	stubNative(t, func(string) error { return errors.New("no clipboard utility") })

	if err := NewSystem(nil).Copy("hello"); err == nil {
		t.Error("expected error without a terminal fallback")
	}
}

func TestDispatchSwallowsErrors(t *testing.T) {
	done := make(chan string, 1)
	failing := CopyFunc(func(text string) error {
		done <- text
		return errors.New("permission denied")
	})

	Dispatch(failing, "answer")

	select {
	case text := <-done:
		if text != "answer" {
			t.Errorf("copied %q", text)
		}
	case <-time.After(time.Second):
		t.Fatal("copy was never dispatched")
	}
}

func TestDiscard(t *testing.T) {
	if err := Discard.Copy("x"); err != nil {
		t.Errorf("Discard returned %v", err)
	}
}
