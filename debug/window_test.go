package debug_test

import (
	"testing"

	"github.com/wirebound/wirebound/debug"
)

func TestWindowPrintf(t *testing.T) {
	var buf [16]byte
	w := debug.NewWindow(buf[:])

	w.Printf("%s=%d", "x", 42)
	if w.String() != "x=42" {
		t.Errorf("String() = %q, want %q", w.String(), "x=42")
	}
	if w.Len() != 4 {
		t.Errorf("Len() = %d, want 4", w.Len())
	}
	if w.Remaining() != 12 {
		t.Errorf("Remaining() = %d, want 12", w.Remaining())
	}
}

func TestWindowTruncation(t *testing.T) {
	var buf [4]byte
	w := debug.NewWindow(buf[:])

	w.Printf("abcdef")
	if w.String() != "abcd" {
		t.Errorf("String() = %q, want %q", w.String(), "abcd")
	}

	// Writes to a full window are dropped without error.
	w.Printf("more")
	if w.String() != "abcd" {
		t.Errorf("full window accepted bytes: %q", w.String())
	}
}

func TestWindowReset(t *testing.T) {
	var buf [8]byte
	w := debug.NewWindow(buf[:])

	w.Printf("data")
	w.Reset()
	if w.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", w.Len())
	}
	w.Printf("new")
	if w.String() != "new" {
		t.Errorf("String() = %q, want %q", w.String(), "new")
	}
}
