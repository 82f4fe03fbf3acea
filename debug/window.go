package debug

import "fmt"

// Window is a bounded output region for debug rendering. It wraps a
// caller-supplied byte slice and advances through it; writes that do not
// fit are silently truncated rather than reported, mirroring the non-fatal
// nature of a pure debug aid.
type Window struct {
	buf  []byte
	used int
}

// NewWindow returns a Window over the caller's buffer.
func NewWindow(buf []byte) *Window {
	return &Window{buf: buf}
}

// Printf formats into the window, keeping whatever fits. Formatting goes
// through fmt, so this path may allocate; it exists for debugging, not for
// the hot codec path.
func (w *Window) Printf(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	w.used += copy(w.buf[w.used:], s)
}

// Len reports the bytes written so far.
func (w *Window) Len() int {
	return w.used
}

// Remaining reports the room left.
func (w *Window) Remaining() int {
	return len(w.buf) - w.used
}

// Bytes returns the written content, aliasing the caller's buffer.
func (w *Window) Bytes() []byte {
	return w.buf[:w.used]
}

// String returns the written content as a string.
func (w *Window) String() string {
	return string(w.buf[:w.used])
}

// Reset discards the written content.
func (w *Window) Reset() {
	w.used = 0
}

// Formatter renders a value as a JSON-style fragment into a Window.
// indent is the number of leading spaces; name is the member name, or ""
// for a bare value; first suppresses the comma separator a fragment
// otherwise writes before itself.
type Formatter interface {
	FormatDebug(w *Window, indent int, name string, first bool)
}
