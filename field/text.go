package field

// Text is a Bytes field with C-string-aware convenience on top. It stores
// text in the same fixed backing array and keeps a NUL terminator after the
// content whenever there is room for one, so the raw storage can be handed
// to terminator-scanning consumers.
type Text struct {
	Bytes
}

var (
	_ Field  = (*Text)(nil)
	_ Viewer = (*Text)(nil)
)

// NewText returns a Text field with a freshly allocated, zeroed backing
// array of the given capacity. A negative capacity is treated as zero.
func NewText(capacity int) *Text {
	if capacity < 0 {
		capacity = 0
	}
	return &Text{Bytes{data: make([]byte, capacity)}}
}

// WrapText returns a Text field over caller-owned storage. The storage is
// zeroed and the field starts empty.
func WrapText(storage []byte) *Text {
	t := &Text{Bytes{data: storage}}
	t.Clear()
	return t
}

// SetString assigns s, truncating to the capacity. A terminator byte is
// written after the content only when the content is shorter than the
// capacity; a string filling the field exactly is stored unterminated.
func (t *Text) SetString(s string) {
	t.setLength(len(s))
	copy(t.data, s[:t.length])
	if t.length < len(t.data) {
		t.data[t.length] = 0
	}
}

// SetCString assigns a NUL-terminated byte source. A nil source clears the
// field. The source's length is the bytes before its first NUL, or all of
// src when it carries no terminator; truncation and terminator handling
// then follow SetString.
func (t *Text) SetCString(src []byte) {
	if src == nil {
		t.Clear()
		return
	}
	n := 0
	for n < len(src) && src[n] != 0 {
		n++
	}
	t.setLength(n)
	copy(t.data, src[:t.length])
	if t.length < len(t.data) {
		t.data[t.length] = 0
	}
}

// String returns the logical content as a Go string. This is the one
// method on the type that allocates; use View for allocation-free access.
func (t *Text) String() string {
	return string(t.data[:t.length])
}
