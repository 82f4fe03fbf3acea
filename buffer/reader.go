package buffer

// Reader is an input transport over a byte slice. It never copies or
// allocates; it only advances a cursor over the caller's data.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pop consumes and returns the next byte, or false when exhausted.
func (r *Reader) Pop() (byte, bool) {
	if r.pos >= len(r.data) {
		return 0, false
	}
	b := r.data[r.pos]
	r.pos++
	return b, true
}

// Peek returns the next byte without consuming it.
func (r *Reader) Peek() (byte, bool) {
	if r.pos >= len(r.data) {
		return 0, false
	}
	return r.data[r.pos], true
}

// Skip advances past n bytes. It returns false, consuming the rest of the
// input, when fewer than n bytes remain.
func (r *Reader) Skip(n int) bool {
	if n > len(r.data)-r.pos {
		r.pos = len(r.data)
		return false
	}
	r.pos += n
	return true
}

// Remaining reports the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}
