package buffer

// Writer is a fixed-capacity output transport. The backing storage is
// allocated once at construction (or supplied by the caller) and never
// grows.
type Writer struct {
	data []byte
	used int
}

// New returns a Writer with a freshly allocated backing array of the given
// capacity. This is the only allocation the Writer ever performs.
func New(capacity int) *Writer {
	return &Writer{data: make([]byte, capacity)}
}

// Wrap returns a Writer over caller-owned storage. The Writer starts empty;
// existing content of storage is ignored and overwritten.
func Wrap(storage []byte) *Writer {
	return &Writer{data: storage}
}

// Push appends p to the buffer. It writes nothing and returns false when p
// does not fit in the remaining room.
func (w *Writer) Push(p []byte) bool {
	if len(p) > len(w.data)-w.used {
		return false
	}
	copy(w.data[w.used:], p)
	w.used += len(p)
	return true
}

// Available reports the remaining room in bytes.
func (w *Writer) Available() int {
	return len(w.data) - w.used
}

// Bytes returns the written content. The slice aliases the backing array.
func (w *Writer) Bytes() []byte {
	return w.data[:w.used]
}

// Len reports the number of bytes written so far.
func (w *Writer) Len() int {
	return w.used
}

// Cap reports the total capacity.
func (w *Writer) Cap() int {
	return len(w.data)
}

// Reset discards the written content. The backing array is retained.
func (w *Writer) Reset() {
	w.used = 0
}
