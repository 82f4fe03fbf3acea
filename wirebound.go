package wirebound

// Writer is the output transport a field serializes into. Implementations
// own a bounded region of memory; Push must be all-or-nothing.
type Writer interface {
	// Push appends p to the transport. It returns false, without writing
	// anything, when p does not fit in the remaining room.
	Push(p []byte) bool

	// Available reports the remaining room in bytes.
	Available() int
}

// Reader is the input transport a field deserializes from.
type Reader interface {
	// Pop consumes and returns the next byte. It returns false when the
	// transport is exhausted.
	Pop() (byte, bool)
}
