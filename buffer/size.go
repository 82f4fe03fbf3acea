package buffer

import "math"

// SizeWriter counts bytes without storing them. Serializing into a
// SizeWriter yields the encoded size of a field or message, which callers
// use to pick a capacity before committing to real storage.
type SizeWriter struct {
	count int
}

// Push records len(p) bytes and always succeeds.
func (s *SizeWriter) Push(p []byte) bool {
	s.count += len(p)
	return true
}

// Available reports unlimited room so payload feasibility checks pass.
func (s *SizeWriter) Available() int {
	return math.MaxInt
}

// Size reports the number of bytes counted so far.
func (s *SizeWriter) Size() int {
	return s.count
}

// Reset zeroes the count.
func (s *SizeWriter) Reset() {
	s.count = 0
}
