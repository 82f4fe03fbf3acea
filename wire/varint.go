package wire

import (
	"github.com/wirebound/wirebound"
	"github.com/wirebound/wirebound/errors"
)

// maxVarint32Bytes is the longest base-128 encoding of a 32-bit value.
const maxVarint32Bytes = 5

// SerializeVarint writes v to the transport in base-128 varint encoding.
// The bytes are staged on the stack and pushed as one unit, so a rejected
// push leaves the transport untouched.
func SerializeVarint(v uint32, w wirebound.Writer) error {
	var staged [maxVarint32Bytes]byte
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		staged[n] = b
		n++
		if v == 0 {
			break
		}
	}
	if !w.Push(staged[:n]) {
		return errors.BufferFull(n, w.Available())
	}
	return nil
}

// DeserializeVarint reads one base-128 varint from the transport.
// It returns KindEndOfBuffer when the transport runs dry mid-value and
// KindVarintOverflow when the encoding exceeds 32 bits.
func DeserializeVarint(r wirebound.Reader) (uint32, error) {
	var result uint32
	var shift uint
	got := 0
	for {
		b, ok := r.Pop()
		if !ok {
			return 0, errors.EndOfBuffer(got, got+1)
		}
		got++
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 35 {
			return 0, errors.VarintOverflow(35)
		}
	}
}

// SerializeTag writes the tag as a varint.
func SerializeTag(t Tag, w wirebound.Writer) error {
	return SerializeVarint(uint32(t), w)
}

// DeserializeTag reads one tag varint.
func DeserializeTag(r wirebound.Reader) (Tag, error) {
	v, err := DeserializeVarint(r)
	if err != nil {
		return 0, err
	}
	return Tag(v), nil
}

// VarintSize reports how many bytes the varint encoding of v occupies.
func VarintSize(v uint32) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
