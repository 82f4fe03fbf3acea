package field

import (
	"github.com/wirebound/wirebound"
	"github.com/wirebound/wirebound/errors"
	"github.com/wirebound/wirebound/wire"
)

// Bytes is a fixed-capacity byte-sequence field implementing the protobuf
// length-delimited wire contract. The backing storage is fixed at
// construction and never reallocates; the logical length tracks how many
// of those bytes are currently meaningful.
//
// Two access tiers coexist deliberately. At and Slot clamp an out-of-range
// index to the last slot and never fail, with Slot additionally growing the
// logical length; Load is the strict tier and reports an error past the
// logical length. Callers pick convenience or safety per call site.
type Bytes struct {
	data   []byte // fixed backing, len(data) == capacity
	length int    // logical length, 0 <= length <= capacity
}

var (
	_ Field  = (*Bytes)(nil)
	_ Viewer = (*Bytes)(nil)
)

// NewBytes returns a Bytes field with a freshly allocated, zeroed backing
// array of the given capacity. This is the only allocation the field ever
// performs. A negative capacity is treated as zero.
func NewBytes(capacity int) *Bytes {
	if capacity < 0 {
		capacity = 0
	}
	return &Bytes{data: make([]byte, capacity)}
}

// WrapBytes returns a Bytes field over caller-owned storage, letting the
// backing array live on the stack or in static memory. The storage is
// zeroed and the field starts empty.
func WrapBytes(storage []byte) *Bytes {
	b := &Bytes{data: storage}
	b.Clear()
	return b
}

// Len reports the logical length.
func (b *Bytes) Len() int {
	return b.length
}

// MaxLen reports the fixed capacity.
func (b *Bytes) MaxLen() int {
	return len(b.data)
}

// Raw returns the whole backing array, capacity wide, regardless of the
// logical length. Bytes past Len() are only guaranteed meaningful right
// after construction or Clear; a prior longer assignment may have left
// stale content there.
func (b *Bytes) Raw() []byte {
	return b.data
}

// View returns the logical content, Len() bytes long. The slice aliases
// the backing array.
func (b *Bytes) View() []byte {
	return b.data[:b.length]
}

// At returns the element at index i, clamping an out-of-range index to the
// last slot. It never fails and does not consult the logical length.
func (b *Bytes) At(i int) byte {
	if len(b.data) == 0 {
		return 0
	}
	return b.data[b.clamp(i)]
}

// Load returns the element at index i, or an index_out_of_bound error when
// i is not inside the logical length. This is the strict counterpart of At.
func (b *Bytes) Load(i int) (byte, error) {
	if i < 0 || i >= b.length {
		return 0, errors.IndexOutOfBound(i, b.length)
	}
	return b.data[i], nil
}

// Slot returns a mutable pointer to the element at index i, clamping an
// out-of-range index to the last slot. When the clamped index lies at or
// past the logical length, the length grows to cover it; bytes between the
// old length and the new index keep whatever they previously held. Content
// can therefore be built through indexed writes alone:
//
//	f := field.NewBytes(4)
//	*f.Slot(0) = 'h'
//	*f.Slot(1) = 'i'
//	f.Len() // 2
//
// Slot returns nil only for a zero-capacity field.
func (b *Bytes) Slot(i int) *byte {
	if len(b.data) == 0 {
		return nil
	}
	i = b.clamp(i)
	if i >= b.length {
		b.length = i + 1
	}
	return &b.data[i]
}

// Set bulk-overwrites the content. It returns an array_full error and
// leaves the field unchanged when p exceeds the capacity. The backing
// bytes past the new length are not zeroed.
func (b *Bytes) Set(p []byte) error {
	if len(p) > len(b.data) {
		return errors.ArrayFull(errors.PhaseAssign, len(p), len(b.data))
	}
	b.length = len(p)
	copy(b.data, p)
	return nil
}

// CopyFrom assigns another field's content through the minimal Viewer
// contract. The source may have any capacity; only its logical content has
// to fit here.
func (b *Bytes) CopyFrom(src Viewer) error {
	return b.Set(src.View())
}

// SerializeWithID emits the field's complete wire entry. A zero-length
// field writes nothing unless optional is set; an optional empty field
// still emits its tag and a zero length varint.
//
// The upfront room check covers only the payload, not the tag and length
// varints written before it. That imprecision is part of the contract:
// callers sizing buffers get a guarantee about the payload and must budget
// a few bytes of headroom for the varints themselves.
func (b *Bytes) SerializeWithID(fieldNumber uint32, w wirebound.Writer, optional bool) error {
	if b.length == 0 && !optional {
		return nil
	}
	if avail := w.Available(); b.length > avail {
		return errors.BufferFull(b.length, avail)
	}
	if err := wire.SerializeTag(wire.MakeTag(fieldNumber, wire.TypeLengthDelimited), w); err != nil {
		return err
	}
	if err := wire.SerializeVarint(uint32(b.length), w); err != nil {
		return err
	}
	if b.length > 0 {
		return b.Serialize(w)
	}
	return nil
}

// Serialize pushes exactly the logical content as raw bytes.
func (b *Bytes) Serialize(w wirebound.Writer) error {
	if !w.Push(b.data[:b.length]) {
		return errors.BufferFull(b.length, w.Available())
	}
	return nil
}

// Deserialize reads a length varint and then that many payload bytes.
//
// A declared length beyond the capacity fails with array_full before any
// existing content is touched. Once the length fits, the field is cleared
// and bytes are popped one at a time; if the transport runs dry early the
// partially-read bytes stay in the field and end_of_buffer is returned.
// The failure is not atomic.
func (b *Bytes) Deserialize(r wirebound.Reader) error {
	want, err := wire.DeserializeVarint(r)
	if err != nil {
		return err
	}
	if int(want) > len(b.data) {
		return errors.ArrayFull(errors.PhaseDecode, int(want), len(b.data))
	}

	b.Clear()
	for b.length < int(want) {
		c, ok := r.Pop()
		if !ok {
			return errors.EndOfBuffer(b.length, int(want))
		}
		b.data[b.length] = c
		b.length++
	}
	return nil
}

// DeserializeCheckType rejects any wire type other than length-delimited,
// then deserializes.
func (b *Bytes) DeserializeCheckType(r wirebound.Reader, t wire.Type) error {
	if t != wire.TypeLengthDelimited {
		return errors.InvalidWireType(t.String())
	}
	return b.Deserialize(r)
}

// Clear zero-fills the whole backing array and resets the logical length.
func (b *Bytes) Clear() {
	clear(b.data)
	b.length = 0
}

// setLength forces the logical length, clamped to the capacity, without
// touching the storage. For use by specializations only.
func (b *Bytes) setLength(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(b.data) {
		n = len(b.data)
	}
	b.length = n
}

func (b *Bytes) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(b.data)-1 {
		return len(b.data) - 1
	}
	return i
}
