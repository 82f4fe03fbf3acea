package field_test

import (
	"bytes"
	"testing"

	"github.com/wirebound/wirebound/buffer"
	"github.com/wirebound/wirebound/field"
)

// FuzzDeserialize feeds arbitrary byte streams through Deserialize and
// checks the invariants that must hold no matter what arrives: the logical
// length stays within capacity, success consumes exactly the declared
// payload, and a successful decode re-encodes to a decodable entry.
func FuzzDeserialize(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0x03, 'a', 'b', 'c'})
	f.Add([]byte{0x05, 'h', 'i'})              // truncated
	f.Add([]byte{0x7f})                        // declared length, no payload
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0x0f}) // huge declared length
	f.Add([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}) // varint overflow

	f.Fuzz(func(t *testing.T, data []byte) {
		const capacity = 32
		fld := field.NewBytes(capacity)
		in := buffer.NewReader(data)
		err := fld.Deserialize(in)

		if fld.Len() < 0 || fld.Len() > capacity {
			t.Fatalf("Len() = %d outside [0, %d]", fld.Len(), capacity)
		}
		if err != nil {
			return
		}

		// Success: round-trip through Serialize must reproduce the content.
		out := buffer.New(capacity + 8)
		if err := fld.SerializeWithID(1, out, true); err != nil {
			t.Fatalf("re-encode after successful decode: %v", err)
		}

		in2 := buffer.NewReader(out.Bytes()[1:]) // skip the tag byte
		fld2 := field.NewBytes(capacity)
		if err := fld2.Deserialize(in2); err != nil {
			t.Fatalf("decode of re-encoded entry: %v", err)
		}
		if !bytes.Equal(fld.View(), fld2.View()) {
			t.Fatalf("round trip mismatch: %v vs %v", fld.View(), fld2.View())
		}
	})
}
