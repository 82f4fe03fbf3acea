package wire_test

import (
	"bytes"
	"errors"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/wirebound/wirebound/buffer"
	wberrors "github.com/wirebound/wirebound/errors"
	"github.com/wirebound/wirebound/wire"
)

func TestMakeTag(t *testing.T) {
	tests := []struct {
		number uint32
		wt     wire.Type
		want   wire.Tag
	}{
		{1, wire.TypeVarint, 0x08},
		{1, wire.TypeLengthDelimited, 0x0A},
		{2, wire.TypeLengthDelimited, 0x12},
		{15, wire.TypeFixed32, 0x7D},
		{16, wire.TypeVarint, 0x80},
	}

	for _, tt := range tests {
		got := wire.MakeTag(tt.number, tt.wt)
		if got != tt.want {
			t.Errorf("MakeTag(%d, %v) = %#x, want %#x", tt.number, tt.wt, got, tt.want)
		}
		if got.FieldNumber() != tt.number {
			t.Errorf("FieldNumber() = %d, want %d", got.FieldNumber(), tt.number)
		}
		if got.Type() != tt.wt {
			t.Errorf("Type() = %v, want %v", got.Type(), tt.wt)
		}
	}
}

func TestVarintVectors(t *testing.T) {
	tests := []struct {
		encoded []byte
		value   uint32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xff, 0x01}, 255},
		{[]byte{0x80, 0x02}, 256},
		{[]byte{0xff, 0x7f}, 16383},
		{[]byte{0x80, 0x80, 0x01}, 16384},
		{[]byte{0xe5, 0x8e, 0x26}, 624485},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			w := buffer.New(8)
			if err := wire.SerializeVarint(tt.value, w); err != nil {
				t.Fatalf("encode %d: %v", tt.value, err)
			}
			if !bytes.Equal(w.Bytes(), tt.encoded) {
				t.Errorf("encode %d: got %v, want %v", tt.value, w.Bytes(), tt.encoded)
			}

			r := buffer.NewReader(tt.encoded)
			got, err := wire.DeserializeVarint(r)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got != tt.value {
				t.Errorf("decode: got %d, want %d", got, tt.value)
			}
		})
	}
}

// The reference protobuf implementation must agree with ours byte for byte.
func TestVarintMatchesProtowire(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 300, 16383, 16384, 624485, 1<<28 - 1, 1 << 28, 0xFFFFFFFF}

	for _, v := range values {
		w := buffer.New(8)
		if err := wire.SerializeVarint(v, w); err != nil {
			t.Fatalf("SerializeVarint(%d): %v", v, err)
		}
		ref := protowire.AppendVarint(nil, uint64(v))
		if !bytes.Equal(w.Bytes(), ref) {
			t.Errorf("varint %d: got %v, protowire %v", v, w.Bytes(), ref)
		}
		if wire.VarintSize(v) != len(ref) {
			t.Errorf("VarintSize(%d) = %d, protowire uses %d", v, wire.VarintSize(v), len(ref))
		}
	}
}

func TestTagMatchesProtowire(t *testing.T) {
	for _, number := range []uint32{1, 2, 15, 16, 100, 2047} {
		w := buffer.New(8)
		tag := wire.MakeTag(number, wire.TypeLengthDelimited)
		if err := wire.SerializeTag(tag, w); err != nil {
			t.Fatalf("SerializeTag(%d): %v", number, err)
		}
		ref := protowire.AppendTag(nil, protowire.Number(number), protowire.BytesType)
		if !bytes.Equal(w.Bytes(), ref) {
			t.Errorf("tag for field %d: got %v, protowire %v", number, w.Bytes(), ref)
		}
	}
}

func TestDeserializeVarintTruncated(t *testing.T) {
	// Continuation bit set but no next byte.
	r := buffer.NewReader([]byte{0x80})
	_, err := wire.DeserializeVarint(r)
	if !wberrors.IsKind(err, wberrors.KindEndOfBuffer) {
		t.Errorf("expected end_of_buffer, got %v", err)
	}

	r = buffer.NewReader(nil)
	_, err = wire.DeserializeVarint(r)
	if !wberrors.IsKind(err, wberrors.KindEndOfBuffer) {
		t.Errorf("empty input: expected end_of_buffer, got %v", err)
	}
}

func TestDeserializeVarintOverflow(t *testing.T) {
	// Six bytes with continuation bits exceed 35 bits.
	r := buffer.NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	_, err := wire.DeserializeVarint(r)
	if !errors.Is(err, &wberrors.Error{Kind: wberrors.KindVarintOverflow}) {
		t.Errorf("expected varint_overflow, got %v", err)
	}
}

func TestSerializeVarintBufferFull(t *testing.T) {
	// 624485 needs three bytes; give it two.
	w := buffer.New(2)
	err := wire.SerializeVarint(624485, w)
	if !wberrors.IsKind(err, wberrors.KindBufferFull) {
		t.Fatalf("expected buffer_full, got %v", err)
	}
	if w.Len() != 0 {
		t.Errorf("failed serialize wrote %d bytes, want 0", w.Len())
	}
}

func TestVarintRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 300, 70000, 1 << 21, 0xFFFFFFFF} {
		w := buffer.New(8)
		if err := wire.SerializeVarint(v, w); err != nil {
			t.Fatalf("serialize %d: %v", v, err)
		}
		got, err := wire.DeserializeVarint(buffer.NewReader(w.Bytes()))
		if err != nil {
			t.Fatalf("deserialize %d: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip: got %d, want %d", got, v)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		t    wire.Type
		want string
	}{
		{wire.TypeVarint, "varint"},
		{wire.TypeFixed64, "fixed64"},
		{wire.TypeLengthDelimited, "length_delimited"},
		{wire.TypeFixed32, "fixed32"},
		{wire.Type(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}
