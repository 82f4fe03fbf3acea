package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wirebound/wirebound/buffer"
	"github.com/wirebound/wirebound/debug"
	"github.com/wirebound/wirebound/field"
	"github.com/wirebound/wirebound/wire"
)

// Entry is one decoded wire-format record.
type Entry struct {
	Text   *field.Text  // set when the schema marks the field as text
	Bytes  *field.Bytes // set for all other length-delimited payloads
	Name   string
	Number uint32
	Type   wire.Type
	Value  uint64 // varint / fixed32 / fixed64 payload
	Offset int    // byte offset of the tag in the input
}

// Summary renders a one-line description of the entry's payload.
func (e *Entry) Summary() string {
	switch {
	case e.Text != nil:
		return fmt.Sprintf("%q", e.Text.String())
	case e.Bytes != nil:
		return fmt.Sprintf("%d bytes % x", e.Bytes.Len(), e.Bytes.View())
	default:
		return fmt.Sprintf("%d (0x%x)", e.Value, e.Value)
	}
}

// Detail renders the entry through the bounded debug formatter.
func (e *Entry) Detail() string {
	var buf [4096]byte
	w := debug.NewWindow(buf[:])
	w.Printf("{\n")
	switch {
	case e.Text != nil:
		e.Text.FormatDebug(w, 2, e.Name, true)
	case e.Bytes != nil:
		e.Bytes.FormatDebug(w, 2, e.Name, true)
	default:
		w.Printf("%*s%q: %d", 2, " ", e.Name, e.Value)
	}
	w.Printf("\n}")
	return w.String()
}

// DecodeStream walks a raw protobuf wire dump and decodes every entry.
// Length-delimited payloads land in bounded fields of the given capacity;
// a payload too large for that capacity fails the walk.
func DecodeStream(data []byte, sch *Schema, capacity int, logger *zap.Logger) ([]Entry, error) {
	r := buffer.NewReader(data)
	var entries []Entry

	for r.Remaining() > 0 {
		offset := len(data) - r.Remaining()
		tag, err := wire.DeserializeTag(r)
		if err != nil {
			return entries, fmt.Errorf("offset %d: %w", offset, err)
		}

		e := Entry{
			Number: tag.FieldNumber(),
			Type:   tag.Type(),
			Offset: offset,
		}
		spec := sch.Lookup(e.Number)
		if spec != nil {
			e.Name = spec.Name
		} else {
			e.Name = fmt.Sprintf("%d", e.Number)
		}

		switch tag.Type() {
		case wire.TypeVarint:
			v, err := wire.DeserializeVarint(r)
			if err != nil {
				return entries, fmt.Errorf("field %d: %w", e.Number, err)
			}
			e.Value = uint64(v)

		case wire.TypeFixed32:
			v, err := popFixed(r, 4)
			if err != nil {
				return entries, fmt.Errorf("field %d: %w", e.Number, err)
			}
			e.Value = v

		case wire.TypeFixed64:
			v, err := popFixed(r, 8)
			if err != nil {
				return entries, fmt.Errorf("field %d: %w", e.Number, err)
			}
			e.Value = v

		case wire.TypeLengthDelimited:
			if spec != nil && spec.Kind == "text" {
				t := field.NewText(capacity)
				if err := t.DeserializeCheckType(r, tag.Type()); err != nil {
					return entries, fmt.Errorf("field %d: %w", e.Number, err)
				}
				e.Text = t
			} else {
				b := field.NewBytes(capacity)
				if err := b.DeserializeCheckType(r, tag.Type()); err != nil {
					return entries, fmt.Errorf("field %d: %w", e.Number, err)
				}
				e.Bytes = b
			}

		default:
			return entries, fmt.Errorf("offset %d: unknown wire type %d", offset, tag.Type())
		}

		logger.Debug("decoded entry",
			zap.Uint32("number", e.Number),
			zap.String("wire_type", e.Type.String()),
			zap.Int("offset", e.Offset))
		entries = append(entries, e)
	}

	return entries, nil
}

// popFixed reads a little-endian fixed-width value byte by byte.
func popFixed(r *buffer.Reader, n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		b, ok := r.Pop()
		if !ok {
			return 0, fmt.Errorf("input exhausted inside fixed%d value", n*8)
		}
		v |= uint64(b) << (8 * i)
	}
	return v, nil
}
