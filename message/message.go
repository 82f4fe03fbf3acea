package message

import (
	stderrors "errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/wirebound/wirebound"
	"github.com/wirebound/wirebound/buffer"
	"github.com/wirebound/wirebound/debug"
	"github.com/wirebound/wirebound/errors"
	"github.com/wirebound/wirebound/field"
	"github.com/wirebound/wirebound/wire"
)

type entry struct {
	f        field.Field
	name     string
	number   uint32
	optional bool
}

// Message is an ordered set of numbered fields driven through the Field
// interface. It owns no field storage of its own; fields are registered
// during construction and the message only dispatches to them.
type Message struct {
	entries []entry
}

// New returns an empty message. Registration with Add is the construction
// phase; encode and decode afterwards allocate nothing.
func New() *Message {
	return &Message{}
}

// Add registers a field under a protobuf field number. The name is used
// for debug rendering; an empty name falls back to the number. Optional
// fields emit a tag and zero length even when empty.
//
// A duplicate number is ignored and logged; the first registration wins.
func (m *Message) Add(number uint32, name string, f field.Field, optional bool) *Message {
	if m.lookup(number) != nil {
		Logger().Warn("duplicate field number ignored",
			zap.Uint32("number", number), zap.String("name", name))
		return m
	}
	if name == "" {
		name = strconv.FormatUint(uint64(number), 10)
	}
	m.entries = append(m.entries, entry{f: f, name: name, number: number, optional: optional})
	return m
}

// Field returns the field registered under number, or nil.
func (m *Message) Field(number uint32) field.Field {
	if e := m.lookup(number); e != nil {
		return e.f
	}
	return nil
}

func (m *Message) lookup(number uint32) *entry {
	for i := range m.entries {
		if m.entries[i].number == number {
			return &m.entries[i]
		}
	}
	return nil
}

// Serialize emits every registered field in registration order. The first
// failure stops the remaining fields and propagates upward annotated with
// the failing field's number.
func (m *Message) Serialize(w wirebound.Writer) error {
	for i := range m.entries {
		e := &m.entries[i]
		if err := e.f.SerializeWithID(e.number, w, e.optional); err != nil {
			return attribute(err, e.number)
		}
	}
	return nil
}

// Deserialize reads tagged entries until the input is exhausted,
// dispatching each to the field registered under its number. Entries for
// unregistered numbers are skipped by wire type. A failure mid-entry
// propagates unchanged apart from field attribution; the message performs
// no recovery and fields already decoded keep their content.
func (m *Message) Deserialize(r *buffer.Reader) error {
	for r.Remaining() > 0 {
		tag, err := wire.DeserializeTag(r)
		if err != nil {
			return err
		}

		e := m.lookup(tag.FieldNumber())
		if e == nil {
			Logger().Debug("skipping unknown field",
				zap.Uint32("number", tag.FieldNumber()), zap.String("wire_type", tag.Type().String()))
			if err := skipValue(r, tag.Type()); err != nil {
				return attribute(err, tag.FieldNumber())
			}
			continue
		}

		if err := e.f.DeserializeCheckType(r, tag.Type()); err != nil {
			return attribute(err, e.number)
		}
	}
	return nil
}

// Size reports the encoded size of the message by serializing into a
// counting writer.
func (m *Message) Size() (int, error) {
	var s buffer.SizeWriter
	if err := m.Serialize(&s); err != nil {
		return 0, err
	}
	return s.Size(), nil
}

// Clear resets every registered field to its default state.
func (m *Message) Clear() {
	for i := range m.entries {
		m.entries[i].f.Clear()
	}
}

// FormatDebug renders the message as a JSON object into the window, using
// each field's registered name. Fields that do not implement
// debug.Formatter are omitted.
func (m *Message) FormatDebug(w *debug.Window) {
	w.Printf("{\n")
	first := true
	for i := range m.entries {
		e := &m.entries[i]
		fm, ok := e.f.(debug.Formatter)
		if !ok {
			continue
		}
		fm.FormatDebug(w, 2, e.name, first)
		first = false
	}
	w.Printf("\n}")
}

// skipValue consumes one unknown field's payload according to its wire type.
func skipValue(r *buffer.Reader, t wire.Type) error {
	switch t {
	case wire.TypeVarint:
		_, err := wire.DeserializeVarint(r)
		return err
	case wire.TypeLengthDelimited:
		n, err := wire.DeserializeVarint(r)
		if err != nil {
			return err
		}
		if !r.Skip(int(n)) {
			return errors.EndOfBuffer(r.Remaining(), int(n))
		}
		return nil
	case wire.TypeFixed32:
		if !r.Skip(4) {
			return errors.EndOfBuffer(r.Remaining(), 4)
		}
		return nil
	case wire.TypeFixed64:
		if !r.Skip(8) {
			return errors.EndOfBuffer(r.Remaining(), 8)
		}
		return nil
	default:
		return errors.InvalidWireType(t.String())
	}
}

// attribute tags a propagated error with the field number it belongs to.
func attribute(err error, number uint32) error {
	var werr *errors.Error
	if stderrors.As(err, &werr) && werr.FieldNumber == 0 {
		return werr.WithField(number)
	}
	return err
}
