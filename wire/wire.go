package wire

// Type identifies how a field's bytes are structured on the wire.
type Type uint32

const (
	TypeVarint          Type = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	TypeFixed64         Type = 1 // fixed64, sfixed64, double
	TypeLengthDelimited Type = 2 // string, bytes, embedded messages, packed repeated fields
	TypeFixed32         Type = 5 // fixed32, sfixed32, float
)

func (t Type) String() string {
	switch t {
	case TypeVarint:
		return "varint"
	case TypeFixed64:
		return "fixed64"
	case TypeLengthDelimited:
		return "length_delimited"
	case TypeFixed32:
		return "fixed32"
	default:
		return "unknown"
	}
}

// Tag is a varint combining a field number and a wire type.
type Tag uint32

// MakeTag builds a tag from a field number and wire type.
func MakeTag(fieldNumber uint32, t Type) Tag {
	return Tag(fieldNumber<<3 | uint32(t))
}

// FieldNumber extracts the field number from the tag.
func (t Tag) FieldNumber() uint32 {
	return uint32(t) >> 3
}

// Type extracts the wire type from the tag.
func (t Tag) Type() Type {
	return Type(uint32(t) & 0x7)
}
