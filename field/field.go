package field

import (
	"github.com/wirebound/wirebound"
	"github.com/wirebound/wirebound/wire"
)

// Field is the contract every field kind implements. A containing message
// holds heterogeneous fields through this interface and drives them
// uniformly during encoding and decoding.
type Field interface {
	// SerializeWithID emits the complete wire entry for the field: tag,
	// length varint, payload. A zero-length field writes nothing unless
	// optional is set, in which case it still emits the tag and a zero
	// length.
	SerializeWithID(fieldNumber uint32, w wirebound.Writer, optional bool) error

	// Serialize writes only the raw payload bytes.
	Serialize(w wirebound.Writer) error

	// Deserialize reads a length varint and then that many payload bytes.
	Deserialize(r wirebound.Reader) error

	// DeserializeCheckType verifies the wire type before deserializing.
	DeserializeCheckType(r wirebound.Reader, t wire.Type) error

	// Clear resets the field to its default state.
	Clear()
}

// Viewer is the minimal read contract used for cross-capacity assignment:
// any field exposes its logical content as a byte slice, so two fields of
// different capacities are compatible as long as the payload fits.
type Viewer interface {
	// View returns the field's current content, logical length long.
	View() []byte
}
