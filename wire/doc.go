// Package wire implements the protobuf wire-format primitives: wire types,
// field tags, and the base-128 varint codec.
//
// A tag combines a field number and a wire type in a single varint:
//
//	tag := wire.MakeTag(5, wire.TypeLengthDelimited)
//	tag.FieldNumber() // 5
//	tag.Type()        // wire.TypeLengthDelimited
//
// Varints are encoded and decoded directly against the transport contracts
// in the root package, one value at a time, with no intermediate heap
// allocation. Decoding is limited to 32-bit values; longer encodings return
// a varint_overflow error, matching the codec's fixed 32-bit length and tag
// space.
package wire
