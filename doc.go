// Package wirebound provides a Protocol Buffers wire-format codec for
// fixed-memory environments.
//
// Every field has a capacity fixed at construction, every fallible operation
// returns an explicit error value, and no allocation occurs after a field or
// buffer is constructed. The library targets the same constraints as
// protobuf implementations for embedded systems: no dynamic heap, no panics
// on expected failure paths, and bounded worst-case memory.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	wirebound/           Root package with the Writer and Reader transport contracts
//	├── wire/            Wire types, tags, and the varint codec
//	├── buffer/          Fixed-capacity transport implementations
//	├── field/           Bounded byte and text fields, the Field interface
//	├── message/         Ordered field sets with serialize/deserialize dispatch
//	├── debug/           Bounded JSON-style debug rendering
//	└── errors/          Structured error values for codec failures
//
// # Quick Start
//
// Encode a text field into a fixed buffer and decode it back:
//
//	name := field.NewText(32)
//	name.SetString("telemetry-unit-7")
//
//	out := buffer.New(64)
//	if err := name.SerializeWithID(1, out, false); err != nil {
//	    log.Fatal(err)
//	}
//
//	in := buffer.NewReader(out.Bytes())
//	tag, _ := wire.DeserializeTag(in)
//
//	decoded := field.NewText(32)
//	if err := decoded.DeserializeCheckType(in, tag.Type()); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(decoded.String()) // "telemetry-unit-7"
//
// For stack- or statically-backed fields, wrap caller-owned storage instead
// of allocating:
//
//	var storage [32]byte
//	name := field.WrapText(storage[:])
//
// # Wire Compatibility
//
// The encoding is standard protobuf: a tag varint (field number shifted left
// by three, ORed with the wire type), a length varint, and the raw payload.
// Output produced here decodes with any conforming protobuf implementation,
// and vice versa for length-delimited fields that fit the declared capacity.
//
// # Error Discipline
//
// Nothing in this library panics on an expected failure. Capacity overflow,
// transport exhaustion, and wire-type mismatches all surface as *errors.Error
// values carrying a Phase and Kind, and the first failure in a multi-step
// operation short-circuits the rest.
package wirebound
