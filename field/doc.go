// Package field implements bounded protobuf fields: variable-length
// content held inside storage whose capacity is fixed at construction.
//
// # Field Kinds
//
//	Bytes   opaque byte payloads (protobuf bytes)
//	Text    character payloads with C-string conveniences (protobuf string)
//
// Both satisfy the Field interface, which is how a containing message
// drives heterogeneous fields without knowing their concrete types, and
// the Viewer contract, which makes assignment work across fields of
// different capacities.
//
// # Memory Model
//
// A field owns exactly one fixed-size backing array, allocated once by
// New* or supplied by the caller through Wrap*. Nothing a field does after
// construction allocates (Text.String is the documented exception). The
// logical length moves within [0, capacity]; the storage itself never
// moves or resizes. Content past the logical length is only guaranteed to
// be zero immediately after construction or Clear.
//
// # Access Tiers
//
// Indexed access comes in two deliberate tiers. At and Slot clamp an
// out-of-range index to the last slot and always succeed; Slot also grows
// the logical length, so content can be built by indexed writes alone.
// Load is the strict tier: it errors on any index at or past the logical
// length. Both tiers are part of the contract; neither replaces the other.
//
// # Wire Contract
//
// Fields encode as standard protobuf length-delimited entries: tag varint,
// length varint, raw payload. An optional field with empty content still
// emits its tag and a zero length. Decoding enforces the capacity before
// touching existing content, but a transport that dies mid-payload leaves
// the field partially overwritten; see Bytes.Deserialize.
package field
