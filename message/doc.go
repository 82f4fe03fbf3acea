// Package message aggregates numbered fields into a serializable unit.
//
// A Message is a dynamic field set: fields are registered once under their
// protobuf numbers, then encoding walks them in order through the Field
// interface and decoding dispatches incoming tags back to them. Unknown
// field numbers in the input are skipped according to their wire type, the
// way protobuf consumers are expected to tolerate schema growth.
//
//	msg := message.New().
//	    Add(1, "name", name, false).
//	    Add(2, "payload", payload, true)
//
//	out := buffer.New(128)
//	if err := msg.Serialize(out); err != nil { ... }
//
// Decoding failures carry the offending field number in the returned
// *errors.Error. The package logs skipped fields at debug level through a
// zap logger that is a no-op unless SetLogger is called.
package message
