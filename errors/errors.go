package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which codec operation the error occurred in.
type Phase string

const (
	PhaseEncode Phase = "encode" // field to wire bytes
	PhaseDecode Phase = "decode" // wire bytes to field
	PhaseAssign Phase = "assign" // bulk content assignment
	PhaseAccess Phase = "access" // indexed element access
)

// Kind categorizes the error.
type Kind string

const (
	KindIndexOutOfBound Kind = "index_out_of_bound" // checked read past the logical length
	KindArrayFull       Kind = "array_full"         // content exceeds the field's fixed capacity
	KindBufferFull      Kind = "buffer_full"        // output transport cannot take the bytes
	KindEndOfBuffer     Kind = "end_of_buffer"      // input transport exhausted mid-value
	KindInvalidWireType Kind = "invalid_wiretype"   // wire type does not match the field
	KindVarintOverflow  Kind = "varint_overflow"    // varint wider than the target integer
)

// Error is the structured error type used throughout the codec.
// A nil error means success; there is no success sentinel.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string

	// FieldNumber is the protobuf field number the failure belongs to,
	// or zero when the operation had no field context.
	FieldNumber uint32
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.FieldNumber != 0 {
		fmt.Fprintf(&b, " (field %d)", e.FieldNumber)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two *Error values match on
// Phase and Kind; a target with an empty Phase matches any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && e.Phase != t.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// WithField returns a copy of the error annotated with a field number.
// Useful for a containing message attributing a propagated failure.
func (e *Error) WithField(number uint32) *Error {
	dup := *e
	dup.FieldNumber = number
	return &dup
}

// IsKind reports whether err is an *Error of the given kind, in any phase.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}

// Convenience constructors for the codec's failure cases.

// IndexOutOfBound creates an error for a checked read past the logical length.
func IndexOutOfBound(index, length int) *Error {
	return &Error{
		Phase:  PhaseAccess,
		Kind:   KindIndexOutOfBound,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
	}
}

// ArrayFull creates an error for content that exceeds a field's capacity.
func ArrayFull(phase Phase, need, capacity int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArrayFull,
		Detail: fmt.Sprintf("%d bytes exceed capacity %d", need, capacity),
	}
}

// BufferFull creates an error for an output transport with too little room.
func BufferFull(need, available int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindBufferFull,
		Detail: fmt.Sprintf("need %d bytes, %d available", need, available),
	}
}

// EndOfBuffer creates an error for an input transport that ran out before
// the declared byte count was read.
func EndOfBuffer(got, want int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindEndOfBuffer,
		Detail: fmt.Sprintf("input exhausted after %d of %d bytes", got, want),
	}
}

// InvalidWireType creates an error for a type-checked deserialize that
// received the wrong wire type.
func InvalidWireType(got string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidWireType,
		Detail: fmt.Sprintf("expected length-delimited, got %s", got),
	}
}

// VarintOverflow creates an error for a varint exceeding the target width.
func VarintOverflow(bits int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindVarintOverflow,
		Detail: fmt.Sprintf("varint exceeds %d bits", bits),
	}
}

// Wrap wraps an existing error with phase and kind context.
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
