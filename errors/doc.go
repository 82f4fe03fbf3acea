// Package errors provides structured error values for the wirebound codec.
//
// Errors are categorized by Phase (which codec operation failed) and Kind
// (what went wrong). Every fallible operation in the library returns one of
// these values explicitly; a nil error is the only success signal and no
// expected failure path panics.
//
// Match errors by kind, in any phase:
//
//	if errors.IsKind(err, errors.KindArrayFull) {
//	    // content did not fit the fixed capacity
//	}
//
// Or by phase and kind with the standard library:
//
//	target := &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindEndOfBuffer}
//	if stderrors.Is(err, target) { ... }
//
// All errors implement the standard error interface and support
// errors.Is/As and cause unwrapping.
package errors
