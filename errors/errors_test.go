package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:       PhaseDecode,
				Kind:        KindArrayFull,
				FieldNumber: 4,
				Detail:      "12 bytes exceed capacity 8",
			},
			contains: []string{"[decode]", "array_full", "field 4", "12 bytes exceed capacity 8"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseEncode,
				Kind:  KindBufferFull,
			},
			contains: []string{"[encode]", "buffer_full"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindEndOfBuffer,
				Detail: "input exhausted",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[decode]", "end_of_buffer", "input exhausted", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindEndOfBuffer,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseAssign,
		Kind:  KindArrayFull,
	}

	if !err.Is(&Error{Phase: PhaseAssign, Kind: KindArrayFull}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindArrayFull}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseAssign, Kind: KindBufferFull}) {
		t.Error("Is should not match different kind")
	}

	// Empty phase in the target matches any phase.
	if !err.Is(&Error{Kind: KindArrayFull}) {
		t.Error("Is should match kind-only target")
	}

	target := &Error{Phase: PhaseAssign, Kind: KindArrayFull}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestIsKind(t *testing.T) {
	if !IsKind(ArrayFull(PhaseDecode, 10, 4), KindArrayFull) {
		t.Error("IsKind should match ArrayFull")
	}
	if IsKind(ArrayFull(PhaseDecode, 10, 4), KindBufferFull) {
		t.Error("IsKind should not match a different kind")
	}
	if IsKind(errors.New("plain"), KindArrayFull) {
		t.Error("IsKind should not match a plain error")
	}
	if IsKind(nil, KindArrayFull) {
		t.Error("IsKind should not match nil")
	}
}

func TestWithField(t *testing.T) {
	base := BufferFull(8, 2)
	annotated := base.WithField(7)

	if annotated.FieldNumber != 7 {
		t.Errorf("FieldNumber = %d, want 7", annotated.FieldNumber)
	}
	if base.FieldNumber != 0 {
		t.Error("WithField mutated the original error")
	}
	if !errors.Is(annotated, &Error{Phase: PhaseEncode, Kind: KindBufferFull}) {
		t.Error("annotated error lost its phase/kind identity")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"IndexOutOfBound", IndexOutOfBound(5, 3), PhaseAccess, KindIndexOutOfBound},
		{"ArrayFull", ArrayFull(PhaseAssign, 10, 4), PhaseAssign, KindArrayFull},
		{"BufferFull", BufferFull(16, 3), PhaseEncode, KindBufferFull},
		{"EndOfBuffer", EndOfBuffer(2, 9), PhaseDecode, KindEndOfBuffer},
		{"InvalidWireType", InvalidWireType("varint"), PhaseDecode, KindInvalidWireType},
		{"VarintOverflow", VarintOverflow(35), PhaseDecode, KindVarintOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Detail == "" {
				t.Error("Detail should not be empty")
			}
		})
	}
}
