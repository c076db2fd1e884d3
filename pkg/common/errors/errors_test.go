package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestError_Error(t *testing.T) {
	cause := errors.New("underlying failure")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  &Error{Kind: KindIO},
			want: "io",
		},
		{
			name: "kind and message",
			err:  &Error{Kind: KindValidation, Message: "root cannot be empty"},
			want: "validation: root cannot be empty",
		},
		{
			name: "kind and cause",
			err:  &Error{Kind: KindIO, Cause: cause},
			want: "io: underlying failure",
		},
		{
			name: "kind, message and cause",
			err:  &Error{Kind: KindIO, Message: "read directory", Cause: cause},
			want: "io: read directory: underlying failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := New(KindIO, "stat root").WithCause(cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped cause should be visible through errors.Is")
	}
}

func TestError_Is_KindMatching(t *testing.T) {
	err := New(KindIO, "read directory /tmp/x")

	if !errors.Is(err, &Error{Kind: KindIO}) {
		t.Error("kind sentinel should match any error of that kind")
	}
	if errors.Is(err, &Error{Kind: KindValidation}) {
		t.Error("different kinds should not match")
	}
	if !errors.Is(err, &Error{Kind: KindIO, Message: "read directory /tmp/x"}) {
		t.Error("matching kind and message should match")
	}
	if errors.Is(err, &Error{Kind: KindIO, Message: "other message"}) {
		t.Error("same kind with different message should not match")
	}
}

func TestIsKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		want bool
	}{
		{"direct match", New(KindIO, "boom"), KindIO, true},
		{"wrapped match", fmt.Errorf("outer: %w", New(KindIO, "boom")), KindIO, true},
		{"kind mismatch", New(KindValidation, "bad"), KindIO, false},
		{"plain error", errors.New("boom"), KindIO, false},
		{"nil error", nil, KindIO, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("outer: %w", New(KindValidation, "bad")))
	if !ok || kind != KindValidation {
		t.Errorf("KindOf() = (%q, %v), want (%q, true)", kind, ok, KindValidation)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf should report false for plain errors")
	}
}

func TestClass(t *testing.T) {
	parse := NewClass("parse")

	if parse.Kind() != "parse" {
		t.Errorf("Kind() = %q, want %q", parse.Kind(), "parse")
	}

	err := parse.New("unexpected token")
	if err.Kind != "parse" {
		t.Errorf("Kind = %q, want %q", err.Kind, "parse")
	}
	if err.Message != "unexpected token" {
		t.Errorf("Message = %q, want %q", err.Message, "unexpected token")
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}

	// Class membership and generic error checks.
	if !parse.Is(err) {
		t.Error("class should recognize its own errors")
	}
	if NewClass("codec").Is(err) {
		t.Error("other classes should not recognize foreign errors")
	}
	var asErr *Error
	if !errors.As(fmt.Errorf("wrap: %w", err), &asErr) {
		t.Error("class errors should be recognizable as the shared failure type")
	}
}

func TestClass_Wrap(t *testing.T) {
	ioClass := NewClass(KindIO)
	cause := errors.New("permission denied")

	err := ioClass.Wrap("open config", cause)
	if err.Cause != cause {
		t.Errorf("Cause = %v, want stored as-is", err.Cause)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be visible through errors.Is")
	}
	if !ioClass.Is(fmt.Errorf("retry failed: %w", err)) {
		t.Error("class membership should survive further wrapping")
	}
}

func TestClass_Newf(t *testing.T) {
	c := NewClass(KindValidation)
	err := c.Newf("field %s out of range: %d", "depth", 42)

	want := "field depth out of range: 42"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}
