package validation

import (
	"strings"
	"testing"

	skerrors "github.com/streamkit-go/streamkit/pkg/common/errors"
)

func TestNotNil(t *testing.T) {
	if err := NotNil("stream", "source", nil); err == nil {
		t.Fatal("expected error for nil value")
	} else if !skerrors.IsKind(err, skerrors.KindValidation) {
		t.Errorf("expected validation kind, got %v", err)
	}

	if err := NotNil("stream", "source", struct{}{}); err != nil {
		t.Errorf("unexpected error for non-nil value: %v", err)
	}
}

func TestNotEmpty(t *testing.T) {
	err := NotEmpty("fscollect", "root", "")
	if err == nil {
		t.Fatal("expected error for empty string")
	}
	if !strings.Contains(err.Error(), "fscollect") || !strings.Contains(err.Error(), "root") {
		t.Errorf("error message should name module and field, got %q", err.Error())
	}

	if err := NotEmpty("fscollect", "root", "/tmp"); err != nil {
		t.Errorf("unexpected error for non-empty string: %v", err)
	}
}

func TestPositive(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"positive", 1, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Positive("stream", "buffer", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Positive(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestNonNegative(t *testing.T) {
	if err := NonNegative("stream", "skip", 0); err != nil {
		t.Errorf("unexpected error for zero: %v", err)
	}
	if err := NonNegative("stream", "skip", -1); err == nil {
		t.Error("expected error for negative value")
	}
}
