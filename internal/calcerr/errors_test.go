package calcerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"positive ok", Positive("area", 1), false},
		{"positive zero", Positive("area", 0), true},
		{"non-negative zero", NonNegative("skew", 0), false},
		{"non-negative below", NonNegative("skew", -0.1), true},
		{"angle zero", Angle("phi", 0), false},
		{"angle 89.9", Angle("phi", 89.9), false},
		{"angle 90", Angle("phi", 90), true},
		{"angle negative", Angle("phi", -5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", tt.err, tt.wantErr)
			}
		})
	}
}

func TestInputValidationErrorIsFieldTagged(t *testing.T) {
	err := fmt.Errorf("hydraulics: %w", Positive("manning_n", -1))

	var ive *InputValidationError
	if !errors.As(err, &ive) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if ive.Field != "manning_n" || ive.Value != -1 {
		t.Fatalf("got field %q value %g", ive.Field, ive.Value)
	}
}

func TestFirst(t *testing.T) {
	a := Positive("a", 0)
	b := Positive("b", 0)
	if got := First(nil, a, b); got != a {
		t.Fatalf("First returned %v, want %v", got, a)
	}
	if got := First(nil, nil); got != nil {
		t.Fatalf("First returned %v, want nil", got)
	}
}
