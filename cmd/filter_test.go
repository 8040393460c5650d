package cmd

import (
	"errors"
	"testing"

	"github.com/menulens/menulens-cli/internal/stats"
)

func TestMakeSpecComparison(t *testing.T) {
	spec, err := makeSpec("fat", ">", "10", "", "")
	if err != nil {
		t.Fatalf("makeSpec: %v", err)
	}
	if spec.Column != "fat" || spec.Op != stats.OpGreater || spec.Value != 10 {
		t.Errorf("unexpected spec: %+v", spec)
	}
}

func TestMakeSpecBetween(t *testing.T) {
	spec, err := makeSpec("calories", "between", "", "100", "250")
	if err != nil {
		t.Fatalf("makeSpec: %v", err)
	}
	if spec.Op != stats.OpBetween || spec.Low != 100 || spec.High != 250 {
		t.Errorf("unexpected spec: %+v", spec)
	}
}

func TestMakeSpecInvalidOperator(t *testing.T) {
	_, err := makeSpec("fat", ">=", "10", "", "")
	var verr *stats.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if verr.Field != "operator" {
		t.Errorf("Field = %q, want operator", verr.Field)
	}
}

func TestMakeSpecBadNumbers(t *testing.T) {
	cases := []struct {
		name                 string
		op, value, low, high string
		field                string
	}{
		{"value not numeric", ">", "abc", "", "", "value"},
		{"min missing", "between", "", "", "250", "min value"},
		{"max not numeric", "between", "", "100", "lots", "max value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := makeSpec("fat", tc.op, tc.value, tc.low, tc.high)
			var verr *stats.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestParseNumberTrimsSpace(t *testing.T) {
	v, err := parseNumber("value", "  3.5\t")
	if err != nil {
		t.Fatalf("parseNumber: %v", err)
	}
	if v != 3.5 {
		t.Errorf("v = %v, want 3.5", v)
	}
}
