package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestValidateBirthThreshold(t *testing.T) {
	cases := []struct {
		raw  string
		want int
		kind error
	}{
		{raw: "3", want: 3},
		{raw: "1", want: 1},
		{raw: "8", want: 8},
		{raw: " 4 ", want: 4},
		{raw: "0", kind: ErrOutOfRange},
		{raw: "9", kind: ErrOutOfRange},
		{raw: "-2", kind: ErrOutOfRange},
		{raw: "abc", kind: ErrNotAnInteger},
		{raw: "", kind: ErrNotAnInteger},
		{raw: "2.5", kind: ErrNotAnInteger},
	}
	for _, tc := range cases {
		got, err := ValidateBirthThreshold(tc.raw)
		if tc.kind != nil {
			if !errors.Is(err, tc.kind) {
				t.Errorf("ValidateBirthThreshold(%q) error = %v, expected %v", tc.raw, err, tc.kind)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidateBirthThreshold(%q) unexpected error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ValidateBirthThreshold(%q) = %d, expected %d", tc.raw, got, tc.want)
		}
	}
}

func TestValidateGridSize(t *testing.T) {
	cases := []struct {
		raw        string
		rows, cols int
		kind       error
	}{
		{raw: "5x5", rows: 5, cols: 5},
		{raw: "20x30", rows: 20, cols: 30},
		{raw: " 6 x 7 ", rows: 6, cols: 7},
		{raw: "4x10", kind: ErrTooSmall},
		{raw: "10x4", kind: ErrTooSmall},
		{raw: "-5x10", kind: ErrTooSmall},
		{raw: "abc", kind: ErrBadFormat},
		{raw: "", kind: ErrBadFormat},
		{raw: "5x5x5", kind: ErrBadFormat},
		{raw: "5*5", kind: ErrBadFormat},
		{raw: "ax5", kind: ErrBadFormat},
		{raw: "5x", kind: ErrBadFormat},
		{raw: "3689348814741910324x5", kind: ErrOutOfRange},
		{raw: "5x3689348814741910324", kind: ErrOutOfRange},
	}
	for _, tc := range cases {
		rows, cols, err := ValidateGridSize(tc.raw)
		if tc.kind != nil {
			if !errors.Is(err, tc.kind) {
				t.Errorf("ValidateGridSize(%q) error = %v, expected %v", tc.raw, err, tc.kind)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidateGridSize(%q) unexpected error: %v", tc.raw, err)
			continue
		}
		if rows != tc.rows || cols != tc.cols {
			t.Errorf("ValidateGridSize(%q) = (%d,%d), expected (%d,%d)", tc.raw, rows, cols, tc.rows, tc.cols)
		}
	}
}

func TestValidationErrorCarriesMessage(t *testing.T) {
	_, err := ValidateBirthThreshold("9")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Input != "9" {
		t.Fatalf("expected input 9, got %q", verr.Input)
	}
	if msg := UserMessage(err); !strings.Contains(msg, "between 1 and 8") {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := UserMessage(fmt.Errorf("options: %w", err)); msg != verr.Message() {
		t.Fatalf("wrapped error should yield %q, got %q", verr.Message(), msg)
	}
	if !strings.Contains(err.Error(), "birth threshold") {
		t.Fatalf("error should name the field, got %q", err.Error())
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.BirthThreshold() != 3 || c.Rows() != 20 || c.Cols() != 20 {
		t.Fatalf("unexpected defaults %v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.String() != "3 @ 20x20" {
		t.Fatalf("unexpected String() %q", c.String())
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	if _, err := New(0, 10, 10); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	if _, err := New(3, 4, 10); !errors.Is(err, ErrTooSmall) {
		t.Fatalf("expected too small, got %v", err)
	}
	if _, err := New(3, math.MaxInt/2, 5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range for an overflowing grid, got %v", err)
	}
	c, err := New(4, 5, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BirthThreshold() != 4 || c.Rows() != 5 || c.Cols() != 12 {
		t.Fatalf("unexpected config %v", c)
	}
}

func TestZeroConfigInvalid(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Fatal("zero Config must not validate")
	}
}
