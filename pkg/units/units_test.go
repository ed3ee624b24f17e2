package units

import (
	"math"
	"testing"
)

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"455um", 0.455},
		{"30um", 0.030},
		{"0.5mm", 0.5},
		{"0.5 mm", 0.5},
		{"650um", 0.650},
		{"2cm", 20},
		{"1m", 1000},
		{"10nm", 1e-5},
		{"1mil", 0.0254},
		{"0.1in", 2.54},
		{"-20um", -0.020},
		{"2.5e-3m", 2.5},
		{"1.25", 1.25},
	}

	for _, tc := range cases {
		got, err := ParseLength(tc.in)
		if err != nil {
			t.Fatalf("ParseLength(%q) failed: %v", tc.in, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("ParseLength(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseLengthErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "12furlong", "um", "12 34"} {
		if _, err := ParseLength(in); err == nil {
			t.Fatalf("ParseLength(%q) should fail", in)
		}
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"+1", 1},
		{"-1", -1},
		{"0", 0},
		{"2", 2},
	}
	for _, tc := range cases {
		got, err := ParseNumber(tc.in)
		if err != nil {
			t.Fatalf("ParseNumber(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseNumber("1um"); err == nil {
		t.Fatal("ParseNumber with a unit suffix should fail")
	}
}
