package dice

import (
	"errors"
	"testing"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		in   string
		want Notation
	}{
		{"d20", Notation{Count: 1, Faces: 20}},
		{"2d6", Notation{Count: 2, Faces: 6}},
		{"2d6+3", Notation{Count: 2, Faces: 6, Modifier: 3}},
		{" 10D100-20 ", Notation{Count: 10, Faces: 100, Modifier: -20}},
		{"1d9999", Notation{Count: 1, Faces: 9999}},
	}
	for _, tt := range tests {
		got, err := ParseNotation(tt.in)
		if err != nil {
			t.Errorf("ParseNotation(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNotation(%q): expected %+v, got %+v", tt.in, tt.want, got)
		}
	}
}

func TestParseNotation_Invalid(t *testing.T) {
	for _, in := range []string{"", "6", "xd6", "2d", "2dx", "11d6", "0d6", "1d0", "1d10000", "1d6+21", "1d6-21", "1d6+x"} {
		if _, err := ParseNotation(in); !errors.Is(err, ErrBadNotation) {
			t.Errorf("ParseNotation(%q): expected ErrBadNotation, got %v", in, err)
		}
	}
}

func TestNotationString(t *testing.T) {
	if s := (Notation{Count: 2, Faces: 6, Modifier: 3}).String(); s != "2d6+3" {
		t.Errorf("Expected 2d6+3, got %q", s)
	}
	if s := (Notation{Count: 1, Faces: 20, Modifier: -1}).String(); s != "1d20-1" {
		t.Errorf("Expected 1d20-1, got %q", s)
	}
	if s := (Notation{Count: 3, Faces: 8}).String(); s != "3d8" {
		t.Errorf("Expected 3d8, got %q", s)
	}
}

func TestRollNotation(t *testing.T) {
	n := Notation{Count: 2, Faces: 6, Modifier: 3}
	res := RollNotation(&seqSource{vals: []int{3, 1}}, n)
	if res.Total != 9 {
		t.Errorf("Expected total 9, got %d", res.Total)
	}
	if res.String() != "2d6+3: [4 + 2] = 9" {
		t.Errorf("Unexpected string %q", res.String())
	}
}

func TestFormatRolls(t *testing.T) {
	if s := FormatRolls(nil); s != "" {
		t.Errorf("Expected empty, got %q", s)
	}
	if s := FormatRolls([]int{5}); s != "5" {
		t.Errorf("Expected 5, got %q", s)
	}
	if s := FormatRolls([]int{1, 2, 3}); s != "[1 + 2 + 3]" {
		t.Errorf("Expected [1 + 2 + 3], got %q", s)
	}
}
