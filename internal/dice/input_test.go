package dice

import (
	"math"
	"testing"
)

func TestFaceInput_Change(t *testing.T) {
	tests := []struct {
		name      string
		start     FaceInput
		text      string
		wantText  string
		wantValue int
	}{
		{"digits in range commit", FaceInput{"1", 1}, "15", "15", 15},
		{"letters rejected", FaceInput{"15", 15}, "abc", "15", 15},
		{"mixed rejected", FaceInput{"15", 15}, "1a", "15", 15},
		{"sign rejected", FaceInput{"15", 15}, "-3", "15", 15},
		{"empty shown, not committed", FaceInput{"15", 15}, "", "", 15},
		{"zero shown, not committed", FaceInput{"15", 15}, "0", "0", 15},
		{"too big shown, not committed", FaceInput{"15", 15}, "10000", "10000", 15},
		{"upper bound commits", FaceInput{"15", 15}, "9999", "9999", 9999},
		{"leading zeros commit", FaceInput{"15", 15}, "007", "007", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.start
			in.Change(tt.text)
			if in.Text != tt.wantText || in.Value != tt.wantValue {
				t.Errorf("Change(%q): expected (%q, %d), got (%q, %d)", tt.text, tt.wantText, tt.wantValue, in.Text, in.Value)
			}
		})
	}
}

func TestFaceInput_Blur(t *testing.T) {
	tests := []struct {
		name      string
		start     FaceInput
		wantText  string
		wantValue int
	}{
		{"empty becomes min", FaceInput{"", 42}, "1", 1},
		{"zero becomes min", FaceInput{"0", 42}, "1", 1},
		{"too big becomes max", FaceInput{"12345", 42}, "9999", 9999},
		{"overflow becomes max", FaceInput{"99999999999999999999999", 42}, "9999", 9999},
		{"in range keeps committed", FaceInput{"42", 42}, "42", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.start
			in.Blur()
			if in.Text != tt.wantText || in.Value != tt.wantValue {
				t.Errorf("Blur: expected (%q, %d), got (%q, %d)", tt.wantText, tt.wantValue, in.Text, in.Value)
			}
		})
	}
}

func TestFaceInput_Step(t *testing.T) {
	in := FaceInput{Text: "", Value: 1}
	in.Step(-1)
	if in.Value != 1 || in.Text != "1" {
		t.Errorf("Expected (\"1\", 1), got (%q, %d)", in.Text, in.Value)
	}
	in.Step(1)
	if in.Value != 2 || in.Text != "2" {
		t.Errorf("Expected (\"2\", 2), got (%q, %d)", in.Text, in.Value)
	}

	tests := []struct {
		start, delta, want int
	}{
		{10, math.MaxInt, MaxFaces},
		{10, math.MinInt, MinFaces},
		{MaxFaces, math.MaxInt, MaxFaces},
		{MinFaces, math.MinInt, MinFaces},
	}
	for _, tt := range tests {
		in := FaceInput{Value: tt.start}
		in.Step(tt.delta)
		if in.Value != tt.want {
			t.Errorf("Step %d%+d: expected %d, got %d", tt.start, tt.delta, tt.want, in.Value)
		}
	}
}
