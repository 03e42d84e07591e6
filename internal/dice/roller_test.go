package dice

import (
	"testing"
)

// seqSource returns its values in order, wrapping around. Each value must
// already be in [0, n) for the n it is asked for.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func TestRoll_Range(t *testing.T) {
	src := RandomSource()
	for _, f := range append([]int{1, 9999}, StandardFaces...) {
		for c := MinCount; c <= MaxCount; c++ {
			rolls := Roll(src, f, c)
			if len(rolls) != c {
				t.Fatalf("d%d x%d: expected %d rolls, got %d", f, c, c, len(rolls))
			}
			for _, r := range rolls {
				if r < 1 || r > f {
					t.Errorf("d%d: roll %d out of range", f, r)
				}
			}
		}
	}
}

func TestCommit_ResultIsSumPlusModifier(t *testing.T) {
	b := NewBoard(DefaultSet(), AllFeatures())
	_ = b.Toggle("d6")
	_ = b.AdjustCount("d6", 1)
	_ = b.AdjustModifier("d6", 3)

	r := &Roller{Source: &seqSource{vals: []int{3, 1}}}
	if !r.Start(&b) {
		t.Fatal("Expected Start to succeed")
	}
	if !b.Rolling {
		t.Error("Expected board to be rolling")
	}
	r.Commit(&b)

	d, _ := b.Die("d6")
	if len(d.Rolls) != 2 || d.Rolls[0] != 4 || d.Rolls[1] != 2 {
		t.Fatalf("Expected rolls [4 2], got %v", d.Rolls)
	}
	if d.Result == nil || *d.Result != 9 {
		t.Errorf("Expected result 9, got %v", d.Result)
	}
	if b.Rolling {
		t.Error("Expected board idle after commit")
	}
}

func TestStart_NoSelectionIsNoop(t *testing.T) {
	b := NewBoard(DefaultSet(), AllFeatures())
	before := b.Clone()
	r := NewRoller()
	if r.Start(&b) {
		t.Error("Expected Start to refuse with nothing selected")
	}
	if r.RollNow(&b) {
		t.Error("Expected RollNow to refuse with nothing selected")
	}
	if b.Rolling {
		t.Error("Expected board to stay idle")
	}
	for i := range b.Dice {
		if b.Dice[i].Result != nil || len(b.Dice[i].Rolls) != len(before.Dice[i].Rolls) {
			t.Errorf("%s changed on no-op roll", b.Dice[i].ID)
		}
	}
}

func TestStart_RefusedWhileRolling(t *testing.T) {
	b := NewBoard(DefaultSet(), AllFeatures())
	_ = b.Toggle("d8")
	r := NewRoller()
	if !r.Start(&b) {
		t.Fatal("Expected first Start to succeed")
	}
	if r.Start(&b) {
		t.Error("Expected second Start to be refused while rolling")
	}
}

func TestCommit_DeselectedDieIsCleared(t *testing.T) {
	b := NewBoard(DefaultSet(), AllFeatures())
	_ = b.Toggle("d20")
	_ = b.Toggle("d4")
	r := NewRoller()
	r.RollNow(&b)

	d, _ := b.Die("d20")
	if d.Result == nil {
		t.Fatal("Expected d20 to have a result")
	}

	_ = b.Toggle("d20")
	r.RollNow(&b)

	d, _ = b.Die("d20")
	if d.Result != nil || len(d.Rolls) != 0 {
		t.Errorf("Expected d20 cleared after deselect and reroll, got rolls=%v result=%v", d.Rolls, d.Result)
	}
	d4, _ := b.Die("d4")
	if d4.Result == nil || len(d4.Rolls) != 1 {
		t.Errorf("Expected d4 rolled, got %+v", d4)
	}
}

func TestCommit_UsesSelectionAtCommitTime(t *testing.T) {
	b := NewBoard(DefaultSet(), AllFeatures())
	_ = b.Toggle("d10")
	r := NewRoller()
	r.Start(&b)
	_ = b.Toggle("d12")
	_ = b.AdjustCount("d12", 2)
	r.Commit(&b)

	d, _ := b.Die("d12")
	if len(d.Rolls) != 3 || d.Result == nil {
		t.Errorf("Expected d12 rolled 3 times, got %v", d.Rolls)
	}
}

func TestCommit_InvariantsAcrossConfigs(t *testing.T) {
	b := NewBoard(DefaultSet(), AllFeatures())
	r := NewRoller()
	for _, d := range b.Dice {
		_ = b.Toggle(d.ID)
	}
	_ = b.SetCustomFaces(CustomID, 37)
	for round := 0; round < 50; round++ {
		for _, d := range b.Dice {
			_ = b.AdjustCount(d.ID, round%3-1)
			_ = b.AdjustModifier(d.ID, round%5-2)
		}
		r.RollNow(&b)
		for _, d := range b.Dice {
			if len(d.Rolls) != d.Count {
				t.Fatalf("%s: expected %d rolls, got %d", d.ID, d.Count, len(d.Rolls))
			}
			for _, v := range d.Rolls {
				if v < 1 || v > d.Faces {
					t.Fatalf("%s: roll %d outside [1, %d]", d.ID, v, d.Faces)
				}
			}
			if d.Result == nil || *d.Result != Sum(d.Rolls, d.Modifier) {
				t.Fatalf("%s: result %v is not sum %v + %d", d.ID, d.Result, d.Rolls, d.Modifier)
			}
		}
	}
}
