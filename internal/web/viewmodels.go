package web

import (
	"strconv"

	"diceroller/internal/dice"
)

// PageViewModel is the data for the full page.
type PageViewModel struct {
	Title string
	Board BoardViewModel
}

// BoardViewModel is the data for the board fragment.
type BoardViewModel struct {
	Dice       []DieViewModel
	Rolling    bool
	CanRoll    bool // something selected and no roll pending
	HasResults bool
	Features   dice.Features
	Palette    []string
	PollMS     int64 // how long the rolling fragment waits before refetching
}

// DieViewModel is one die card. The Can* flags disable -/+ buttons at a bound.
type DieViewModel struct {
	dice.Die
	Label       string
	RollsText   string
	HasResult   bool
	ResultValue int

	CanDecCount bool
	CanIncCount bool
	CanDecMod   bool
	CanIncMod   bool
	CanDecFaces bool
	CanIncFaces bool
}

func (s *Server) boardView(b dice.Board) BoardViewModel {
	vm := BoardViewModel{
		Dice:       make([]DieViewModel, 0, len(b.Dice)),
		Rolling:    b.Rolling,
		CanRoll:    b.HasSelection() && !b.Rolling,
		HasResults: b.HasResults(),
		Features:   b.Features,
		Palette:    dice.Palette,
		PollMS:     s.roller().Delay.Milliseconds(),
	}
	for _, d := range b.Dice {
		vm.Dice = append(vm.Dice, dieView(d))
	}
	return vm
}

func dieView(d dice.Die) DieViewModel {
	v := DieViewModel{
		Die:         d,
		Label:       "D" + strconv.Itoa(d.Faces),
		CanDecCount: d.Count > dice.MinCount,
		CanIncCount: d.Count < dice.MaxCount,
		CanDecMod:   d.Modifier > dice.MinModifier,
		CanIncMod:   d.Modifier < dice.MaxModifier,
		CanDecFaces: d.Custom && d.Faces > dice.MinFaces,
		CanIncFaces: d.Custom && d.Faces < dice.MaxFaces,
	}
	if d.Result != nil {
		v.HasResult = true
		v.ResultValue = *d.Result
		v.RollsText = dice.FormatRolls(d.Rolls)
	}
	return v
}
