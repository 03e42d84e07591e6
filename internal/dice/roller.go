package dice

import (
	"math/rand/v2"
	"time"
)

// DefaultDelay is how long a roll stays in the rolling state before results
// are committed, long enough for the dice animation to play.
const DefaultDelay = 500 * time.Millisecond

// Source is the randomness the roller consumes. IntN returns a value in [0, n).
type Source interface {
	IntN(n int) int
}

type randSource struct{}

func (randSource) IntN(n int) int { return rand.IntN(n) }

// RandomSource returns the default non-reproducible source. It is safe for
// concurrent use.
func RandomSource() Source { return randSource{} }

// Roller turns a board's selection into results.
type Roller struct {
	Source Source
	Delay  time.Duration
}

// NewRoller returns a roller with the default source and delay.
func NewRoller() *Roller {
	return &Roller{Source: RandomSource(), Delay: DefaultDelay}
}

// Roll returns count independent values in [1, faces], in generation order.
func Roll(src Source, faces, count int) []int {
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = src.IntN(faces) + 1
	}
	return rolls
}

// Sum adds up rolls plus modifier.
func Sum(rolls []int, modifier int) int {
	total := modifier
	for _, r := range rolls {
		total += r
	}
	return total
}

// Start moves the board from idle to rolling. It reports false, leaving the
// board untouched, when nothing is selected or a roll is already pending.
func (r *Roller) Start(b *Board) bool {
	if b.Rolling || !b.HasSelection() {
		return false
	}
	b.Rolling = true
	return true
}

// Commit rolls every selected die, clears every unselected one and returns
// the board to idle. The selection at commit time is what gets rolled.
func (r *Roller) Commit(b *Board) {
	src := r.Source
	if src == nil {
		src = RandomSource()
	}
	for i := range b.Dice {
		d := b.Dice[i]
		if d.Selected {
			d.Rolls = Roll(src, d.Faces, d.Count)
			total := Sum(d.Rolls, d.Modifier)
			d.Result = &total
		} else {
			d.Rolls = nil
			d.Result = nil
		}
		b.Dice[i] = d
	}
	b.Rolling = false
}

// RollNow is Start and Commit back to back, for callers with no animation to
// wait on.
func (r *Roller) RollNow(b *Board) bool {
	if !r.Start(b) {
		return false
	}
	r.Commit(b)
	return true
}
