package dice

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"diceroller/internal/errs"
)

// Distribution summarizes repeated rolls of one notation.
type Distribution struct {
	Notation Notation
	Trials   int
	Mean     float64
	StdDev   float64
	Min      int
	Max      int
	// Expected is the theoretical mean, Count*(Faces+1)/2 + Modifier.
	Expected float64
}

// Simulate rolls n trials times. progress, when non-nil, is called once per
// trial.
func Simulate(src Source, n Notation, trials int, progress func()) (Distribution, error) {
	if trials < 2 {
		return Distribution{}, errs.Warnf("need at least 2 trials, got %d", trials)
	}
	totals := make([]float64, trials)
	lo, hi := math.MaxInt, math.MinInt
	for i := range totals {
		t := RollNotation(src, n).Total
		totals[i] = float64(t)
		lo, hi = min(lo, t), max(hi, t)
		if progress != nil {
			progress()
		}
	}
	mean, std := stat.MeanStdDev(totals, nil)
	return Distribution{
		Notation: n,
		Trials:   trials,
		Mean:     mean,
		StdDev:   std,
		Min:      lo,
		Max:      hi,
		Expected: float64(n.Count)*float64(n.Faces+1)/2 + float64(n.Modifier),
	}, nil
}
