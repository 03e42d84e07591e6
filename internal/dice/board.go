package dice

import (
	"slices"
	"strconv"

	"diceroller/internal/errs"
)

var (
	ErrUnknownDie = errs.NewWarn("unknown die")
	ErrNotCustom  = errs.NewWarn("die has fixed faces")
	ErrEmptyColor = errs.NewWarn("color must not be empty")
	ErrFeatureOff = errs.NewWarn("feature disabled")
)

// NewBoard builds a board in its initial state from a dice set. The custom
// die is dropped when the Custom feature is off.
func NewBoard(set *Set, f Features) Board {
	if set == nil {
		set = DefaultSet()
	}
	b := Board{Features: f, Dice: make([]Die, 0, len(set.Dice))}
	for _, sp := range set.Dice {
		if sp.Custom && !f.Custom {
			continue
		}
		d := Die{
			ID:           sp.ID,
			Faces:        sp.Faces,
			Custom:       sp.Custom,
			Count:        MinCount,
			Color:        sp.Color,
			DefaultColor: sp.Color,
		}
		if d.Custom {
			d.Faces = clamp(d.Faces, MinFaces, MaxFaces)
			d.FaceText = strconv.Itoa(d.Faces)
		}
		b.Dice = append(b.Dice, d)
	}
	return b
}

// Clone returns a deep copy, so the copy can be mutated while readers still
// hold the original.
func (b Board) Clone() Board {
	c := b
	c.Dice = make([]Die, len(b.Dice))
	for i, d := range b.Dice {
		d.Rolls = slices.Clone(d.Rolls)
		if d.Result != nil {
			r := *d.Result
			d.Result = &r
		}
		c.Dice[i] = d
	}
	return c
}

// Die returns the die with the given id.
func (b *Board) Die(id string) (Die, error) {
	i := b.index(id)
	if i < 0 {
		return Die{}, ErrUnknownDie.With(id)
	}
	return b.Dice[i], nil
}

func (b *Board) index(id string) int {
	for i := range b.Dice {
		if b.Dice[i].ID == id {
			return i
		}
	}
	return -1
}

// apply replaces the die with the given id by fn's result.
func (b *Board) apply(id string, fn func(d Die) (Die, error)) error {
	i := b.index(id)
	if i < 0 {
		return ErrUnknownDie.With(id)
	}
	d, err := fn(b.Dice[i])
	if err != nil {
		return err
	}
	b.Dice[i] = d
	return nil
}

// Toggle flips whether the die takes part in the next roll.
func (b *Board) Toggle(id string) error {
	return b.apply(id, func(d Die) (Die, error) {
		d.Selected = !d.Selected
		return d, nil
	})
}

// AdjustCount moves the count by delta, saturating at the bounds.
func (b *Board) AdjustCount(id string, delta int) error {
	return b.apply(id, func(d Die) (Die, error) {
		d.Count = step(d.Count, delta, MinCount, MaxCount)
		return d, nil
	})
}

// AdjustModifier moves the modifier by delta, saturating at the bounds.
func (b *Board) AdjustModifier(id string, delta int) error {
	if !b.Features.Modifier {
		return ErrFeatureOff.With("modifier")
	}
	return b.apply(id, func(d Die) (Die, error) {
		d.Modifier = step(d.Modifier, delta, MinModifier, MaxModifier)
		return d, nil
	})
}

// SetCustomFaces sets the face count of the custom die, clamped to
// [MinFaces, MaxFaces]. The display text follows the committed value.
func (b *Board) SetCustomFaces(id string, value int) error {
	return b.apply(id, func(d Die) (Die, error) {
		if !d.Custom {
			return d, ErrNotCustom.With(id)
		}
		d.Faces = clamp(value, MinFaces, MaxFaces)
		d.FaceText = strconv.Itoa(d.Faces)
		return d, nil
	})
}

// EditCustomFaces feeds raw text from the custom die's input field through
// FaceInput. With blur set the field has lost focus and out-of-range text is
// coerced to the nearest bound.
func (b *Board) EditCustomFaces(id, text string, blur bool) error {
	return b.apply(id, func(d Die) (Die, error) {
		if !d.Custom {
			return d, ErrNotCustom.With(id)
		}
		in := FaceInput{Text: d.FaceText, Value: d.Faces}
		in.Change(text)
		if blur {
			in.Blur()
		}
		d.Faces, d.FaceText = in.Value, in.Text
		return d, nil
	})
}

// StepCustomFaces is the -/+ control next to the custom value field.
func (b *Board) StepCustomFaces(id string, delta int) error {
	return b.apply(id, func(d Die) (Die, error) {
		if !d.Custom {
			return d, ErrNotCustom.With(id)
		}
		in := FaceInput{Text: d.FaceText, Value: d.Faces}
		in.Step(delta)
		d.Faces, d.FaceText = in.Value, in.Text
		return d, nil
	})
}

// SetColor assigns a display color. Any non-empty token is accepted.
func (b *Board) SetColor(id, color string) error {
	if !b.Features.Color {
		return ErrFeatureOff.With("color")
	}
	if color == "" {
		return ErrEmptyColor.With(id)
	}
	return b.apply(id, func(d Die) (Die, error) {
		d.Color = color
		return d, nil
	})
}

// ResetAll puts every die back to its initial configuration. Colors are left
// alone; see ResetColors.
func (b *Board) ResetAll() {
	for i := range b.Dice {
		d := b.Dice[i]
		d.Selected = false
		d.Count = MinCount
		d.Modifier = 0
		d.Rolls = nil
		d.Result = nil
		b.Dice[i] = d
	}
}

// ResetColors restores each die's default color.
func (b *Board) ResetColors() {
	for i := range b.Dice {
		b.Dice[i].Color = b.Dice[i].DefaultColor
	}
}

// HasSelection reports whether any die is selected.
func (b *Board) HasSelection() bool {
	return slices.ContainsFunc(b.Dice, func(d Die) bool { return d.Selected })
}

// HasResults reports whether any die holds a result.
func (b *Board) HasResults() bool {
	return slices.ContainsFunc(b.Dice, func(d Die) bool { return d.Result != nil })
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// step moves v in [lo, hi] by delta and saturates. delta is bounded to the
// span first so v+delta cannot overflow.
func step(v, delta, lo, hi int) int {
	return clamp(v+clamp(delta, lo-hi, hi-lo), lo, hi)
}
