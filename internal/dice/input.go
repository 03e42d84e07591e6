package dice

import "strconv"

// FaceInput keeps the custom die's text field and its committed face count
// in sync. Text is what the user sees; Value is what a roll uses.
type FaceInput struct {
	Text  string
	Value int
}

// Change handles an edit while the field has focus. Text with anything other
// than decimal digits is rejected outright. Digits are always shown but only
// committed when they parse within [MinFaces, MaxFaces]. Empty text is shown
// without committing.
func (in *FaceInput) Change(text string) {
	if text == "" {
		in.Text = ""
		return
	}
	if !digitsOnly(text) {
		return
	}
	in.Text = text
	if n, err := strconv.Atoi(text); err == nil && n >= MinFaces && n <= MaxFaces {
		in.Value = n
	}
}

// Blur coerces empty or out-of-range text to the nearest bound once the
// field loses focus. In-range text leaves the last committed value alone.
func (in *FaceInput) Blur() {
	if in.Text == "" {
		in.commit(MinFaces)
		return
	}
	n, err := strconv.Atoi(in.Text)
	switch {
	case err != nil:
		// digits only, so the only failure left is overflow
		in.commit(MaxFaces)
	case n < MinFaces:
		in.commit(MinFaces)
	case n > MaxFaces:
		in.commit(MaxFaces)
	}
}

// Step moves the committed value by delta and resyncs the text.
func (in *FaceInput) Step(delta int) {
	in.commit(step(in.Value, delta, MinFaces, MaxFaces))
}

func (in *FaceInput) commit(v int) {
	in.Value = v
	in.Text = strconv.Itoa(v)
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
