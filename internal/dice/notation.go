package dice

import (
	"fmt"
	"strconv"
	"strings"

	"diceroller/internal/errs"
)

var ErrBadNotation = errs.NewWarn("bad dice notation")

// Notation is a parsed "NdF+M" expression.
type Notation struct {
	Count    int
	Faces    int
	Modifier int
}

func (n Notation) String() string {
	s := fmt.Sprintf("%dd%d", n.Count, n.Faces)
	if n.Modifier != 0 {
		s += fmt.Sprintf("%+d", n.Modifier)
	}
	return s
}

// ParseNotation parses "NdF", "dF", "NdF+M" or "NdF-M". Values must sit within
// the same bounds the board enforces; nothing is clamped here.
func ParseNotation(s string) (Notation, error) {
	raw := s
	s = strings.ToLower(strings.TrimSpace(s))
	n := Notation{Count: 1}

	d := strings.IndexByte(s, 'd')
	if d < 0 {
		return Notation{}, ErrBadNotation.With(raw)
	}
	if d > 0 {
		c, err := strconv.Atoi(s[:d])
		if err != nil {
			return Notation{}, ErrBadNotation.With(raw)
		}
		n.Count = c
	}
	rest := s[d+1:]

	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		m, err := strconv.Atoi(rest[i:])
		if err != nil {
			return Notation{}, ErrBadNotation.With(raw)
		}
		n.Modifier = m
		rest = rest[:i]
	}
	f, err := strconv.Atoi(rest)
	if err != nil {
		return Notation{}, ErrBadNotation.With(raw)
	}
	n.Faces = f

	switch {
	case n.Count < MinCount || n.Count > MaxCount:
		return Notation{}, ErrBadNotation.With(fmt.Sprintf("%s: count must be in [%d, %d]", raw, MinCount, MaxCount))
	case n.Faces < MinFaces || n.Faces > MaxFaces:
		return Notation{}, ErrBadNotation.With(fmt.Sprintf("%s: faces must be in [%d, %d]", raw, MinFaces, MaxFaces))
	case n.Modifier < MinModifier || n.Modifier > MaxModifier:
		return Notation{}, ErrBadNotation.With(fmt.Sprintf("%s: modifier must be in [%d, %d]", raw, MinModifier, MaxModifier))
	}
	return n, nil
}

// RollResult is one evaluated notation.
type RollResult struct {
	Notation Notation
	Rolls    []int
	Total    int
}

func (r RollResult) String() string {
	return fmt.Sprintf("%s: %s = %d", r.Notation, FormatRolls(r.Rolls), r.Total)
}

// RollNotation rolls n once.
func RollNotation(src Source, n Notation) RollResult {
	rolls := Roll(src, n.Faces, n.Count)
	return RollResult{Notation: n, Rolls: rolls, Total: Sum(rolls, n.Modifier)}
}

// FormatRolls renders rolls the way the board shows them: a single roll
// bare, several as "[a + b + c]".
func FormatRolls(rolls []int) string {
	switch len(rolls) {
	case 0:
		return ""
	case 1:
		return strconv.Itoa(rolls[0])
	}
	parts := make([]string, len(rolls))
	for i, r := range rolls {
		parts[i] = strconv.Itoa(r)
	}
	return "[" + strings.Join(parts, " + ") + "]"
}
