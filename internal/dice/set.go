package dice

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"diceroller/internal/errs"
)

// DefaultSet returns the standard polyhedral dice plus one custom die, with
// colors taken from the palette in order.
func DefaultSet() *Set {
	s := &Set{Name: "standard"}
	for i, f := range StandardFaces {
		s.Dice = append(s.Dice, DieSpec{
			ID:    "d" + strconv.Itoa(f),
			Faces: f,
			Color: Palette[i%len(Palette)],
		})
	}
	s.Dice = append(s.Dice, DieSpec{
		ID:     CustomID,
		Faces:  DefaultCustomFaces,
		Color:  Palette[len(StandardFaces)%len(Palette)],
		Custom: true,
	})
	return s
}

// LoadSet loads a dice set from a YAML file.
func LoadSet(path string) (*Set, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, errs.Wrap(err, "read dice set")
	}
	return ParseSet(b)
}

// ParseSet decodes and validates a YAML dice set.
func ParseSet(b []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, errs.Wrap(err, "decode dice set")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks ids are unique, standard dice use a polyhedral face count
// and there is at most one custom die. Missing colors fall back to the
// palette.
func (s *Set) Validate() error {
	if len(s.Dice) == 0 {
		return errs.NewFatal("dice set is empty")
	}
	seen := map[string]bool{}
	customs := 0
	for i := range s.Dice {
		sp := &s.Dice[i]
		if sp.ID == "" {
			return errs.Fatalf("die %d has no id", i)
		}
		if seen[sp.ID] {
			return errs.Fatalf("duplicate die id %q", sp.ID)
		}
		seen[sp.ID] = true
		if sp.Custom {
			customs++
			if sp.Faces == 0 {
				sp.Faces = DefaultCustomFaces
			}
			if sp.Faces < MinFaces || sp.Faces > MaxFaces {
				return errs.Fatalf("custom die %q: faces %d outside [%d, %d]", sp.ID, sp.Faces, MinFaces, MaxFaces)
			}
		} else if !isStandard(sp.Faces) {
			return errs.Fatalf("die %q: %d faces is not a standard die", sp.ID, sp.Faces)
		}
		if sp.Color == "" {
			sp.Color = Palette[i%len(Palette)]
		}
	}
	if customs > 1 {
		return errs.NewFatal(fmt.Sprintf("dice set has %d custom dice, at most one allowed", customs))
	}
	return nil
}

func isStandard(faces int) bool {
	for _, f := range StandardFaces {
		if f == faces {
			return true
		}
	}
	return false
}
