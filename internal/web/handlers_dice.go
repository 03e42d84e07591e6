package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"diceroller/internal/dice"
	"diceroller/internal/errs"
)

var errBadForm = errs.NewWarn("bad form")

// POST /dice/{id}/toggle
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mutate(w, r, func(b *dice.Board) error {
		return b.Toggle(id)
	})
}

// POST /dice/{id}/count?delta=N
func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	delta, err := formDelta(r)
	if err != nil {
		s.fail(w, r, "adjust count", err)
		return
	}
	s.mutate(w, r, func(b *dice.Board) error {
		return b.AdjustCount(id, delta)
	})
}

// POST /dice/{id}/modifier?delta=N
func (s *Server) handleModifier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	delta, err := formDelta(r)
	if err != nil {
		s.fail(w, r, "adjust modifier", err)
		return
	}
	s.mutate(w, r, func(b *dice.Board) error {
		return b.AdjustModifier(id, delta)
	})
}

// POST /dice/{id}/color  color=<token>
func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, "set color", errBadForm.With(err.Error()))
		return
	}
	color := strings.TrimSpace(r.FormValue("color"))
	s.mutate(w, r, func(b *dice.Board) error {
		return b.SetColor(id, color)
	})
}

// POST /dice/{id}/faces  text=<raw field text>[&blur=1]
//
// value=<n> sets the face count directly instead.
func (s *Server) handleFaces(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, "set faces", errBadForm.With(err.Error()))
		return
	}
	if v := r.FormValue("value"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.fail(w, r, "set faces", errs.Warnf("bad value %q", v))
			return
		}
		s.mutate(w, r, func(b *dice.Board) error {
			return b.SetCustomFaces(id, n)
		})
		return
	}
	text := r.FormValue("text")
	blur := isTrue(r.FormValue("blur"))
	s.mutate(w, r, func(b *dice.Board) error {
		return b.EditCustomFaces(id, text, blur)
	})
}

// POST /dice/{id}/faces/step?delta=N
func (s *Server) handleFacesStep(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	delta, err := formDelta(r)
	if err != nil {
		s.fail(w, r, "step faces", err)
		return
	}
	s.mutate(w, r, func(b *dice.Board) error {
		return b.StepCustomFaces(id, delta)
	})
}

// POST /reset
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(b *dice.Board) error {
		b.ResetAll()
		return nil
	})
}

// POST /reset-colors
func (s *Server) handleResetColors(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(b *dice.Board) error {
		b.ResetColors()
		return nil
	})
}

// mutate applies fn to the caller's board and renders the board fragment.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(b *dice.Board) error) {
	b, ok := s.update(w, r, fn)
	if !ok {
		return
	}
	s.renderBoard(w, b)
}

func formDelta(r *http.Request) (int, error) {
	v := r.FormValue("delta")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errs.Warnf("bad delta %q", v)
	}
	return n, nil
}

func isTrue(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
