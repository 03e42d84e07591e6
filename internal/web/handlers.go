package web

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"diceroller/internal/dice"
	"diceroller/internal/session"
	"diceroller/internal/web/middleware"
)

// Scheduler runs f once after d. The roll commit is deferred through it.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// TimerScheduler schedules with time.AfterFunc.
func TimerScheduler() Scheduler { return timerScheduler{} }

type Server struct {
	Set       *dice.Set
	Features  dice.Features
	Roller    *dice.Roller
	Store     session.Store[dice.Board]
	Tmpl      *template.Template
	Log       *slog.Logger
	Scheduler Scheduler
	Title     string
	Now       func() time.Time
}

const cookieName = "diceroller_sid"

var defaultRoller = dice.NewRoller()

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.Recoverer)
	r.Use(middleware.AccessLog(s.logger()))
	r.Use(middleware.Compression)

	r.Get("/", s.handleIndex)
	r.Get("/board", s.handleBoard)
	r.Get("/healthz", s.handleHealth)
	r.Get("/export.pdf", s.handleExport)

	r.Route("/dice/{id}", func(r chi.Router) {
		r.Post("/toggle", s.handleToggle)
		r.Post("/count", s.handleCount)
		r.Post("/modifier", s.handleModifier)
		r.Post("/color", s.handleColor)
		r.Post("/faces", s.handleFaces)
		r.Post("/faces/step", s.handleFacesStep)
	})

	r.Post("/roll", s.handleRoll)
	r.Post("/reset", s.handleReset)
	r.Post("/reset-colors", s.handleResetColors)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	b, ok := s.loadBoard(w, r)
	if !ok {
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	if err := s.Tmpl.ExecuteTemplate(w, "layout.html", PageViewModel{
		Title: s.title(),
		Board: s.boardView(b),
	}); err != nil {
		s.logger().Error("render page", slog.Any("err", err))
	}
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	b, ok := s.loadBoard(w, r)
	if !ok {
		return
	}
	s.renderBoard(w, b)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// sessionOrNew returns the caller's session id, issuing a cookie for a new
// one when the request carries none.
func (s *Server) sessionOrNew(w http.ResponseWriter, r *http.Request) string {
	if id := s.sessionID(r); id != "" {
		return id
	}
	id := s.Store.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// loadBoard returns the caller's board, creating it on first visit. On
// failure the error response has already been written.
func (s *Server) loadBoard(w http.ResponseWriter, r *http.Request) (dice.Board, bool) {
	return s.update(w, r, nil)
}

// update applies fn to a copy of the caller's board and stores the copy.
// A nil fn only makes sure the board exists. When fn fails the stored board
// is left as it was.
func (s *Server) update(w http.ResponseWriter, r *http.Request, fn func(b *dice.Board) error) (dice.Board, bool) {
	return s.updateSession(w, r, s.sessionOrNew(w, r), fn)
}

func (s *Server) updateSession(w http.ResponseWriter, r *http.Request, id string, fn func(b *dice.Board) error) (dice.Board, bool) {
	b, err := s.Store.Update(r.Context(), id, func(cur dice.Board, found bool) (dice.Board, error) {
		if !found {
			cur = s.newBoard()
		}
		if fn == nil {
			return cur, nil
		}
		next := cur.Clone()
		if err := fn(&next); err != nil {
			return cur, err
		}
		return next, nil
	})
	if err != nil {
		s.fail(w, r, "update board", err)
		return dice.Board{}, false
	}
	return b, true
}

func (s *Server) newBoard() dice.Board {
	return dice.NewBoard(s.Set, s.Features)
}

func (s *Server) renderBoard(w http.ResponseWriter, b dice.Board) {
	w.Header().Set("Cache-Control", "no-store")
	if err := s.Tmpl.ExecuteTemplate(w, "board.html", s.boardView(b)); err != nil {
		s.logger().Error("render board", slog.Any("err", err))
	}
}

func (s *Server) logger() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}

func (s *Server) title() string {
	if s.Title == "" {
		return "Dice Roller"
	}
	return s.Title
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Server) roller() *dice.Roller {
	if s.Roller == nil {
		return defaultRoller
	}
	return s.Roller
}

func (s *Server) scheduler() Scheduler {
	if s.Scheduler == nil {
		return TimerScheduler()
	}
	return s.Scheduler
}
