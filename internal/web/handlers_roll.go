package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"diceroller/internal/dice"
)

var errNothingPending = errors.New("no roll pending")

// POST /roll
//
// Puts the board into the rolling state and schedules the commit. While a roll
// is pending, or with nothing selected, this is a no-op that just renders the
// board.
func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request) {
	id := s.sessionOrNew(w, r)
	started := false
	b, ok := s.updateSession(w, r, id, func(b *dice.Board) error {
		started = s.roller().Start(b)
		return nil
	})
	if !ok {
		return
	}
	if started {
		s.logger().Debug("roll started", slog.String("session", id))
		s.scheduler().AfterFunc(s.roller().Delay, func() { s.commitRoll(id) })
	}
	s.renderBoard(w, b)
}

// commitRoll rolls the board stored under id and returns it to idle. The
// commit sees every change made while the roll was pending.
func (s *Server) commitRoll(id string) {
	b, err := s.Store.Update(context.Background(), id, func(cur dice.Board, found bool) (dice.Board, error) {
		if !found || !cur.Rolling {
			return cur, errNothingPending
		}
		next := cur.Clone()
		s.roller().Commit(&next)
		return next, nil
	})
	switch {
	case errors.Is(err, errNothingPending):
		s.logger().Debug("roll commit found nothing pending", slog.String("session", id))
	case err != nil:
		s.logger().Error("commit roll", slog.String("session", id), slog.Any("err", err))
	default:
		s.logger().Debug("roll committed", slog.String("session", id), slog.Int("rolled", countResults(b)))
	}
}

func countResults(b dice.Board) int {
	n := 0
	for _, d := range b.Dice {
		if d.Result != nil {
			n++
		}
	}
	return n
}
