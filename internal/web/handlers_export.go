package web

import (
	"log/slog"
	"net/http"

	"diceroller/internal/rollsheet"
)

// GET /export.pdf
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	b, ok := s.loadBoard(w, r)
	if !ok {
		return
	}
	pdf, err := rollsheet.Generate(b, s.title(), s.now())
	if err != nil {
		s.fail(w, r, "export roll sheet", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="roll-sheet.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		s.logger().Warn("write roll sheet", slog.Any("err", err))
	}
}
