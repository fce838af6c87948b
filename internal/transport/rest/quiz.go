package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sanskrit-verbgame/internal/domain"
)

// quizService is the engine surface the quiz endpoint needs.
type quizService interface {
	Generate(ctx context.Context) (*domain.QuizItem, error)
}

// QuizHandler serves quiz items over HTTP.
type QuizHandler struct {
	quiz quizService
	log  *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(log *slog.Logger, quiz quizService) *QuizHandler {
	return &QuizHandler{quiz: quiz, log: log}
}

// GetGame handles GET /api/get-game.
//
// 200 with the quiz item, 404 when no sentences are loaded, 500 otherwise.
func (h *QuizHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	item, err := h.quiz.Generate(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoDataAvailable) {
			writeError(w, http.StatusNotFound, "No sentences available")
			return
		}
		h.log.ErrorContext(r.Context(), "get game", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, item)
}
