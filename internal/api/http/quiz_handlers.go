package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studygrid/studygrid-lms/internal/activity"
	"github.com/studygrid/studygrid-lms/internal/catalog"
	"github.com/studygrid/studygrid-lms/internal/quiz"
)

func StartAttemptHandler(p catalog.Provider, engine *quiz.Engine, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := p.GetQuiz(chi.URLParam(r, "quizID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		a, err := engine.Start(q)
		if err != nil {
			writeErr(w, err)
			return
		}
		logger.Info("attempt started", "quiz", q.ID, "attempt", a.ID)
		writeJSON(w, a)
	}
}

func AnswerHandler(engine *quiz.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OptionIndex int `json:"option_index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		a, err := engine.Answer(chi.URLParam(r, "attemptID"), req.OptionIndex)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, a)
	}
}

func AdvanceHandler(engine *quiz.Engine, log *activity.Log, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := engine.Advance(chi.URLParam(r, "attemptID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if a.Status == quiz.StatusCompleted {
			logger.Info("attempt completed", "quiz", a.QuizID, "score", a.Result.Score, "total", a.Result.Total)
			if err := log.Append(r.Context(), activity.TypeQuizCompleted, a.ID, a.Result); err != nil {
				logger.Warn("activity log append failed", "err", err)
			}
		}
		writeJSON(w, a)
	}
}

func GetAttemptHandler(engine *quiz.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := engine.Get(chi.URLParam(r, "attemptID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, a)
	}
}

func AbandonAttemptHandler(engine *quiz.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine.Abandon(chi.URLParam(r, "attemptID"))
		w.WriteHeader(http.StatusNoContent)
	}
}
