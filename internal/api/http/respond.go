package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studygrid/studygrid-lms/internal/assignment"
	"github.com/studygrid/studygrid-lms/internal/catalog"
	"github.com/studygrid/studygrid-lms/internal/quiz"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain errors onto status codes: unknown ids are 404,
// structural misuse of the session/attempt lifecycle is 409, bad input is
// 400, the rest is 500.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, assignment.ErrNotFound),
		errors.Is(err, quiz.ErrNoActiveAttempt):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, assignment.ErrNoActiveSession),
		errors.Is(err, quiz.ErrNoAnswer):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, quiz.ErrInvalidQuiz),
		errors.Is(err, assignment.ErrInvalidFile):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
