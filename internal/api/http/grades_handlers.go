package http

import (
	"net/http"

	"github.com/studygrid/studygrid-lms/internal/grades"
)

func GradesHandler(svc *grades.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.Report()
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, rep)
	}
}
