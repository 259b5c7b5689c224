package http

import (
	"net/http"
	"time"

	"github.com/studygrid/studygrid-lms/internal/schedule"
)

func CalendarHandler(svc *schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		if month == "" {
			month = time.Now().Format("2006-01")
		}
		m, err := svc.EventsForMonth(month)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, m)
	}
}
