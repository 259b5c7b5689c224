package http

import (
	"net/http"
	"strconv"

	"github.com/studygrid/studygrid-lms/internal/activity"
)

func RecentActivityHandler(log *activity.Log) http.HandlerFunc {
	type row struct {
		Offset    int64  `json:"offset"`
		Type      string `json:"type"`
		Key       string `json:"key"`
		Data      string `json:"data"`
		CreatedAt int64  `json:"created_at"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		n, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		events, err := log.Recent(r.Context(), n)
		if err != nil {
			writeErr(w, err)
			return
		}
		out := make([]row, 0, len(events))
		for _, e := range events {
			out = append(out, row{e.Offset, e.Type, e.Key, e.DataJSON, e.CreatedAt})
		}
		writeJSON(w, out)
	}
}
