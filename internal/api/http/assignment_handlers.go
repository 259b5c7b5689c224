package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studygrid/studygrid-lms/internal/activity"
	"github.com/studygrid/studygrid-lms/internal/assignment"
)

func ListAssignmentsHandler(ws *assignment.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := assignment.View(r.URL.Query().Get("view"))
		switch view {
		case assignment.ViewPending, assignment.ViewCompleted, assignment.ViewAll:
		case "":
			view = assignment.ViewAll
		default:
			http.Error(w, "view must be pending, completed or all", http.StatusBadRequest)
			return
		}
		recs := ws.List(view)
		if recs == nil {
			recs = []assignment.Record{}
		}
		writeJSON(w, recs)
	}
}

func AssignmentStatsHandler(ws *assignment.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, ws.Stats())
	}
}

func OpenAssignmentHandler(ws *assignment.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := ws.OpenDetail(chi.URLParam(r, "assignmentID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s)
	}
}

func ToggleAssignmentHandler(ws *assignment.Workspace, log *activity.Log, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := ws.ToggleStatus(chi.URLParam(r, "assignmentID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if err := log.Append(r.Context(), activity.TypeAssignmentToggled, rec.ID,
			map[string]string{"status": string(rec.Status)}); err != nil {
			logger.Warn("activity log append failed", "err", err)
		}
		writeJSON(w, rec)
	}
}

func GetWorkspaceHandler(ws *assignment.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := ws.Session()
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s)
	}
}

func CloseWorkspaceHandler(ws *assignment.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws.Close()
		w.WriteHeader(http.StatusNoContent)
	}
}

// AttachFilesHandler accepts a multipart form with one or more "files"
// parts. Invalid entries are skipped server-side; the response reports the
// resulting draft along with what was rejected.
func AttachFilesHandler(ws *assignment.Workspace) http.HandlerFunc {
	const maxUpload = 32 << 20
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUpload); err != nil {
			http.Error(w, "multipart form required", http.StatusBadRequest)
			return
		}
		var uploads []assignment.Upload
		var closers []io.Closer
		for _, hdr := range r.MultipartForm.File["files"] {
			f, err := hdr.Open()
			if err != nil {
				uploads = append(uploads, assignment.Upload{Name: hdr.Filename})
				continue
			}
			closers = append(closers, f)
			uploads = append(uploads, assignment.Upload{
				Name:     hdr.Filename,
				MIMEType: hdr.Header.Get("Content-Type"),
				Size:     hdr.Size,
				Content:  f,
			})
		}
		defer func() {
			for _, c := range closers {
				_ = c.Close()
			}
		}()

		s, err := ws.AttachFiles(uploads)
		if err != nil && !errors.Is(err, assignment.ErrInvalidFile) {
			writeErr(w, err)
			return
		}
		resp := struct {
			assignment.Session
			Skipped string `json:"skipped,omitempty"`
		}{Session: s}
		if err != nil {
			resp.Skipped = err.Error()
		}
		writeJSON(w, resp)
	}
}

func RemoveFileHandler(ws *assignment.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := ws.RemoveFile(chi.URLParam(r, "fileID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s)
	}
}

func AppendSymbolHandler(ws *assignment.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Symbol string `json:"symbol"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Symbol == "" {
			http.Error(w, "symbol required", http.StatusBadRequest)
			return
		}
		s, err := ws.AppendSymbol(req.Symbol)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s)
	}
}

func CalculateHandler(ws *assignment.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := ws.Evaluate()
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s)
	}
}

func SubmitHandler(ws *assignment.Workspace, log *activity.Log, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := ws.Submit()
		if err != nil {
			writeErr(w, err)
			return
		}
		logger.Info("assignment submitted", "assignment", rec.ID, "files", len(rec.SubmittedFiles))
		if err := log.Append(r.Context(), activity.TypeAssignmentSubmitted, rec.ID,
			map[string]int{"files": len(rec.SubmittedFiles)}); err != nil {
			logger.Warn("activity log append failed", "err", err)
		}
		writeJSON(w, rec)
	}
}

func HoldHandler(ws *assignment.Workspace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := ws.Hold()
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, s)
	}
}
