package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/studygrid/studygrid-lms/internal/storage"
)

// MountPreviews serves attachment preview blobs at GET /previews/*. Keys are
// whatever the workspace stored when the file was attached.
func MountPreviews(r chi.Router, bs storage.BlobStore) {
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(req, "*"), "/")
		rc, err := bs.Get(key)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = io.Copy(w, rc)
	})
}
