package assignment

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// FileAttachment is one uploaded file in a draft or submission. PreviewKey
// is set only for image content and names a blob in the workspace's store.
type FileAttachment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MIMEType   string `json:"mime_type"`
	SizeBytes  int64  `json:"size_bytes"`
	PreviewKey string `json:"preview_key,omitempty"`
}

// Upload is what the file-selection source hands us: metadata plus a content
// reader. A nil reader or zero size marks the entry unreadable.
type Upload struct {
	Name     string
	MIMEType string
	Size     int64
	Content  io.Reader
}

// AttachFiles appends each upload to the active draft with a fresh unique
// id, preserving the order of what is already attached. Invalid entries
// (zero bytes, unreadable) are skipped and reported via a joined
// ErrInvalidFile; the valid ones in the same batch still attach.
func (w *Workspace) AttachFiles(uploads []Upload) (Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active == nil {
		return Session{}, ErrNoActiveSession
	}

	var skipped []error
	for _, up := range uploads {
		if up.Size <= 0 || up.Content == nil {
			skipped = append(skipped, fmt.Errorf("%w: %s", ErrInvalidFile, up.Name))
			continue
		}
		att := FileAttachment{
			ID:        uuid.NewString(),
			Name:      up.Name,
			MIMEType:  up.MIMEType,
			SizeBytes: up.Size,
		}
		if strings.HasPrefix(up.MIMEType, "image/") {
			key, err := w.blobs.Put("previews/"+att.ID, up.Content)
			if err != nil {
				skipped = append(skipped, fmt.Errorf("%w: %s: %v", ErrInvalidFile, up.Name, err))
				continue
			}
			att.PreviewKey = key
		}
		w.active.draftFiles = append(w.active.draftFiles, att)
	}
	return w.sessionLocked(), errors.Join(skipped...)
}

// RemoveFile drops exactly the attachment with that id from the draft and
// releases its preview. Unknown ids are a no-op.
func (w *Workspace) RemoveFile(fileID string) (Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active == nil {
		return Session{}, ErrNoActiveSession
	}
	files := w.active.draftFiles
	for i, att := range files {
		if att.ID == fileID {
			w.releasePreviews(files[i : i+1])
			w.active.draftFiles = append(files[:i:i], files[i+1:]...)
			break
		}
	}
	return w.sessionLocked(), nil
}

func (w *Workspace) releasePreviews(files []FileAttachment) {
	for _, att := range files {
		if att.PreviewKey == "" {
			continue
		}
		// best effort; a leaked blob is not worth failing the operation
		_ = w.blobs.Delete(att.PreviewKey)
	}
}
