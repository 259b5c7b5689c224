package assignment

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/studygrid/studygrid-lms/internal/calc"
	"github.com/studygrid/studygrid-lms/internal/catalog"
	"github.com/studygrid/studygrid-lms/internal/storage"
)

var (
	// ErrNoActiveSession means a workspace operation that needs an open
	// assignment detail was called while none is open.
	ErrNoActiveSession = errors.New("no active assignment session")
	// ErrNotFound means the assignment id is not in the session's working set.
	ErrNotFound = errors.New("assignment not found")
	// ErrInvalidFile marks a zero-byte or unreadable upload. The offending
	// file is skipped; valid files in the same batch still attach.
	ErrInvalidFile = errors.New("invalid file")
)

// EvalFailedText is written into the draft when the calculator cannot make
// sense of the text. It is ordinary draft content, not an error condition.
const EvalFailedText = "Error"

// Record is the session-local copy of a catalog assignment plus whatever has
// been submitted against it. Catalog records themselves are never mutated.
type Record struct {
	catalog.Assignment
	SubmittedText  string           `json:"submitted_text,omitempty"`
	SubmittedFiles []FileAttachment `json:"submitted_files,omitempty"`
}

// Session is a snapshot of the open detail view.
type Session struct {
	Assignment Record           `json:"assignment"`
	DraftText  string           `json:"draft_text"`
	DraftFiles []FileAttachment `json:"draft_files"`
}

// Stats summarizes the working set for the dashboard cards.
type Stats struct {
	Pending        int    `json:"pending"`
	PendingCourses int    `json:"pending_courses"`
	Completed      int    `json:"completed"`
	NextDueDate    string `json:"next_due_date,omitempty"`
	NextDueTitle   string `json:"next_due_title,omitempty"`
}

type session struct {
	assignmentID string
	draftText    string
	draftFiles   []FileAttachment
}

// Workspace drives the compose-and-submit lifecycle for one assignment at a
// time. Draft text survives hold/reopen through the per-assignment draft
// store; draft files are working state only and are dropped (and their
// previews released) whenever the detail view changes hands.
type Workspace struct {
	mu      sync.Mutex
	blobs   storage.BlobStore
	records map[string]*Record
	order   []string
	drafts  map[string]string
	active  *session
}

// NewWorkspace seeds the working set with derived copies of the catalog's
// assignments.
func NewWorkspace(provider catalog.Provider, blobs storage.BlobStore) (*Workspace, error) {
	assignments, err := provider.ListAssignments()
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	w := &Workspace{
		blobs:   blobs,
		records: make(map[string]*Record, len(assignments)),
		drafts:  make(map[string]string),
	}
	for _, a := range assignments {
		w.records[a.ID] = &Record{Assignment: a}
		w.order = append(w.order, a.ID)
	}
	return w, nil
}

// View selects a List partition.
type View string

const (
	ViewPending   View = "pending"
	ViewCompleted View = "completed"
	ViewAll       View = "all"
)

// List returns the requested partition. Pending and completed views sort by
// due date; the all view puts pending work first, then sorts by due date.
func (w *Workspace) List(v View) []Record {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []Record
	for _, id := range w.order {
		rec := w.records[id]
		switch v {
		case ViewPending:
			if rec.Status != catalog.StatusPending {
				continue
			}
		case ViewCompleted:
			if rec.Status != catalog.StatusCompleted {
				continue
			}
		}
		out = append(out, cloneRecord(rec))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if v == ViewAll && out[i].Status != out[j].Status {
			return out[i].Status == catalog.StatusPending
		}
		return out[i].DueDate < out[j].DueDate
	})
	return out
}

func (w *Workspace) Stats() Stats {
	pending := w.List(ViewPending)
	completed := w.List(ViewCompleted)
	s := Stats{Pending: len(pending), Completed: len(completed)}
	courses := map[string]struct{}{}
	for _, rec := range pending {
		courses[rec.Course] = struct{}{}
	}
	s.PendingCourses = len(courses)
	if len(pending) > 0 {
		s.NextDueDate = pending[0].DueDate
		s.NextDueTitle = pending[0].Title
	}
	return s
}

// Get returns one record.
func (w *Workspace) Get(id string) (Record, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rec, ok := w.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return cloneRecord(rec), nil
}

// OpenDetail makes the assignment the active session. Draft text is seeded
// from the last held draft for that assignment (empty if none); draft files
// always start empty; held files are not restored. Any previously open
// session is closed first.
func (w *Workspace) OpenDetail(id string) (Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.records[id]; !ok {
		return Session{}, ErrNotFound
	}
	w.closeActiveLocked()
	w.active = &session{
		assignmentID: id,
		draftText:    w.drafts[id],
	}
	return w.sessionLocked(), nil
}

// Close ends the active session, releasing previews of draft files that
// never transferred to a submission. Closing with no session open is a
// no-op.
func (w *Workspace) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closeActiveLocked()
}

func (w *Workspace) closeActiveLocked() {
	if w.active == nil {
		return
	}
	w.releasePreviews(w.active.draftFiles)
	w.active = nil
}

// Session returns a snapshot of the open detail view.
func (w *Workspace) Session() (Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active == nil {
		return Session{}, ErrNoActiveSession
	}
	return w.sessionLocked(), nil
}

// AppendSymbol appends a literal token (math symbol, digit, operator) to the
// end of the draft text.
func (w *Workspace) AppendSymbol(symbol string) (Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active == nil {
		return Session{}, ErrNoActiveSession
	}
	w.active.draftText += symbol
	return w.sessionLocked(), nil
}

// Evaluate runs the draft text through the calculator. On success the draft
// becomes the stringified result; on any parse or evaluation failure it
// becomes EvalFailedText. The failure never propagates.
func (w *Workspace) Evaluate() (Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active == nil {
		return Session{}, ErrNoActiveSession
	}
	if v, err := calc.Evaluate(w.active.draftText); err != nil {
		w.active.draftText = EvalFailedText
	} else {
		w.active.draftText = calc.Format(v)
	}
	return w.sessionLocked(), nil
}

// Submit finalizes the active assignment: status flips to completed, the
// draft text and files become the submission record, the text is remembered
// in the draft store, and the detail view closes. The submitted files keep
// their previews; ownership moves to the record.
func (w *Workspace) Submit() (Record, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active == nil {
		return Record{}, ErrNoActiveSession
	}
	rec := w.records[w.active.assignmentID]
	rec.Status = catalog.StatusCompleted
	rec.SubmittedText = w.active.draftText
	rec.SubmittedFiles = w.active.draftFiles
	w.drafts[rec.ID] = w.active.draftText
	w.active = nil
	return cloneRecord(rec), nil
}

// Hold checkpoints the draft text without completing the assignment. The
// detail view stays open and draft files are untouched. They are not
// preserved for a later reopen.
func (w *Workspace) Hold() (Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active == nil {
		return Session{}, ErrNoActiveSession
	}
	w.drafts[w.active.assignmentID] = w.active.draftText
	return w.sessionLocked(), nil
}

// ToggleStatus flips pending/completed straight from the list view. No
// submission bookkeeping happens: a completed record keeps (or lacks) its
// submitted text and files exactly as they were.
func (w *Workspace) ToggleStatus(id string) (Record, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rec, ok := w.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	if rec.Status == catalog.StatusCompleted {
		rec.Status = catalog.StatusPending
	} else {
		rec.Status = catalog.StatusCompleted
	}
	return cloneRecord(rec), nil
}

func (w *Workspace) sessionLocked() Session {
	rec := w.records[w.active.assignmentID]
	return Session{
		Assignment: cloneRecord(rec),
		DraftText:  w.active.draftText,
		DraftFiles: append([]FileAttachment(nil), w.active.draftFiles...),
	}
}

func cloneRecord(rec *Record) Record {
	out := *rec
	out.SubmittedFiles = append([]FileAttachment(nil), rec.SubmittedFiles...)
	return out
}
