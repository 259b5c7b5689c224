package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studygrid/studygrid-lms/internal/activity"
	"github.com/studygrid/studygrid-lms/internal/assignment"
	"github.com/studygrid/studygrid-lms/internal/catalog"
	"github.com/studygrid/studygrid-lms/internal/db"
	"github.com/studygrid/studygrid-lms/internal/grades"
	"github.com/studygrid/studygrid-lms/internal/profile"
	"github.com/studygrid/studygrid-lms/internal/quiz"
	"github.com/studygrid/studygrid-lms/internal/schedule"
	"github.com/studygrid/studygrid-lms/internal/storage"
)

type testEnv struct {
	srv    *httptest.Server
	blobs  *storage.MemStore
	actLog *activity.Log
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	dbh, err := db.Open(ctx, db.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { dbh.Close() })

	provider := catalog.NewSeededProvider()
	blobs := storage.NewMemStore()
	engine := quiz.NewEngine()
	ws, err := assignment.NewWorkspace(provider, blobs)
	require.NoError(t, err)
	prof, err := profile.NewService(provider)
	require.NoError(t, err)
	actLog := activity.NewLog(dbh)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Get("/courses", ListCoursesHandler(provider))
	r.Get("/courses/{courseID}", GetCourseHandler(provider))
	r.Post("/quizzes/{quizID}/attempts", StartAttemptHandler(provider, engine, logger))
	r.Post("/attempts/{attemptID}/answer", AnswerHandler(engine))
	r.Post("/attempts/{attemptID}/advance", AdvanceHandler(engine, actLog, logger))
	r.Get("/attempts/{attemptID}", GetAttemptHandler(engine))
	r.Delete("/attempts/{attemptID}", AbandonAttemptHandler(engine))
	r.Get("/assignments", ListAssignmentsHandler(ws))
	r.Get("/assignments/stats", AssignmentStatsHandler(ws))
	r.Post("/assignments/{assignmentID}/open", OpenAssignmentHandler(ws))
	r.Post("/assignments/{assignmentID}/toggle", ToggleAssignmentHandler(ws, actLog, logger))
	r.Route("/workspace", func(wr chi.Router) {
		wr.Get("/", GetWorkspaceHandler(ws))
		wr.Delete("/", CloseWorkspaceHandler(ws))
		wr.Post("/files", AttachFilesHandler(ws))
		wr.Delete("/files/{fileID}", RemoveFileHandler(ws))
		wr.Post("/symbols", AppendSymbolHandler(ws))
		wr.Post("/calculate", CalculateHandler(ws))
		wr.Post("/submit", SubmitHandler(ws, actLog, logger))
		wr.Post("/hold", HoldHandler(ws))
	})
	r.Route("/previews", func(pr chi.Router) {
		MountPreviews(pr, blobs)
	})
	r.Get("/grades", GradesHandler(grades.NewService(provider)))
	r.Get("/calendar", CalendarHandler(schedule.NewService(provider)))
	r.Get("/profile", GetProfileHandler(prof))
	r.Put("/profile", UpdateProfileHandler(prof))
	r.Put("/profile/notifications", NotificationsHandler(prof))
	r.Post("/profile/password", ChangePasswordHandler(prof))
	r.Get("/activity", RecentActivityHandler(actLog))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &testEnv{srv: srv, blobs: blobs, actLog: actLog}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, b
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v))
	return v
}

func TestCourseEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp, b := env.do(t, "GET", "/courses", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	courses := decode[[]catalog.Course](t, b)
	assert.Len(t, courses, 6)

	resp, b = env.do(t, "GET", "/courses?department=Computer%20Science", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	filtered := decode[[]catalog.Course](t, b)
	assert.Less(t, len(filtered), len(courses))

	resp, b = env.do(t, "GET", "/courses/cs101", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, string(b), "correct_option")

	resp, _ = env.do(t, "GET", "/courses/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQuizFlowOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	resp, b := env.do(t, "POST", "/quizzes/quiz-cs101-1/attempts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	a := decode[quiz.Attempt](t, b)
	assert.Equal(t, 3, a.TotalQuestions)

	// advancing before answering is a conflict
	resp, _ = env.do(t, "POST", "/attempts/"+a.ID+"/advance", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	answers := []int{1, 1, 2} // all correct
	for i, opt := range answers {
		resp, b = env.do(t, "POST", "/attempts/"+a.ID+"/answer", map[string]int{"option_index": opt})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, b = env.do(t, "POST", "/attempts/"+a.ID+"/advance", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		a2 := decode[quiz.Attempt](t, b)
		if i < len(answers)-1 {
			assert.Equal(t, quiz.StatusInProgress, a2.Status)
		} else {
			assert.Equal(t, quiz.StatusCompleted, a2.Status)
			require.NotNil(t, a2.Result)
			assert.Equal(t, 3, a2.Result.Score)
			assert.True(t, a2.Result.Passed)
		}
	}

	// the attempt is gone after completion
	resp, _ = env.do(t, "GET", "/attempts/"+a.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// completion landed in the activity log
	events, err := env.actLog.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, activity.TypeQuizCompleted, events[0].Type)
}

func TestStartAttemptUnknownQuiz(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.do(t, "POST", "/quizzes/nope/attempts", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAbandonAttempt(t *testing.T) {
	env := newTestEnv(t)
	resp, b := env.do(t, "POST", "/quizzes/quiz-cs101-1/attempts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	a := decode[quiz.Attempt](t, b)

	resp, _ = env.do(t, "DELETE", "/attempts/"+a.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = env.do(t, "GET", "/attempts/"+a.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAssignmentEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp, b := env.do(t, "GET", "/assignments?view=pending", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pending := decode[[]assignment.Record](t, b)
	assert.NotEmpty(t, pending)

	resp, _ = env.do(t, "GET", "/assignments?view=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, b = env.do(t, "GET", "/assignments/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[assignment.Stats](t, b)
	assert.Equal(t, len(pending), stats.Pending)
}

func TestWorkspaceFlowOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	// workspace is a conflict until something is open
	resp, _ := env.do(t, "GET", "/workspace", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, b := env.do(t, "POST", "/assignments/a1/open", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s := decode[assignment.Session](t, b)
	assert.Equal(t, "a1", s.Assignment.ID)
	assert.Empty(t, s.DraftText)

	resp, b = env.do(t, "POST", "/workspace/symbols", map[string]string{"symbol": "2+2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, b = env.do(t, "POST", "/workspace/calculate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s = decode[assignment.Session](t, b)
	assert.Equal(t, "4", s.DraftText)

	resp, b = env.do(t, "POST", "/workspace/submit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rec := decode[assignment.Record](t, b)
	assert.Equal(t, catalog.StatusCompleted, rec.Status)
	assert.Equal(t, "4", rec.SubmittedText)

	// the session closed with the submit
	resp, _ = env.do(t, "GET", "/workspace", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// reopening restores the submitted text as the draft
	resp, b = env.do(t, "POST", "/assignments/a1/open", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s = decode[assignment.Session](t, b)
	assert.Equal(t, "4", s.DraftText)
}

func TestAttachFilesOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.do(t, "POST", "/assignments/a1/open", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("files", "diagram.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest("POST", env.srv.URL+"/workspace/files", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	httpResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(httpResp.Body)
	require.NoError(t, err)
	httpResp.Body.Close()
	require.Equal(t, http.StatusOK, httpResp.StatusCode)

	s := decode[assignment.Session](t, body)
	require.Len(t, s.DraftFiles, 1)
	att := s.DraftFiles[0]
	assert.Equal(t, "diagram.png", att.Name)

	// multipart file parts default to application/octet-stream, so no preview
	resp, b := env.do(t, "DELETE", "/workspace/files/"+att.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s = decode[assignment.Session](t, b)
	assert.Empty(t, s.DraftFiles)
}

func TestPreviewServing(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.blobs.Put("previews/test-key", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	resp, b := env.do(t, "GET", "/previews/previews/test-key", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image-bytes", string(b))

	resp, _ = env.do(t, "GET", "/previews/previews/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestToggleRecordsActivity(t *testing.T) {
	env := newTestEnv(t)

	resp, b := env.do(t, "POST", "/assignments/a1/toggle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rec := decode[assignment.Record](t, b)
	assert.Equal(t, catalog.StatusCompleted, rec.Status)

	resp, _ = env.do(t, "POST", "/assignments/nope/toggle", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, b = env.do(t, "GET", "/activity", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var events []map[string]any
	require.NoError(t, json.Unmarshal(b, &events))
	require.NotEmpty(t, events)
	assert.Equal(t, activity.TypeAssignmentToggled, events[0]["type"])
	assert.Equal(t, "a1", events[0]["key"])
}

func TestGradesEndpoint(t *testing.T) {
	env := newTestEnv(t)
	resp, b := env.do(t, "GET", "/grades", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rep := decode[grades.Report](t, b)
	assert.NotEmpty(t, rep.Courses)
	assert.Greater(t, rep.TermGPA, 0.0)
}

func TestCalendarEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp, b := env.do(t, "GET", "/calendar?month=2025-04", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	m := decode[schedule.Month](t, b)
	assert.Equal(t, "2025-04", m.Month)

	resp, _ = env.do(t, "GET", "/calendar?month=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfileEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp, b := env.do(t, "GET", "/profile", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, string(b), "password")

	resp, b = env.do(t, "PUT", "/profile", map[string]string{"name": "New Name"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p := decode[catalog.Profile](t, b)
	assert.Equal(t, "New Name", p.Name)

	resp, b = env.do(t, "PUT", "/profile/notifications", map[string]bool{"email": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p = decode[catalog.Profile](t, b)
	assert.True(t, p.Notifications.Email)

	resp, _ = env.do(t, "POST", "/profile/password", profile.PasswordChange{
		Current: "changeme123", New: "nextpass123", Confirm: "nextpass123",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = env.do(t, "POST", "/profile/password", profile.PasswordChange{
		Current: "changeme123", New: "nextpass123", Confirm: "nextpass123",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = env.do(t, "POST", "/profile/password", profile.PasswordChange{
		Current: "nextpass123", New: "short", Confirm: "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestActivityLimit(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 5; i++ {
		resp, _ := env.do(t, "POST", fmt.Sprintf("/assignments/a%d/toggle", i+1), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, b := env.do(t, "GET", "/activity?limit=3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var events []map[string]any
	require.NoError(t, json.Unmarshal(b, &events))
	assert.Len(t, events, 3)
	// newest first
	assert.Equal(t, "a5", events[0]["key"])
}
