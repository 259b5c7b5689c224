package quiz

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/studygrid/studygrid-lms/internal/catalog"
)

var (
	// ErrInvalidQuiz means the quiz has no questions and cannot be started.
	ErrInvalidQuiz = errors.New("quiz has no questions")
	// ErrNoActiveAttempt means the attempt id does not name a live attempt.
	ErrNoActiveAttempt = errors.New("no active attempt")
	// ErrNoAnswer means advance was called before the current question was
	// answered. State is unchanged.
	ErrNoAnswer = errors.New("current question not answered")
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// QuestionView is the current question as shown to the learner: catalog
// order, no answer key.
type QuestionView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// Attempt is a snapshot of one quiz traversal. SelectedAnswer is nil until
// the current question has been answered.
type Attempt struct {
	ID              string        `json:"id"`
	QuizID          string        `json:"quiz_id"`
	Title           string        `json:"title"`
	Status          string        `json:"status"`
	CurrentQuestion int           `json:"current_question"`
	TotalQuestions  int           `json:"total_questions"`
	SelectedAnswer  *int          `json:"selected_answer"`
	Score           int           `json:"score"`
	Question        *QuestionView `json:"question,omitempty"`
	Result          *Result       `json:"result,omitempty"`
}

// Result is the final tally of a completed attempt.
type Result struct {
	Score  int  `json:"score"`
	Total  int  `json:"total"`
	Passed bool `json:"passed"`
}

type attemptState struct {
	id       string
	quiz     catalog.Quiz
	current  int
	answered bool
	selected int
	answers  []int
	score    int
}

// Engine tracks in-progress quiz attempts. One attempt walks its questions
// strictly in order: the first answer to a question is final, and advancing
// requires an answer. Completed and abandoned attempts are dropped; only the
// final Result leaves the engine.
type Engine struct {
	mu       sync.Mutex
	attempts map[string]*attemptState
}

func NewEngine() *Engine {
	return &Engine{attempts: make(map[string]*attemptState)}
}

// Start opens an attempt at question zero with nothing selected and a zero
// score.
func (e *Engine) Start(q catalog.Quiz) (Attempt, error) {
	if len(q.Questions) == 0 {
		return Attempt{}, ErrInvalidQuiz
	}
	st := &attemptState{
		id:   uuid.NewString(),
		quiz: q,
	}
	e.mu.Lock()
	e.attempts[st.id] = st
	e.mu.Unlock()
	return st.snapshot(), nil
}

// Answer locks in an option for the current question. Once a question has an
// answer, further calls are no-ops; the first answer is final. The score
// grows by one exactly when the option equals the question's answer key.
func (e *Engine) Answer(attemptID string, option int) (Attempt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.attempts[attemptID]
	if !ok {
		return Attempt{}, ErrNoActiveAttempt
	}
	if st.answered {
		return st.snapshot(), nil
	}
	st.answered = true
	st.selected = option
	st.answers = append(st.answers, option)
	if option == st.quiz.Questions[st.current].CorrectOption {
		st.score++
	}
	return st.snapshot(), nil
}

// Advance moves to the next question, or completes the attempt when the
// answered question was the last one. A completed attempt is removed from
// the engine; its snapshot carries the final Result.
func (e *Engine) Advance(attemptID string) (Attempt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.attempts[attemptID]
	if !ok {
		return Attempt{}, ErrNoActiveAttempt
	}
	if !st.answered {
		return st.snapshot(), ErrNoAnswer
	}
	if st.current+1 < len(st.quiz.Questions) {
		st.current++
		st.answered = false
		st.selected = 0
		return st.snapshot(), nil
	}

	delete(e.attempts, attemptID)
	snap := st.snapshot()
	snap.Status = StatusCompleted
	snap.Question = nil
	snap.SelectedAnswer = nil
	snap.Result = &Result{
		Score:  st.score,
		Total:  len(st.quiz.Questions),
		Passed: st.score >= st.quiz.PassingScore,
	}
	return snap, nil
}

// Get returns the live snapshot of an attempt.
func (e *Engine) Get(attemptID string) (Attempt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.attempts[attemptID]
	if !ok {
		return Attempt{}, ErrNoActiveAttempt
	}
	return st.snapshot(), nil
}

// Abandon discards an attempt without recording anything. Abandoning an
// unknown or already-finished attempt is a no-op.
func (e *Engine) Abandon(attemptID string) {
	e.mu.Lock()
	delete(e.attempts, attemptID)
	e.mu.Unlock()
}

func (st *attemptState) snapshot() Attempt {
	q := st.quiz.Questions[st.current]
	a := Attempt{
		ID:              st.id,
		QuizID:          st.quiz.ID,
		Title:           st.quiz.Title,
		Status:          StatusInProgress,
		CurrentQuestion: st.current,
		TotalQuestions:  len(st.quiz.Questions),
		Score:           st.score,
		Question: &QuestionView{
			Prompt:  q.Prompt,
			Options: append([]string(nil), q.Options...),
		},
	}
	if st.answered {
		sel := st.selected
		a.SelectedAnswer = &sel
	}
	return a
}
