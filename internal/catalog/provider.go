package catalog

import "errors"

var ErrNotFound = errors.New("not found")

// CourseFilter narrows ListCourses. Empty fields match everything; Query is a
// case-insensitive substring match on title, instructor and description.
type CourseFilter struct {
	Query      string
	Department string
	Level      string
}

// Provider is the read-only catalog boundary. Implementations must return
// copies: callers are free to mutate what they get back without affecting
// the catalog.
type Provider interface {
	ListCourses(f CourseFilter) ([]Course, error)
	GetCourse(id string) (Course, error)
	GetQuiz(id string) (Quiz, error)
	ListAssignments() ([]Assignment, error)
	GetAssignment(id string) (Assignment, error)
	ListEvents() ([]Event, error)
	GradeBook() (GradeBook, error)
	GetProfile() (Profile, error)
}

// StudentView strips quiz answer keys from a course payload before it is
// served to a learner.
func StudentView(c Course) Course {
	if len(c.Quizzes) == 0 {
		return c
	}
	quizzes := make([]Quiz, len(c.Quizzes))
	for i, q := range c.Quizzes {
		qs := make([]Question, len(q.Questions))
		for j, item := range q.Questions {
			item.CorrectOption = 0
			item.Options = append([]string(nil), item.Options...)
			qs[j] = item
		}
		q.Questions = qs
		quizzes[i] = q
	}
	c.Quizzes = quizzes
	return c
}
