package catalog

import (
	"strings"
	"sync"
)

// MemoryProvider serves the catalog from process memory. It is the default
// provider in offline mode and the fixture provider in tests.
type MemoryProvider struct {
	mu          sync.RWMutex
	courses     []Course
	assignments []Assignment
	events      []Event
	gradebook   GradeBook
	profile     Profile
}

func NewMemoryProvider(courses []Course, assignments []Assignment, events []Event, gb GradeBook, profile Profile) *MemoryProvider {
	return &MemoryProvider{
		courses:     courses,
		assignments: assignments,
		events:      events,
		gradebook:   gb,
		profile:     profile,
	}
}

// NewSeededProvider returns a MemoryProvider loaded with the demo campus
// data set.
func NewSeededProvider() *MemoryProvider {
	return NewMemoryProvider(seedCourses(), seedAssignments(), seedEvents(), seedGradeBook(), seedProfile())
}

func (m *MemoryProvider) ListCourses(f CourseFilter) ([]Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Course, 0, len(m.courses))
	for _, c := range m.courses {
		if matchCourse(c, f) {
			out = append(out, c)
		}
	}
	return out, nil
}

func matchCourse(c Course, f CourseFilter) bool {
	if f.Department != "" && c.Department != f.Department {
		return false
	}
	if f.Level != "" && c.Level != f.Level {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(c.Title), q) ||
		strings.Contains(strings.ToLower(c.Instructor), q) ||
		strings.Contains(strings.ToLower(c.Description), q)
}

func (m *MemoryProvider) GetCourse(id string) (Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return Course{}, ErrNotFound
}

func (m *MemoryProvider) GetQuiz(id string) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.courses {
		for _, q := range c.Quizzes {
			if q.ID == id {
				return q, nil
			}
		}
	}
	return Quiz{}, ErrNotFound
}

func (m *MemoryProvider) ListAssignments() ([]Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Assignment(nil), m.assignments...), nil
}

func (m *MemoryProvider) GetAssignment(id string) (Assignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return Assignment{}, ErrNotFound
}

func (m *MemoryProvider) ListEvents() ([]Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Event(nil), m.events...), nil
}

func (m *MemoryProvider) GradeBook() (GradeBook, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	gb := m.gradebook
	gb.Courses = append([]CourseGrade(nil), gb.Courses...)
	gb.Assignments = append([]AssignmentGrade(nil), gb.Assignments...)
	gb.PreviousTerms = append([]Term(nil), gb.PreviousTerms...)
	return gb, nil
}

func (m *MemoryProvider) GetProfile() (Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile, nil
}
