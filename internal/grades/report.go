// Package grades turns the catalog's raw grade book into the report the
// grades page renders: recomputed GPAs instead of trusting whatever the
// upstream system cached.
package grades

import (
	"math"

	"github.com/studygrid/studygrid-lms/internal/catalog"
)

type Report struct {
	TermGPA       float64                   `json:"term_gpa"`
	CumulativeGPA float64                   `json:"cumulative_gpa"`
	Courses       []catalog.CourseGrade     `json:"courses"`
	Assignments   []catalog.AssignmentGrade `json:"assignments"`
	PreviousTerms []catalog.Term            `json:"previous_terms"`
}

type Service struct {
	provider catalog.Provider
}

func NewService(p catalog.Provider) *Service { return &Service{provider: p} }

// Report computes the credit-weighted term GPA over graded courses (pending
// grades carry no weight) and folds previous terms into the cumulative GPA.
func (s *Service) Report() (Report, error) {
	gb, err := s.provider.GradeBook()
	if err != nil {
		return Report{}, err
	}

	var termPoints, termCredits float64
	for _, c := range gb.Courses {
		if c.GradePoints == nil {
			continue
		}
		termPoints += *c.GradePoints * float64(c.Credits)
		termCredits += float64(c.Credits)
	}

	cumPoints, cumCredits := termPoints, termCredits
	for _, t := range gb.PreviousTerms {
		cumPoints += t.GPA * float64(t.Credits)
		cumCredits += float64(t.Credits)
	}

	return Report{
		TermGPA:       round2(safeDiv(termPoints, termCredits)),
		CumulativeGPA: round2(safeDiv(cumPoints, cumCredits)),
		Courses:       gb.Courses,
		Assignments:   gb.Assignments,
		PreviousTerms: gb.PreviousTerms,
	}, nil
}

// Letter maps a percentage to the standard letter scale used on transcripts.
func Letter(percentage float64) string {
	switch {
	case percentage >= 93:
		return "A"
	case percentage >= 90:
		return "A-"
	case percentage >= 87:
		return "B+"
	case percentage >= 83:
		return "B"
	case percentage >= 80:
		return "B-"
	case percentage >= 77:
		return "C+"
	case percentage >= 73:
		return "C"
	case percentage >= 70:
		return "C-"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
