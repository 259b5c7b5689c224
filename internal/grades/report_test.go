package grades

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studygrid/studygrid-lms/internal/catalog"
)

func fp(v float64) *float64 { return &v }

func TestReportWeightsByCredits(t *testing.T) {
	p := catalog.NewMemoryProvider(nil, nil, nil, catalog.GradeBook{
		Courses: []catalog.CourseGrade{
			{ID: "g1", Code: "CS101", Grade: "A", Credits: 4, GradePoints: fp(4.0)},
			{ID: "g2", Code: "MATH201", Grade: "B", Credits: 3, GradePoints: fp(3.0)},
			{ID: "g3", Code: "HIST110", Grade: "Pending", Credits: 3}, // no weight
		},
	}, catalog.Profile{})

	r, err := NewService(p).Report()
	require.NoError(t, err)
	// (4*4 + 3*3) / 7
	assert.InDelta(t, 3.57, r.TermGPA, 1e-9)
	assert.InDelta(t, 3.57, r.CumulativeGPA, 1e-9)
	assert.Len(t, r.Courses, 3)
}

func TestReportFoldsPreviousTerms(t *testing.T) {
	p := catalog.NewMemoryProvider(nil, nil, nil, catalog.GradeBook{
		Courses: []catalog.CourseGrade{
			{ID: "g1", Code: "CS101", Grade: "A", Credits: 4, GradePoints: fp(4.0)},
		},
		PreviousTerms: []catalog.Term{
			{ID: "t1", Term: "Fall 2024", GPA: 3.0, Credits: 12},
		},
	}, catalog.Profile{})

	r, err := NewService(p).Report()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, r.TermGPA, 1e-9)
	// (4*4 + 3*12) / 16
	assert.InDelta(t, 3.25, r.CumulativeGPA, 1e-9)
}

func TestReportEmptyGradeBook(t *testing.T) {
	p := catalog.NewMemoryProvider(nil, nil, nil, catalog.GradeBook{}, catalog.Profile{})
	r, err := NewService(p).Report()
	require.NoError(t, err)
	assert.Zero(t, r.TermGPA)
	assert.Zero(t, r.CumulativeGPA)
}

func TestLetter(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{96, "A"}, {93, "A"}, {91, "A-"}, {88, "B+"}, {85, "B"},
		{81, "B-"}, {78, "C+"}, {74, "C"}, {71, "C-"}, {65, "D"}, {40, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Letter(tc.pct), "pct=%v", tc.pct)
	}
}
