package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studygrid/studygrid-lms/internal/catalog"
)

func ListCoursesHandler(p catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		courses, err := p.ListCourses(catalog.CourseFilter{
			Query:      q.Get("q"),
			Department: q.Get("department"),
			Level:      q.Get("level"),
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		out := make([]catalog.Course, 0, len(courses))
		for _, c := range courses {
			out = append(out, catalog.StudentView(c))
		}
		writeJSON(w, out)
	}
}

func GetCourseHandler(p catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := p.GetCourse(chi.URLParam(r, "courseID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, catalog.StudentView(c))
	}
}
