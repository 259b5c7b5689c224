package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SQLProvider serves the catalog from the courses/assignments/events tables.
// Course sub-content (curriculum, videos, documents, repos, quizzes) lives in
// a single content_json column; the gradebook and profile are single-row
// JSON documents.
type SQLProvider struct {
	db *sql.DB
}

func NewSQLProvider(db *sql.DB) *SQLProvider { return &SQLProvider{db: db} }

// courseContent is the shape of the content_json column.
type courseContent struct {
	Curriculum []CurriculumWeek `json:"curriculum,omitempty"`
	Videos     []Video          `json:"videos,omitempty"`
	Documents  []Document       `json:"documents,omitempty"`
	CodeRepos  []CodeRepository `json:"code_repositories,omitempty"`
	Quizzes    []Quiz           `json:"quizzes,omitempty"`
}

// Seed loads the demo data set into an empty database. A non-empty courses
// table is left untouched.
func (s *SQLProvider) Seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range seedCourses() {
		content, err := json.Marshal(courseContent{
			Curriculum: c.Curriculum,
			Videos:     c.Videos,
			Documents:  c.Documents,
			CodeRepos:  c.CodeRepos,
			Quizzes:    c.Quizzes,
		})
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO courses (id,title,instructor,description,department,level,duration,enrolled,rating,image,content_json)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			c.ID, c.Title, c.Instructor, c.Description, c.Department, c.Level, c.Duration, c.Enrolled, c.Rating, c.Image, string(content)); err != nil {
			return fmt.Errorf("seed course %s: %w", c.ID, err)
		}
	}
	for _, a := range seedAssignments() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO assignments (id,title,course,due_date,description,status,priority)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			a.ID, a.Title, a.Course, a.DueDate, a.Description, string(a.Status), string(a.Priority)); err != nil {
			return fmt.Errorf("seed assignment %s: %w", a.ID, err)
		}
	}
	for _, e := range seedEvents() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO events (id,title,date,typ,course,description)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			e.ID, e.Title, e.Date, string(e.Type), e.Course, e.Description); err != nil {
			return fmt.Errorf("seed event %s: %w", e.ID, err)
		}
	}

	gb, err := json.Marshal(seedGradeBook())
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO gradebook (id,data_json) VALUES (1,$1)`, string(gb)); err != nil {
		return fmt.Errorf("seed gradebook: %w", err)
	}

	p := seedProfile()
	pj, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO profile (id,data_json,password_hash) VALUES (1,$1,$2)`,
		string(pj), p.PasswordHash); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}

	return tx.Commit()
}

const courseCols = `id,title,instructor,description,department,level,duration,enrolled,rating,image,content_json`

func scanCourse(row interface{ Scan(...any) error }) (Course, error) {
	var c Course
	var content string
	if err := row.Scan(&c.ID, &c.Title, &c.Instructor, &c.Description, &c.Department, &c.Level,
		&c.Duration, &c.Enrolled, &c.Rating, &c.Image, &content); err != nil {
		return Course{}, err
	}
	var cc courseContent
	if err := json.Unmarshal([]byte(content), &cc); err != nil {
		return Course{}, fmt.Errorf("course %s content: %w", c.ID, err)
	}
	c.Curriculum = cc.Curriculum
	c.Videos = cc.Videos
	c.Documents = cc.Documents
	c.CodeRepos = cc.CodeRepos
	c.Quizzes = cc.Quizzes
	return c, nil
}

func (s *SQLProvider) ListCourses(f CourseFilter) ([]Course, error) {
	rows, err := s.db.Query(`SELECT ` + courseCols + ` FROM courses ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		if matchCourse(c, f) {
			out = append(out, c)
		}
	}
	return out, rows.Err()
}

func (s *SQLProvider) GetCourse(id string) (Course, error) {
	row := s.db.QueryRow(`SELECT `+courseCols+` FROM courses WHERE id=$1`, id)
	c, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Course{}, ErrNotFound
	}
	return c, err
}

func (s *SQLProvider) GetQuiz(id string) (Quiz, error) {
	rows, err := s.db.Query(`SELECT content_json FROM courses`)
	if err != nil {
		return Quiz{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return Quiz{}, err
		}
		var cc courseContent
		if err := json.Unmarshal([]byte(content), &cc); err != nil {
			continue
		}
		for _, q := range cc.Quizzes {
			if q.ID == id {
				return q, nil
			}
		}
	}
	if err := rows.Err(); err != nil {
		return Quiz{}, err
	}
	return Quiz{}, ErrNotFound
}

func (s *SQLProvider) ListAssignments() ([]Assignment, error) {
	rows, err := s.db.Query(`SELECT id,title,course,due_date,description,status,priority FROM assignments ORDER BY due_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assignment
	for rows.Next() {
		var a Assignment
		var status, prio string
		if err := rows.Scan(&a.ID, &a.Title, &a.Course, &a.DueDate, &a.Description, &status, &prio); err != nil {
			return nil, err
		}
		a.Status = AssignmentStatus(strings.ToLower(status))
		a.Priority = Priority(strings.ToLower(prio))
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLProvider) GetAssignment(id string) (Assignment, error) {
	row := s.db.QueryRow(`SELECT id,title,course,due_date,description,status,priority FROM assignments WHERE id=$1`, id)
	var a Assignment
	var status, prio string
	if err := row.Scan(&a.ID, &a.Title, &a.Course, &a.DueDate, &a.Description, &status, &prio); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assignment{}, ErrNotFound
		}
		return Assignment{}, err
	}
	a.Status = AssignmentStatus(strings.ToLower(status))
	a.Priority = Priority(strings.ToLower(prio))
	return a, nil
}

func (s *SQLProvider) ListEvents() ([]Event, error) {
	rows, err := s.db.Query(`SELECT id,title,date,typ,course,description FROM events ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		var typ string
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &typ, &e.Course, &e.Description); err != nil {
			return nil, err
		}
		e.Type = EventType(typ)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLProvider) GradeBook() (GradeBook, error) {
	var data string
	if err := s.db.QueryRow(`SELECT data_json FROM gradebook WHERE id=1`).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GradeBook{}, ErrNotFound
		}
		return GradeBook{}, err
	}
	var gb GradeBook
	if err := json.Unmarshal([]byte(data), &gb); err != nil {
		return GradeBook{}, fmt.Errorf("gradebook: %w", err)
	}
	return gb, nil
}

func (s *SQLProvider) GetProfile() (Profile, error) {
	var data, hash string
	if err := s.db.QueryRow(`SELECT data_json,password_hash FROM profile WHERE id=1`).Scan(&data, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return Profile{}, fmt.Errorf("profile: %w", err)
	}
	p.PasswordHash = hash
	return p, nil
}
