package catalog

// Question is one multiple-choice item. Options keep catalog order; no
// shuffling happens anywhere downstream.
type Question struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option,omitempty"`
}

type Quiz struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	PassingScore int        `json:"passing_score"`
	Questions    []Question `json:"questions"`
}

type CurriculumWeek struct {
	Week    int      `json:"week"`
	Topic   string   `json:"topic"`
	Details []string `json:"details,omitempty"`
}

type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type Document struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
	Size  string `json:"size"`
}

type CodeRepository struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
	URL         string `json:"url"`
	Code        string `json:"code,omitempty"`
}

type Course struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Instructor  string           `json:"instructor"`
	Description string           `json:"description"`
	Department  string           `json:"department"`
	Level       string           `json:"level"`
	Duration    string           `json:"duration"`
	Enrolled    int              `json:"enrolled"`
	Rating      float64          `json:"rating"`
	Image       string           `json:"image,omitempty"`
	Curriculum  []CurriculumWeek `json:"curriculum,omitempty"`
	Videos      []Video          `json:"videos,omitempty"`
	Documents   []Document       `json:"documents,omitempty"`
	CodeRepos   []CodeRepository `json:"code_repositories,omitempty"`
	Quizzes     []Quiz           `json:"quizzes,omitempty"`
}

type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusCompleted AssignmentStatus = "completed"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Assignment is the catalog-sourced record. Submission fields are filled by
// the workspace on derived copies, never on the catalog's own records.
type Assignment struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Course      string           `json:"course"`
	DueDate     string           `json:"due_date"` // YYYY-MM-DD
	Description string           `json:"description"`
	Status      AssignmentStatus `json:"status"`
	Priority    Priority         `json:"priority"`
}

type EventType string

const (
	EventAssignment EventType = "assignment"
	EventExam       EventType = "exam"
	EventLecture    EventType = "lecture"
	EventMeeting    EventType = "meeting"
)

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Type        EventType `json:"type"`
	Course      string    `json:"course"`
	Description string    `json:"description,omitempty"`
}

type CourseGrade struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Title       string   `json:"title"`
	Grade       string   `json:"grade"` // letter, or "Pending"
	Percentage  *float64 `json:"percentage"`
	Credits     int      `json:"credits"`
	GradePoints *float64 `json:"grade_points"`
}

type AssignmentGrade struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Course   string  `json:"course"`
	Grade    float64 `json:"grade"`
	MaxGrade float64 `json:"max_grade"`
}

type Term struct {
	ID      string  `json:"id"`
	Term    string  `json:"term"`
	GPA     float64 `json:"gpa"`
	Courses int     `json:"courses"`
	Credits int     `json:"credits"`
}

type GradeBook struct {
	Courses       []CourseGrade     `json:"courses"`
	Assignments   []AssignmentGrade `json:"assignments"`
	PreviousTerms []Term            `json:"previous_terms"`
}

type NotificationPrefs struct {
	Email         bool `json:"email"`
	Assignments   bool `json:"assignments"`
	Grades        bool `json:"grades"`
	Announcements bool `json:"announcements"`
	Reminders     bool `json:"reminders"`
}

type Profile struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	StudentID     string            `json:"student_id"`
	Department    string            `json:"department"`
	YearOfStudy   string            `json:"year_of_study"`
	About         string            `json:"about"`
	ProfileImage  string            `json:"profile_image,omitempty"`
	Notifications NotificationPrefs `json:"notifications"`
	PasswordHash  string            `json:"-"` // bcrypt
}
