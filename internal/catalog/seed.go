package catalog

import "golang.org/x/crypto/bcrypt"

// Demo data for the single-student campus. Mirrors what the catalog service
// would hand us in a real deployment.

func seedCourses() []Course {
	return []Course{
		{
			ID:          "cs101",
			Title:       "Introduction to Computer Science",
			Instructor:  "Dr. Alan Smith",
			Description: "Learn the foundational concepts of computer science and programming.",
			Department:  "Computer Science",
			Level:       "Beginner",
			Duration:    "12 weeks",
			Enrolled:    1243,
			Rating:      4.7,
			Image:       "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?q=80&w=500",
			Curriculum: []CurriculumWeek{
				{Week: 1, Topic: "Introduction to Programming Concepts", Details: []string{
					"What is programming?",
					"Basic computer architecture",
					"Introduction to algorithms",
					"Setting up development environment",
				}},
				{Week: 2, Topic: "Basic Data Structures", Details: []string{
					"Arrays and lists",
					"Stacks and queues",
					"Basic data manipulation",
					"Performance considerations",
				}},
				{Week: 3, Topic: "Algorithms Fundamentals", Details: []string{
					"Sorting algorithms",
					"Search techniques",
					"Time and space complexity",
					"Algorithm design principles",
				}},
			},
			Videos: []Video{
				{ID: "v1", Title: "What is Computer Science?", Duration: "45:30", URL: "https://example.com/video1",
					Description: "An introductory lecture on computer science fundamentals"},
				{ID: "v2", Title: "Programming Basics", Duration: "1:02:15", URL: "https://example.com/video2",
					Description: "Learn the basic syntax and concepts of programming"},
			},
			Documents: []Document{
				{ID: "d1", Title: "Course Syllabus", Type: "PDF", URL: "https://example.com/syllabus.pdf", Size: "2.5 MB"},
				{ID: "d2", Title: "Assignment Guidelines", Type: "DOCX", URL: "https://example.com/assignments.docx", Size: "1.2 MB"},
			},
			CodeRepos: []CodeRepository{
				{ID: "r1", Title: "Week 1 Exercises", Description: "Basic programming exercises",
					Language: "Python", URL: "https://github.com/example/week1-exercises"},
			},
			Quizzes: []Quiz{
				{
					ID:           "quiz-cs101-1",
					Title:        "Programming Basics Quiz",
					PassingScore: 2,
					Questions: []Question{
						{
							Prompt: "What is an algorithm?",
							Options: []string{
								"A cooking recipe",
								"A step-by-step procedure to solve a problem",
								"A type of computer hardware",
								"A programming language",
							},
							CorrectOption: 1,
						},
						{
							Prompt: "What does CPU stand for?",
							Options: []string{
								"Computer Processing Unit",
								"Central Processing Unit",
								"Computer Personal Unit",
								"Central Personal Unit",
							},
							CorrectOption: 1,
						},
						{
							Prompt: "Which of these is NOT a programming language?",
							Options: []string{
								"Python",
								"Java",
								"Excel",
								"JavaScript",
							},
							CorrectOption: 2,
						},
					},
				},
			},
		},
		{
			ID:          "math201",
			Title:       "Advanced Mathematics",
			Instructor:  "Dr. Maria Johnson",
			Description: "Deep dive into advanced mathematical concepts and problem-solving techniques.",
			Department:  "Mathematics",
			Level:       "Advanced",
			Duration:    "16 weeks",
			Enrolled:    856,
			Rating:      4.5,
			Image:       "https://images.unsplash.com/photo-1596495577886-d920f1fb7238?q=80&w=500",
		},
		{
			ID:          "psyc101",
			Title:       "Introduction to Psychology",
			Instructor:  "Prof. James Williams",
			Description: "Explore the human mind and behavior through psychological theories and research.",
			Department:  "Psychology",
			Level:       "Beginner",
			Duration:    "10 weeks",
			Enrolled:    1879,
			Rating:      4.8,
			Image:       "https://images.unsplash.com/photo-1576669801518-8bbdb5176f95?q=80&w=500",
		},
		{
			ID:          "ds220",
			Title:       "Data Science and Machine Learning",
			Instructor:  "Dr. Emily Chen",
			Description: "Learn how to analyze data and build machine learning models for real-world applications.",
			Department:  "Computer Science",
			Level:       "Intermediate",
			Duration:    "14 weeks",
			Enrolled:    2156,
			Rating:      4.9,
			Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=500",
		},
		{
			ID:          "hist110",
			Title:       "World History: Ancient Civilizations",
			Instructor:  "Dr. Robert Anderson",
			Description: "Explore the rise and fall of major ancient civilizations around the world.",
			Department:  "History",
			Level:       "Beginner",
			Duration:    "8 weeks",
			Enrolled:    943,
			Rating:      4.6,
			Image:       "https://images.unsplash.com/photo-1461360228754-6e81c478b882?q=80&w=500",
		},
		{
			ID:          "mkt240",
			Title:       "Marketing in the Digital Age",
			Instructor:  "Prof. Sarah Johnson",
			Description: "Learn modern marketing strategies and techniques for the digital landscape.",
			Department:  "Business",
			Level:       "Intermediate",
			Duration:    "10 weeks",
			Enrolled:    1458,
			Rating:      4.5,
			Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?q=80&w=500",
		},
	}
}

func seedAssignments() []Assignment {
	return []Assignment{
		{ID: "a1", Title: "Programming Assignment #3", Course: "Introduction to Computer Science",
			DueDate:     "2025-04-15",
			Description: "Complete the implementation of a linked list with insertion, deletion, and traversal operations.",
			Status:      StatusPending, Priority: PriorityHigh},
		{ID: "a2", Title: "Mathematical Proofs", Course: "Advanced Mathematics",
			DueDate:     "2025-04-10",
			Description: "Solve the given set of mathematical proofs using the techniques learned in class.",
			Status:      StatusPending, Priority: PriorityMedium},
		{ID: "a3", Title: "Psychological Case Study", Course: "Introduction to Psychology",
			DueDate:     "2025-04-05",
			Description: "Analyze the provided case study and write a report on the psychological principles observed.",
			Status:      StatusCompleted, Priority: PriorityMedium},
		{ID: "a4", Title: "Data Analysis Project", Course: "Data Science and Machine Learning",
			DueDate:     "2025-04-20",
			Description: "Clean and analyze the provided dataset and create visualizations to present your findings.",
			Status:      StatusPending, Priority: PriorityHigh},
		{ID: "a5", Title: "Historical Research Paper", Course: "World History: Ancient Civilizations",
			DueDate:     "2025-04-25",
			Description: "Write a research paper on one of the ancient civilizations discussed in class.",
			Status:      StatusPending, Priority: PriorityLow},
		{ID: "a6", Title: "Marketing Strategy Analysis", Course: "Marketing in the Digital Age",
			DueDate:     "2025-04-12",
			Description: "Analyze the marketing strategy of a modern tech company and present your findings.",
			Status:      StatusCompleted, Priority: PriorityMedium},
	}
}

func seedEvents() []Event {
	return []Event{
		{ID: "e1", Title: "Programming Assignment #3", Date: "2025-04-15", Type: EventAssignment,
			Course:      "Introduction to Computer Science",
			Description: "Complete the implementation of a linked list with insertion, deletion, and traversal operations."},
		{ID: "e2", Title: "Mathematical Proofs", Date: "2025-04-10", Type: EventAssignment,
			Course:      "Advanced Mathematics",
			Description: "Solve the given set of mathematical proofs using the techniques learned in class."},
		{ID: "e3", Title: "Midterm Exam", Date: "2025-04-20", Type: EventExam,
			Course:      "Introduction to Computer Science",
			Description: "Covers all material from weeks 1-6 including data structures, algorithms, and programming concepts."},
		{ID: "e4", Title: "Guest Lecturer: Dr. Smith", Date: "2025-04-08", Type: EventLecture,
			Course:      "Introduction to Psychology",
			Description: "Special guest lecture on cognitive behavioral therapy applications in clinical settings."},
		{ID: "e5", Title: "Group Project Meeting", Date: "2025-04-12", Type: EventMeeting,
			Course:      "Data Science and Machine Learning",
			Description: "Team meeting to discuss project milestones, data collection, and analysis approach."},
		{ID: "e6", Title: "Final Paper Submission", Date: "2025-04-25", Type: EventAssignment,
			Course:      "World History: Ancient Civilizations",
			Description: "Submit your research paper on one of the ancient civilizations discussed in class."},
	}
}

func fp(v float64) *float64 { return &v }

func seedGradeBook() GradeBook {
	return GradeBook{
		Courses: []CourseGrade{
			{ID: "g1", Code: "CS101", Title: "Introduction to Computer Science", Grade: "A", Percentage: fp(92), Credits: 4, GradePoints: fp(4.0)},
			{ID: "g2", Code: "MATH201", Title: "Advanced Mathematics", Grade: "B+", Percentage: fp(89), Credits: 3, GradePoints: fp(3.5)},
			{ID: "g3", Code: "PSYC101", Title: "Introduction to Psychology", Grade: "A-", Percentage: fp(91), Credits: 3, GradePoints: fp(3.7)},
			{ID: "g4", Code: "DS220", Title: "Data Science and Machine Learning", Grade: "Pending", Credits: 4},
			{ID: "g5", Code: "HIST110", Title: "World History: Ancient Civilizations", Grade: "A", Percentage: fp(94), Credits: 3, GradePoints: fp(4.0)},
			{ID: "g6", Code: "MKT240", Title: "Marketing in the Digital Age", Grade: "B", Percentage: fp(85), Credits: 3, GradePoints: fp(3.0)},
		},
		Assignments: []AssignmentGrade{
			{ID: "ag1", Title: "Programming Assignment #1", Course: "Introduction to Computer Science", Grade: 95, MaxGrade: 100},
			{ID: "ag2", Title: "Programming Assignment #2", Course: "Introduction to Computer Science", Grade: 88, MaxGrade: 100},
			{ID: "ag3", Title: "Midterm Exam", Course: "Introduction to Computer Science", Grade: 92, MaxGrade: 100},
			{ID: "ag4", Title: "Math Problem Set #1", Course: "Advanced Mathematics", Grade: 87, MaxGrade: 100},
			{ID: "ag5", Title: "Math Problem Set #2", Course: "Advanced Mathematics", Grade: 91, MaxGrade: 100},
			{ID: "ag6", Title: "Psychology Case Study", Course: "Introduction to Psychology", Grade: 94, MaxGrade: 100},
		},
		PreviousTerms: []Term{
			{ID: "t1", Term: "Fall 2024", GPA: 3.62, Courses: 5, Credits: 16},
			{ID: "t2", Term: "Spring 2024", GPA: 3.75, Courses: 5, Credits: 15},
			{ID: "t3", Term: "Fall 2023", GPA: 3.56, Courses: 6, Credits: 18},
		},
	}
}

func seedProfile() Profile {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		// DefaultCost with a short password cannot fail
		panic(err)
	}
	return Profile{
		ID:          "u1",
		Name:        "John Doe",
		Email:       "john.doe@example.com",
		Phone:       "+1 (555) 123-4567",
		StudentID:   "S123456789",
		Department:  "Computer Science",
		YearOfStudy: "3rd Year",
		About:       "I'm a Computer Science student interested in AI, machine learning, and web development.",
		ProfileImage: "/placeholder-user.jpg",
		Notifications: NotificationPrefs{
			Email:         true,
			Assignments:   true,
			Grades:        true,
			Announcements: true,
			Reminders:     false,
		},
		PasswordHash: string(hash),
	}
}
