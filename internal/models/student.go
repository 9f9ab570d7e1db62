package models

// StudentSummary is the list row for a student.
type StudentSummary struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Label      string  `json:"label"`
	GPA        float64 `json:"gpa"`
	GPADisplay string  `json:"gpa_display"`
	Courses    int     `json:"courses"`
}

// StudentDetail contains a student with its enrollments and computed GPA.
type StudentDetail struct {
	StudentSummary
	Enrollments []EnrollmentDetail `json:"enrollments"`
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	Search   string
	Page     int
	PageSize int
}

// GPAResult reports a student's GPA and how many enrollments contributed to it.
type GPAResult struct {
	StudentID     int     `json:"student_id"`
	GPA           float64 `json:"gpa"`
	GPADisplay    string  `json:"gpa_display"`
	GradedCount   int     `json:"graded_count"`
	EnrolledCount int     `json:"enrolled_count"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
