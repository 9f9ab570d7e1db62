package models

// EnrollmentDetail is a student's enrollment as shown to clients. Index is the
// position in the student's enrollment list and is what drop and grade
// operations address.
type EnrollmentDetail struct {
	Index       int    `json:"index"`
	StudentID   int    `json:"student_id"`
	CourseCode  string `json:"course_code"`
	CourseTitle string `json:"course_title"`
	Grade       Grade  `json:"grade"`
}
