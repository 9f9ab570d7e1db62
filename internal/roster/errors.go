package roster

import "fmt"

// ValidationError reports rejected student input. Field is "name", "email" or "grade".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown student id or course code.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Key)
}

// DuplicateEnrollmentError reports an enroll attempt for a course the student already holds.
type DuplicateEnrollmentError struct {
	StudentID  int
	CourseCode string
}

func (e *DuplicateEnrollmentError) Error() string {
	return fmt.Sprintf("student %d is already enrolled in %s", e.StudentID, e.CourseCode)
}

// IndexOutOfRangeError reports a stale or invalid enrollment index.
type IndexOutOfRangeError struct {
	StudentID int
	Index     int
	Len       int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("enrollment index %d out of range for student %d (%d enrollments)", e.Index, e.StudentID, e.Len)
}

func studentNotFound(id int) *NotFoundError {
	return &NotFoundError{Resource: "student", Key: fmt.Sprintf("%d", id)}
}

func courseNotFound(code string) *NotFoundError {
	return &NotFoundError{Resource: "course", Key: code}
}
