package roster

import (
	"fmt"

	"github.com/noah-isme/student-roster/internal/models"
)

// Student is a learner tracked by a Roster. Fields are only written through
// Roster operations; callers get read accessors.
type Student struct {
	id          int
	name        string
	email       string
	enrollments []*Enrollment
}

func newStudent(id int, name, email string) *Student {
	return &Student{id: id, name: name, email: email}
}

// ID returns the immutable roster-assigned identifier.
func (s *Student) ID() int { return s.id }

// Name returns the student's display name.
func (s *Student) Name() string { return s.name }

// Email returns the student's contact address.
func (s *Student) Email() string { return s.email }

// Enrollments returns the student's enrollments in insertion order. The slice
// is a copy.
func (s *Student) Enrollments() []*Enrollment {
	out := make([]*Enrollment, len(s.enrollments))
	copy(out, s.enrollments)
	return out
}

// GPA is the unweighted mean grade point over graded enrollments. It is 0 when
// nothing has been graded yet.
func (s *Student) GPA() float64 {
	var total float64
	count := 0
	for _, e := range s.enrollments {
		points, ok := e.grade.PointValue()
		if !ok {
			continue
		}
		total += points
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// GradedCount returns how many enrollments count towards the GPA.
func (s *Student) GradedCount() int {
	count := 0
	for _, e := range s.enrollments {
		if _, ok := e.grade.PointValue(); ok {
			count++
		}
	}
	return count
}

func (s *Student) String() string {
	return fmt.Sprintf("%d: %s", s.id, s.name)
}

func (s *Student) rename(name string) {
	s.name = name
}

func (s *Student) changeEmail(email string) {
	s.email = email
}

func (s *Student) holds(code string) bool {
	for _, e := range s.enrollments {
		if e.course.Code == code {
			return true
		}
	}
	return false
}

func (s *Student) enrollment(index int) (*Enrollment, error) {
	if index < 0 || index >= len(s.enrollments) {
		return nil, &IndexOutOfRangeError{StudentID: s.id, Index: index, Len: len(s.enrollments)}
	}
	return s.enrollments[index], nil
}

func (s *Student) enroll(course models.Course) *Enrollment {
	e := newEnrollment(s, course)
	s.enrollments = append(s.enrollments, e)
	return e
}

func (s *Student) drop(index int) error {
	if _, err := s.enrollment(index); err != nil {
		return err
	}
	s.enrollments = append(s.enrollments[:index:index], s.enrollments[index+1:]...)
	return nil
}
