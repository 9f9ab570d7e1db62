package roster

import "github.com/noah-isme/student-roster/internal/models"

// Enrollment links one student to one catalog course and carries the current grade.
type Enrollment struct {
	student *Student
	course  models.Course
	grade   models.Grade
}

func newEnrollment(student *Student, course models.Course) *Enrollment {
	return &Enrollment{student: student, course: course, grade: models.GradeIncomplete}
}

// StudentID returns the id of the owning student.
func (e *Enrollment) StudentID() int { return e.student.id }

// Course returns the enrolled course.
func (e *Enrollment) Course() models.Course { return e.course }

// Grade returns the current grade; new enrollments start INCOMPLETE.
func (e *Enrollment) Grade() models.Grade { return e.grade }

// Any grade may replace any other, last write wins.
func (e *Enrollment) setGrade(g models.Grade) {
	e.grade = g
}
