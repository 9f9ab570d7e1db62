// Package roster holds the student/enrollment/course object graph and the
// validated operations that mutate it. A Roster is not safe for concurrent
// use; callers sharing one must serialise access.
package roster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/student-roster/internal/models"
)

// DefaultIDBase is the first id handed out when no base is configured.
const DefaultIDBase = 1001

// Roster owns the students and the fixed course catalog.
type Roster struct {
	students map[int]*Student
	order    []int
	catalog  []models.Course
	courses  map[string]models.Course
	nextID   int
	validate *validator.Validate
}

// New builds a Roster over the given catalog. Ids start at idBase, or at
// DefaultIDBase when idBase is not positive.
func New(catalog []models.Course, idBase int, validate *validator.Validate) (*Roster, error) {
	if validate == nil {
		validate = validator.New()
	}
	if err := registerRules(validate); err != nil {
		return nil, fmt.Errorf("register validation rules: %w", err)
	}
	if idBase <= 0 {
		idBase = DefaultIDBase
	}
	courses := make(map[string]models.Course, len(catalog))
	ordered := make([]models.Course, 0, len(catalog))
	for _, c := range catalog {
		code := strings.TrimSpace(c.Code)
		if code == "" {
			return nil, fmt.Errorf("catalog entry %q has an empty code", c.Title)
		}
		if _, dup := courses[code]; dup {
			return nil, fmt.Errorf("catalog lists course %s twice", code)
		}
		course := models.Course{Code: code, Title: strings.TrimSpace(c.Title)}
		courses[code] = course
		ordered = append(ordered, course)
	}
	return &Roster{
		students: make(map[int]*Student),
		catalog:  ordered,
		courses:  courses,
		nextID:   idBase,
		validate: validate,
	}, nil
}

// Catalog returns the seeded courses in seed order.
func (r *Roster) Catalog() []models.Course {
	out := make([]models.Course, len(r.catalog))
	copy(out, r.catalog)
	return out
}

// Course looks up a catalog entry by code.
func (r *Roster) Course(code string) (models.Course, error) {
	c, ok := r.courses[code]
	if !ok {
		return models.Course{}, courseNotFound(code)
	}
	return c, nil
}

// Students returns all students ordered by id.
func (r *Roster) Students() []*Student {
	out := make([]*Student, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.students[id])
	}
	return out
}

// Student returns the student with the given id.
func (r *Roster) Student(id int) (*Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, studentNotFound(id)
	}
	return s, nil
}

// AddStudent validates name and email and registers a new student under the next id.
func (r *Roster) AddStudent(name, email string) (*Student, error) {
	name, email, err := r.normalizeStudent(name, email)
	if err != nil {
		return nil, err
	}
	s := newStudent(r.nextID, name, email)
	r.nextID++
	r.students[s.id] = s
	r.order = append(r.order, s.id)
	return s, nil
}

// UpdateStudent overwrites name and email. Identity and enrollments are kept.
func (r *Roster) UpdateStudent(id int, name, email string) error {
	s, err := r.Student(id)
	if err != nil {
		return err
	}
	name, email, err = r.normalizeStudent(name, email)
	if err != nil {
		return err
	}
	s.rename(name)
	s.changeEmail(email)
	return nil
}

// RemoveStudent deletes a student and its enrollments. The id is never reissued.
func (r *Roster) RemoveStudent(id int) error {
	if _, err := r.Student(id); err != nil {
		return err
	}
	delete(r.students, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Enroll appends an INCOMPLETE enrollment for courseCode to the student.
func (r *Roster) Enroll(studentID int, courseCode string) (*Enrollment, error) {
	s, err := r.Student(studentID)
	if err != nil {
		return nil, err
	}
	course, err := r.Course(courseCode)
	if err != nil {
		return nil, err
	}
	if s.holds(course.Code) {
		return nil, &DuplicateEnrollmentError{StudentID: studentID, CourseCode: course.Code}
	}
	return s.enroll(course), nil
}

// Drop removes the enrollment at index, keeping the order of the rest.
func (r *Roster) Drop(studentID, index int) error {
	s, err := r.Student(studentID)
	if err != nil {
		return err
	}
	return s.drop(index)
}

// SetGrade overwrites the grade of the enrollment at index.
func (r *Roster) SetGrade(studentID, index int, grade models.Grade) error {
	s, err := r.Student(studentID)
	if err != nil {
		return err
	}
	e, err := s.enrollment(index)
	if err != nil {
		return err
	}
	if !grade.Valid() {
		return &ValidationError{Field: "grade", Reason: "is not a recognised grade: " + strconv.Quote(string(grade))}
	}
	e.setGrade(grade)
	return nil
}

// GPAOf returns the current GPA of a student.
func (r *Roster) GPAOf(studentID int) (float64, error) {
	s, err := r.Student(studentID)
	if err != nil {
		return 0, err
	}
	return s.GPA(), nil
}
