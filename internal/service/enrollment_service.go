package service

import (
	"go.uber.org/zap"

	"github.com/noah-isme/student-roster/internal/models"
	appErrors "github.com/noah-isme/student-roster/pkg/errors"
)

// EnrollStudentRequest describes enrollment creation request.
type EnrollStudentRequest struct {
	CourseCode string `json:"course_code" validate:"required"`
}

// SetGradeRequest describes a grade assignment.
type SetGradeRequest struct {
	Grade string `json:"grade" validate:"required"`
}

// Enroll registers a student to a catalog course with an INCOMPLETE grade.
func (s *RosterService) Enroll(studentID int, req EnrollStudentRequest) (*models.EnrollmentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WithField(appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "course_code is required"), "course_code")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fields := []zap.Field{zap.Int("student_id", studentID), zap.String("course_code", req.CourseCode)}
	e, err := s.roster.Enroll(studentID, req.CourseCode)
	if err != nil {
		return nil, s.record("enroll", err, fields...)
	}
	st, err := s.roster.Student(studentID)
	if err != nil {
		return nil, translateError(err)
	}
	index := len(st.Enrollments()) - 1
	_ = s.record("enroll", nil, append(fields, zap.Int("index", index))...)
	row := enrollmentDetail(index, e)
	return &row, nil
}

// Drop removes the enrollment at index and returns the updated student.
func (s *RosterService) Drop(studentID, index int) (*models.StudentDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("drop", s.roster.Drop(studentID, index), zap.Int("student_id", studentID), zap.Int("index", index)); err != nil {
		return nil, err
	}
	st, err := s.roster.Student(studentID)
	if err != nil {
		return nil, translateError(err)
	}
	return detail(st), nil
}

// SetGrade assigns a grade to the enrollment at index and returns the updated student.
func (s *RosterService) SetGrade(studentID, index int, req SetGradeRequest) (*models.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WithField(appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "grade is required"), "grade")
	}
	grade, err := models.ParseGrade(req.Grade)
	if err != nil {
		return nil, appErrors.WithField(appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "grade is not a recognised grade"), "grade")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fields := []zap.Field{zap.Int("student_id", studentID), zap.Int("index", index), zap.String("grade", string(grade))}
	if err := s.record("set_grade", s.roster.SetGrade(studentID, index, grade), fields...); err != nil {
		return nil, err
	}
	st, err := s.roster.Student(studentID)
	if err != nil {
		return nil, translateError(err)
	}
	return detail(st), nil
}
