package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-roster/internal/models"
	"github.com/noah-isme/student-roster/internal/roster"
	appErrors "github.com/noah-isme/student-roster/pkg/errors"
)

// RosterService is the only entry point to a Roster once the process is
// serving requests. One RWMutex guards the whole roster; views are built under
// the lock so no entity pointer escapes it.
type RosterService struct {
	mu        sync.RWMutex
	roster    *roster.Roster
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewRosterService wraps r. metrics may be nil.
func NewRosterService(r *roster.Roster, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *RosterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &RosterService{roster: r, validator: validate, metrics: metrics, logger: logger}
	svc.publishPopulation()
	return svc
}

// Courses returns the catalog in seed order.
func (s *RosterService) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster.Catalog()
}

// GradeOptions lists the selectable grades with their point values.
func (s *RosterService) GradeOptions() []models.GradeOption {
	grades := models.Grades()
	options := make([]models.GradeOption, 0, len(grades))
	for _, g := range grades {
		option := models.GradeOption{Grade: g}
		if points, ok := g.PointValue(); ok {
			p := points
			option.PointValue = &p
			option.CountsInGPA = true
		}
		options = append(options, option)
	}
	return options
}

// record logs and counts the outcome of a mutation and converts domain errors.
// Callers hold the write lock.
func (s *RosterService) record(op string, err error, fields ...zap.Field) error {
	if err == nil {
		s.metrics.ObserveOperation(op, OutcomeOK, "")
		s.publishPopulation()
		s.logger.Info(op, fields...)
		return nil
	}
	appErr := translateError(err)
	s.metrics.ObserveOperation(op, OutcomeRejected, appErr.Code)
	s.logger.Debug(op+" rejected", append(fields, zap.String("code", appErr.Code), zap.Error(err))...)
	return appErr
}

func (s *RosterService) publishPopulation() {
	if s.metrics == nil {
		return
	}
	students := s.roster.Students()
	enrollments := 0
	for _, st := range students {
		enrollments += len(st.Enrollments())
	}
	s.metrics.SetPopulation(len(students), enrollments)
}

// translateError maps roster errors onto API errors. Messages come from the
// domain error so clients can show them as-is.
func translateError(err error) *appErrors.Error {
	var (
		validationErr *roster.ValidationError
		notFoundErr   *roster.NotFoundError
		duplicateErr  *roster.DuplicateEnrollmentError
		indexErr      *roster.IndexOutOfRangeError
		appErr        *appErrors.Error
	)
	switch {
	case errors.As(err, &validationErr):
		return appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, validationErr.Error()), validationErr.Field)
	case errors.As(err, &notFoundErr):
		return appErrors.Clone(appErrors.ErrNotFound, notFoundErr.Error())
	case errors.As(err, &duplicateErr):
		return appErrors.Clone(appErrors.ErrDuplicateEnrollment, duplicateErr.Error())
	case errors.As(err, &indexErr):
		return appErrors.Clone(appErrors.ErrIndexOutOfRange, indexErr.Error())
	case errors.As(err, &appErr):
		return appErr
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
}

func summarize(st *roster.Student) models.StudentSummary {
	gpa := st.GPA()
	return models.StudentSummary{
		ID:         st.ID(),
		Name:       st.Name(),
		Email:      st.Email(),
		Label:      st.String(),
		GPA:        gpa,
		GPADisplay: formatGPA(gpa),
		Courses:    len(st.Enrollments()),
	}
}

func detail(st *roster.Student) *models.StudentDetail {
	enrollments := st.Enrollments()
	rows := make([]models.EnrollmentDetail, 0, len(enrollments))
	for i, e := range enrollments {
		rows = append(rows, enrollmentDetail(i, e))
	}
	return &models.StudentDetail{StudentSummary: summarize(st), Enrollments: rows}
}

func enrollmentDetail(index int, e *roster.Enrollment) models.EnrollmentDetail {
	course := e.Course()
	return models.EnrollmentDetail{
		Index:       index,
		StudentID:   e.StudentID(),
		CourseCode:  course.Code,
		CourseTitle: course.Title,
		Grade:       e.Grade(),
	}
}

func formatGPA(gpa float64) string {
	return fmt.Sprintf("%.2f", gpa)
}
