package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/student-roster/internal/models"
	"github.com/noah-isme/student-roster/internal/roster"
	appErrors "github.com/noah-isme/student-roster/pkg/errors"
)

func newTestService(t *testing.T) (*RosterService, *MetricsService) {
	t.Helper()
	r, err := roster.New([]models.Course{
		{Code: "CS101", Title: "Intro to CS"},
		{Code: "CS201", Title: "Data Structures"},
		{Code: "CS301", Title: "Algorithms"},
		{Code: "MATH201", Title: "Discrete Math"},
	}, roster.DefaultIDBase, nil)
	require.NoError(t, err)
	metrics := NewMetricsService()
	return NewRosterService(r, validator.New(), metrics, zap.NewNop()), metrics
}

func requireAppError(t *testing.T, err error, code string, status int) *appErrors.Error {
	t.Helper()
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr), "expected *errors.Error, got %T", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, status, appErr.Status)
	return appErr
}

func TestRosterServiceScenario(t *testing.T) {
	svc, _ := newTestService(t)

	alice, err := svc.CreateStudent(CreateStudentRequest{Name: "Alice Johnson", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1001, alice.ID)
	assert.Equal(t, "1001: Alice Johnson", alice.Label)

	row, err := svc.Enroll(1001, EnrollStudentRequest{CourseCode: "CS101"})
	require.NoError(t, err)
	assert.Equal(t, 0, row.Index)
	assert.Equal(t, models.GradeIncomplete, row.Grade)

	gpa, err := svc.GPA(1001)
	require.NoError(t, err)
	assert.Equal(t, 0.0, gpa.GPA)
	assert.Equal(t, "0.00", gpa.GPADisplay)

	student, err := svc.SetGrade(1001, 0, SetGradeRequest{Grade: "A"})
	require.NoError(t, err)
	assert.Equal(t, 4.0, student.GPA)

	_, err = svc.Enroll(1001, EnrollStudentRequest{CourseCode: "CS201"})
	require.NoError(t, err)
	student, err = svc.SetGrade(1001, 1, SetGradeRequest{Grade: "c"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, student.GPA)
	assert.Equal(t, "3.00", student.GPADisplay)

	_, err = svc.Enroll(1001, EnrollStudentRequest{CourseCode: "CS101"})
	requireAppError(t, err, "DUPLICATE_ENROLLMENT", http.StatusConflict)

	student, err = svc.Drop(1001, 0)
	require.NoError(t, err)
	require.Len(t, student.Enrollments, 1)
	assert.Equal(t, "CS201", student.Enrollments[0].CourseCode)
	assert.Equal(t, models.GradeC, student.Enrollments[0].Grade)
	assert.Equal(t, 0, student.Enrollments[0].Index)
	assert.Equal(t, 2.0, student.GPA)

	gpa, err = svc.GPA(1001)
	require.NoError(t, err)
	assert.Equal(t, 1, gpa.GradedCount)
	assert.Equal(t, 1, gpa.EnrolledCount)
}

func TestRosterServiceValidationErrors(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateStudent(CreateStudentRequest{Name: "Alice", Email: "a@b"})
	appErr := requireAppError(t, err, "VALIDATION_ERROR", http.StatusBadRequest)
	assert.Equal(t, "email", appErr.Field)
	assert.Equal(t, "email has an invalid format", appErr.Message)

	_, err = svc.CreateStudent(CreateStudentRequest{Name: " ", Email: "alice@example.com"})
	appErr = requireAppError(t, err, "VALIDATION_ERROR", http.StatusBadRequest)
	assert.Equal(t, "name", appErr.Field)

	students, pagination := svc.ListStudents(models.StudentFilter{})
	assert.Empty(t, students)
	assert.Equal(t, 0, pagination.TotalCount)
}

func TestRosterServiceNotFoundAndIndexErrors(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreateStudent(CreateStudentRequest{Name: "Alice Johnson", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = svc.GetStudent(42)
	requireAppError(t, err, "NOT_FOUND", http.StatusNotFound)

	_, err = svc.UpdateStudent(42, UpdateStudentRequest{Name: "X", Email: "x@example.com"})
	requireAppError(t, err, "NOT_FOUND", http.StatusNotFound)

	_, err = svc.Enroll(1001, EnrollStudentRequest{CourseCode: "ART100"})
	requireAppError(t, err, "NOT_FOUND", http.StatusNotFound)

	_, err = svc.Drop(1001, 0)
	requireAppError(t, err, "INDEX_OUT_OF_RANGE", http.StatusNotFound)

	_, err = svc.SetGrade(1001, 3, SetGradeRequest{Grade: "B"})
	requireAppError(t, err, "INDEX_OUT_OF_RANGE", http.StatusNotFound)

	_, err = svc.GPA(7)
	requireAppError(t, err, "NOT_FOUND", http.StatusNotFound)

	requireAppError(t, svc.DeleteStudent(7), "NOT_FOUND", http.StatusNotFound)
}

func TestRosterServiceRequestValidation(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreateStudent(CreateStudentRequest{Name: "Alice Johnson", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = svc.Enroll(1001, EnrollStudentRequest{})
	appErr := requireAppError(t, err, "VALIDATION_ERROR", http.StatusBadRequest)
	assert.Equal(t, "course_code", appErr.Field)

	_, err = svc.Enroll(1001, EnrollStudentRequest{CourseCode: "CS101"})
	require.NoError(t, err)

	_, err = svc.SetGrade(1001, 0, SetGradeRequest{Grade: "Z"})
	appErr = requireAppError(t, err, "VALIDATION_ERROR", http.StatusBadRequest)
	assert.Equal(t, "grade", appErr.Field)

	_, err = svc.SetGrade(1001, 0, SetGradeRequest{})
	requireAppError(t, err, "VALIDATION_ERROR", http.StatusBadRequest)

	student, err := svc.GetStudent(1001)
	require.NoError(t, err)
	assert.Equal(t, models.GradeIncomplete, student.Enrollments[0].Grade)
}

func TestRosterServiceUpdateAndDelete(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreateStudent(CreateStudentRequest{Name: "Alice Johnson", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = svc.Enroll(1001, EnrollStudentRequest{CourseCode: "CS301"})
	require.NoError(t, err)

	updated, err := svc.UpdateStudent(1001, UpdateStudentRequest{Name: " Alice Smith ", Email: "asmith@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", updated.Name)
	assert.Equal(t, "asmith@example.com", updated.Email)
	assert.Len(t, updated.Enrollments, 1)

	require.NoError(t, svc.DeleteStudent(1001))
	_, err = svc.GetStudent(1001)
	requireAppError(t, err, "NOT_FOUND", http.StatusNotFound)

	next, err := svc.CreateStudent(CreateStudentRequest{Name: "Brian Park", Email: "brian@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1002, next.ID)
}

func TestRosterServiceListStudents(t *testing.T) {
	svc, _ := newTestService(t)
	for _, in := range []CreateStudentRequest{
		{Name: "Alice Johnson", Email: "alice@example.com"},
		{Name: "Brian Park", Email: "brian@example.com"},
		{Name: "Carla Johnson", Email: "carla@school.edu"},
	} {
		_, err := svc.CreateStudent(in)
		require.NoError(t, err)
	}

	all, pagination := svc.ListStudents(models.StudentFilter{})
	require.Len(t, all, 3)
	assert.Equal(t, []int{1001, 1002, 1003}, []int{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, defaultPageSize, pagination.PageSize)

	johnsons, pagination := svc.ListStudents(models.StudentFilter{Search: "johnson"})
	assert.Len(t, johnsons, 2)
	assert.Equal(t, 2, pagination.TotalCount)

	byEmail, _ := svc.ListStudents(models.StudentFilter{Search: "school.edu"})
	require.Len(t, byEmail, 1)
	assert.Equal(t, 1003, byEmail[0].ID)

	byID, _ := svc.ListStudents(models.StudentFilter{Search: "1002"})
	require.Len(t, byID, 1)
	assert.Equal(t, "Brian Park", byID[0].Name)

	page2, pagination := svc.ListStudents(models.StudentFilter{Page: 2, PageSize: 2})
	require.Len(t, page2, 1)
	assert.Equal(t, 1003, page2[0].ID)
	assert.Equal(t, 3, pagination.TotalCount)

	beyond, _ := svc.ListStudents(models.StudentFilter{Page: 5, PageSize: 2})
	assert.Empty(t, beyond)

	capped, pagination := svc.ListStudents(models.StudentFilter{PageSize: 1000})
	assert.Len(t, capped, 3)
	assert.Equal(t, maxPageSize, pagination.PageSize)
}

func TestRosterServiceCatalogAndGrades(t *testing.T) {
	svc, _ := newTestService(t)

	courses := svc.Courses()
	require.Len(t, courses, 4)
	assert.Equal(t, "MATH201", courses[3].Code)

	options := svc.GradeOptions()
	require.Len(t, options, 6)
	require.NotNil(t, options[0].PointValue)
	assert.Equal(t, 4.0, *options[0].PointValue)
	assert.True(t, options[4].CountsInGPA)
	require.NotNil(t, options[4].PointValue)
	assert.Equal(t, 0.0, *options[4].PointValue)
	assert.Equal(t, models.GradeIncomplete, options[5].Grade)
	assert.Nil(t, options[5].PointValue)
	assert.False(t, options[5].CountsInGPA)
}

func TestRosterServiceMetrics(t *testing.T) {
	svc, metrics := newTestService(t)

	_, err := svc.CreateStudent(CreateStudentRequest{Name: "Alice Johnson", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = svc.Enroll(1001, EnrollStudentRequest{CourseCode: "CS101"})
	require.NoError(t, err)
	_, err = svc.Enroll(1001, EnrollStudentRequest{CourseCode: "CS101"})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.operations.WithLabelValues("add_student", OutcomeOK, "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.operations.WithLabelValues("enroll", OutcomeOK, "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.operations.WithLabelValues("enroll", OutcomeRejected, "DUPLICATE_ENROLLMENT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.students))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.enrollments))

	_, err = svc.Drop(1001, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.enrollments))
}

func TestRosterServiceWithoutMetrics(t *testing.T) {
	r, err := roster.New(nil, 0, nil)
	require.NoError(t, err)
	svc := NewRosterService(r, nil, nil, nil)

	_, err = svc.CreateStudent(CreateStudentRequest{Name: "Alice Johnson", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = svc.Enroll(1001, EnrollStudentRequest{CourseCode: "CS101"})
	requireAppError(t, err, "NOT_FOUND", http.StatusNotFound)
}

func TestTranslateErrorFallsBackToInternal(t *testing.T) {
	appErr := translateError(errors.New("unexpected"))
	assert.Equal(t, appErrors.ErrInternal.Code, appErr.Code)

	typed := appErrors.Clone(appErrors.ErrConflict, "already there")
	assert.Same(t, typed, translateError(typed))
}

func TestRosterServiceConcurrentAccess(t *testing.T) {
	svc, _ := newTestService(t)
	const workers = 32

	ids := make(chan int, workers)
	done := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			st, err := svc.CreateStudent(CreateStudentRequest{Name: "Concurrent", Email: "c@example.com"})
			if err != nil {
				return
			}
			ids <- st.ID
			_, _ = svc.Enroll(st.ID, EnrollStudentRequest{CourseCode: "CS101"})
			_, _ = svc.SetGrade(st.ID, 0, SetGradeRequest{Grade: "B"})
			_, _ = svc.GPA(st.ID)
			svc.ListStudents(models.StudentFilter{})
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)

	all, pagination := svc.ListStudents(models.StudentFilter{PageSize: maxPageSize})
	assert.Equal(t, workers, pagination.TotalCount)
	for _, st := range all {
		assert.Equal(t, 3.0, st.GPA)
	}
}
