package service

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/student-roster/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// CreateStudentRequest holds payload for creating students. Name and email are
// validated by the roster.
type CreateStudentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateStudentRequest holds payload for updating students.
type UpdateStudentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListStudents returns students in id order with pagination metadata. Search
// matches the id, or a case-insensitive substring of name or email.
func (s *RosterService) ListStudents(filter models.StudentFilter) ([]models.StudentSummary, *models.Pagination) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.StudentSummary, 0)
	for _, st := range s.roster.Students() {
		if search != "" &&
			strconv.Itoa(st.ID()) != search &&
			!strings.Contains(strings.ToLower(st.Name()), search) &&
			!strings.Contains(strings.ToLower(st.Email()), search) {
			continue
		}
		matched = append(matched, summarize(st))
	}

	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: len(matched)}
	start := (page - 1) * size
	if start >= len(matched) {
		return []models.StudentSummary{}, pagination
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], pagination
}

// GetStudent returns a student with its enrollments and GPA.
func (s *RosterService) GetStudent(id int) (*models.StudentDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, err := s.roster.Student(id)
	if err != nil {
		return nil, translateError(err)
	}
	return detail(st), nil
}

// CreateStudent registers a new student.
func (s *RosterService) CreateStudent(req CreateStudentRequest) (*models.StudentDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.roster.AddStudent(req.Name, req.Email)
	if err != nil {
		return nil, s.record("add_student", err, zap.String("name", req.Name))
	}
	_ = s.record("add_student", nil, zap.Int("student_id", st.ID()), zap.String("name", st.Name()))
	return detail(st), nil
}

// UpdateStudent overwrites a student's name and email.
func (s *RosterService) UpdateStudent(id int, req UpdateStudentRequest) (*models.StudentDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("update_student", s.roster.UpdateStudent(id, req.Name, req.Email), zap.Int("student_id", id)); err != nil {
		return nil, err
	}
	st, err := s.roster.Student(id)
	if err != nil {
		return nil, translateError(err)
	}
	return detail(st), nil
}

// DeleteStudent removes a student and its enrollments.
func (s *RosterService) DeleteStudent(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record("remove_student", s.roster.RemoveStudent(id), zap.Int("student_id", id))
}

// GPA reports a student's GPA.
func (s *RosterService) GPA(id int) (*models.GPAResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gpa, err := s.roster.GPAOf(id)
	if err != nil {
		return nil, translateError(err)
	}
	st, err := s.roster.Student(id)
	if err != nil {
		return nil, translateError(err)
	}
	return &models.GPAResult{
		StudentID:     id,
		GPA:           gpa,
		GPADisplay:    formatGPA(gpa),
		GradedCount:   st.GradedCount(),
		EnrolledCount: len(st.Enrollments()),
	}, nil
}
