package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-roster/internal/models"
	"github.com/noah-isme/student-roster/internal/service"
	appErrors "github.com/noah-isme/student-roster/pkg/errors"
	"github.com/noah-isme/student-roster/pkg/response"
)

type enrollmentService interface {
	Enroll(studentID int, req service.EnrollStudentRequest) (*models.EnrollmentDetail, error)
	Drop(studentID, index int) (*models.StudentDetail, error)
	SetGrade(studentID, index int, req service.SetGradeRequest) (*models.StudentDetail, error)
}

// EnrollmentHandler exposes enrollment endpoints nested under a student.
type EnrollmentHandler struct {
	enrollments enrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments enrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// Create godoc
// @Summary Enroll student in a catalog course
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body service.EnrollStudentRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Router /students/{id}/enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	studentID, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req service.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	enrollment, err := h.enrollments.Enroll(studentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment)
}

// Delete godoc
// @Summary Drop enrollment by position
// @Tags Enrollments
// @Produce json
// @Param id path int true "Student ID"
// @Param index path int true "Enrollment index"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/enrollments/{index} [delete]
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	studentID, ok := intParam(c, "id")
	if !ok {
		return
	}
	index, ok := intParam(c, "index")
	if !ok {
		return
	}
	student, err := h.enrollments.Drop(studentID, index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// SetGrade godoc
// @Summary Assign grade to enrollment
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param index path int true "Enrollment index"
// @Param payload body service.SetGradeRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/enrollments/{index}/grade [put]
func (h *EnrollmentHandler) SetGrade(c *gin.Context) {
	studentID, ok := intParam(c, "id")
	if !ok {
		return
	}
	index, ok := intParam(c, "index")
	if !ok {
		return
	}
	var req service.SetGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.enrollments.SetGrade(studentID, index, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}
