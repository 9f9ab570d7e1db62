package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-roster/internal/models"
	"github.com/noah-isme/student-roster/pkg/response"
)

type catalogService interface {
	Courses() []models.Course
	GradeOptions() []models.GradeOption
}

// CatalogHandler exposes the fixed course catalog and the grade scale.
type CatalogHandler struct {
	catalog catalogService
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog catalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Courses godoc
// @Summary List catalog courses
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CatalogHandler) Courses(c *gin.Context) {
	courses := h.catalog.Courses()
	labels := make([]string, 0, len(courses))
	for _, course := range courses {
		labels = append(labels, course.String())
	}
	response.JSON(c, http.StatusOK, courses, nil, map[string]interface{}{"labels": labels})
}

// Grades godoc
// @Summary List grades and their point values
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /grades [get]
func (h *CatalogHandler) Grades(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.GradeOptions(), nil)
}
