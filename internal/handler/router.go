package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/student-roster/internal/middleware"
	"github.com/noah-isme/student-roster/internal/service"
	"github.com/noah-isme/student-roster/pkg/config"
	"github.com/noah-isme/student-roster/pkg/logger"
	corsmiddleware "github.com/noah-isme/student-roster/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/student-roster/pkg/middleware/requestid"
)

// NewRouter mounts the roster API. metrics may be nil, in which case /metrics
// is not exposed.
func NewRouter(cfg *config.Config, roster *service.RosterService, metrics *service.MetricsService, logr *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	ops := NewMetricsHandler(metrics)
	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	if metrics != nil {
		r.GET("/metrics", ops.Prometheus)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	catalog := NewCatalogHandler(roster)
	students := NewStudentHandler(roster)
	enrollments := NewEnrollmentHandler(roster)

	api := r.Group(cfg.APIPrefix)
	api.GET("/courses", catalog.Courses)
	api.GET("/grades", catalog.Grades)

	studentRoutes := api.Group("/students")
	{
		studentRoutes.GET("", students.List)
		studentRoutes.POST("", students.Create)
		studentRoutes.GET("/:id", students.Get)
		studentRoutes.PUT("/:id", students.Update)
		studentRoutes.DELETE("/:id", students.Delete)
		studentRoutes.GET("/:id/gpa", students.GPA)

		studentRoutes.POST("/:id/enrollments", enrollments.Create)
		studentRoutes.DELETE("/:id/enrollments/:index", enrollments.Delete)
		studentRoutes.PUT("/:id/enrollments/:index/grade", enrollments.SetGrade)
	}

	return r
}
