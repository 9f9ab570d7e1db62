// Package seed builds the startup catalog and optional demo students for a roster.
package seed

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/noah-isme/student-roster/internal/models"
	"github.com/noah-isme/student-roster/internal/roster"
)

// Student is a seeded student before it is registered with a roster.
type Student struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Data is the content of a seed file.
type Data struct {
	Courses  []models.Course `yaml:"courses"`
	Students []Student       `yaml:"students"`
}

// DefaultCourses returns the built-in catalog.
func DefaultCourses() []models.Course {
	return []models.Course{
		{Code: "CS101", Title: "Intro to CS"},
		{Code: "CS201", Title: "Data Structures"},
		{Code: "CS301", Title: "Algorithms"},
		{Code: "MATH201", Title: "Discrete Math"},
	}
}

// DemoStudents returns the students added when demo seeding is on.
func DemoStudents() []Student {
	return []Student{
		{Name: "Alice Johnson", Email: "alice@example.com"},
		{Name: "Brian Park", Email: "brian@example.com"},
	}
}

// Default returns the built-in seed. Demo students are included when demo is true.
func Default(demo bool) Data {
	data := Data{Courses: DefaultCourses()}
	if demo {
		data.Students = DemoStudents()
	}
	return data
}

// Load reads a YAML seed file. An empty course list falls back to the built-in
// catalog; students listed in the file are always kept.
func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(data.Courses) == 0 {
		data.Courses = DefaultCourses()
	}
	return data, nil
}

// Resolve picks the seed for startup: the file when path is set, otherwise the
// built-in defaults. Demo students are appended to file-provided students when demo is true.
func Resolve(path string, demo bool, logger *zap.Logger) (Data, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		logger.Debug("using built-in seed", zap.Bool("demo", demo))
		return Default(demo), nil
	}
	data, err := Load(path)
	if err != nil {
		return Data{}, err
	}
	if demo {
		data.Students = append(data.Students, DemoStudents()...)
	}
	logger.Info("loaded seed file",
		zap.String("path", path),
		zap.Int("courses", len(data.Courses)),
		zap.Int("students", len(data.Students)),
	)
	return data, nil
}

// Build creates a roster over the seeded catalog and registers the seeded
// students through the roster's validated AddStudent. Invalid student entries
// are skipped and reported together; the roster is still returned.
func Build(data Data, idBase int, validate *validator.Validate, logger *zap.Logger) (*roster.Roster, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r, err := roster.New(data.Courses, idBase, validate)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	var errs error
	for _, s := range data.Students {
		student, err := r.AddStudent(s.Name, s.Email)
		if err != nil {
			logger.Warn("skipping seed student", zap.String("name", s.Name), zap.Error(err))
			errs = errors.Join(errs, fmt.Errorf("seed student %q: %w", s.Name, err))
			continue
		}
		logger.Debug("seeded student", zap.Int("student_id", student.ID()), zap.String("name", student.Name()))
	}
	return r, errs
}
