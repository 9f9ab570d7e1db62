package models

import (
	"fmt"
	"strings"
)

// Grade is a letter grade recorded against an enrollment.
type Grade string

// Possible grades. GradeIncomplete carries no grade points.
const (
	GradeA          Grade = "A"
	GradeB          Grade = "B"
	GradeC          Grade = "C"
	GradeD          Grade = "D"
	GradeF          Grade = "F"
	GradeIncomplete Grade = "INCOMPLETE"
)

var gradePoints = map[Grade]float64{
	GradeA: 4,
	GradeB: 3,
	GradeC: 2,
	GradeD: 1,
	GradeF: 0,
}

// Grades returns every grade in display order.
func Grades() []Grade {
	return []Grade{GradeA, GradeB, GradeC, GradeD, GradeF, GradeIncomplete}
}

// Valid reports whether g is one of the enumerated grades.
func (g Grade) Valid() bool {
	if g == GradeIncomplete {
		return true
	}
	_, ok := gradePoints[g]
	return ok
}

// PointValue returns the grade points for g. The boolean is false for
// INCOMPLETE and for values outside the enumeration.
func (g Grade) PointValue() (float64, bool) {
	points, ok := gradePoints[g]
	return points, ok
}

// ParseGrade converts user input such as "a" or "incomplete" into a Grade.
func ParseGrade(raw string) (Grade, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "I" {
		return GradeIncomplete, nil
	}
	g := Grade(normalized)
	if !g.Valid() {
		return "", fmt.Errorf("unknown grade %q", raw)
	}
	return g, nil
}

// GradeOption describes a selectable grade for clients.
type GradeOption struct {
	Grade       Grade    `json:"grade"`
	PointValue  *float64 `json:"point_value,omitempty"`
	CountsInGPA bool     `json:"counts_in_gpa"`
}
