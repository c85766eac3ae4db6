package grades

import (
	"fmt"
	"strings"

	"github.com/regkit/regkit/internal/registry"
)

// Student is an enrolled student, keyed by student id.
type Student struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Scores []int  `json:"scores,omitempty"`
}

// NewStudent validates and constructs a Student. Every score must lie in
// [0,100]; out-of-range scores are rejected outright, never clamped.
func NewStudent(id int, name string, scores ...int) (Student, error) {
	if id <= 0 {
		return Student{}, fmt.Errorf("student id must be positive, got %d: %w", id, registry.ErrInvalidValue)
	}
	if strings.TrimSpace(name) == "" {
		return Student{}, fmt.Errorf("student name is required: %w", registry.ErrInvalidValue)
	}
	for _, score := range scores {
		if err := ValidateScore(score); err != nil {
			return Student{}, err
		}
	}
	return Student{ID: id, Name: name, Scores: append([]int(nil), scores...)}, nil
}

// ValidateScore rejects scores outside [0,100].
func ValidateScore(score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("score must be between 0 and 100, got %d: %w", score, registry.ErrInvalidValue)
	}
	return nil
}

// Average is the arithmetic mean of the student's scores, 0 when ungraded.
func (s Student) Average() float64 {
	if len(s.Scores) == 0 {
		return 0
	}
	sum := 0
	for _, score := range s.Scores {
		sum += score
	}
	return float64(sum) / float64(len(s.Scores))
}

// LetterUngraded is the bucket for students with no recorded scores.
const LetterUngraded = "N/A"

// Letter returns the student's grade bucket:
// A 90-100, B 80-89, C 70-79, D 50-69, F 0-49.
func (s Student) Letter() string {
	if len(s.Scores) == 0 {
		return LetterUngraded
	}
	return LetterFor(s.Average())
}

// LetterFor buckets an average already known to be in [0,100].
func LetterFor(avg float64) string {
	switch {
	case avg >= 90:
		return "A"
	case avg >= 80:
		return "B"
	case avg >= 70:
		return "C"
	case avg >= 50:
		return "D"
	default:
		return "F"
	}
}
