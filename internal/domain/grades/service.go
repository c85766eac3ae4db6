// Package grades implements the student grading demo: enrolled students,
// recorded scores, and a class report with per-letter distribution.
package grades

import (
	"github.com/regkit/regkit/internal/registry"
)

type Service struct {
	students *registry.Registry[int, Student]
}

func NewService() *Service {
	return &Service{students: registry.New[int, Student]()}
}

// Enroll adds a new student. The student must come from NewStudent.
func (s *Service) Enroll(st Student) error {
	return s.students.Add(st.ID, st)
}

// Withdraw removes a student.
func (s *Service) Withdraw(id int) error {
	return s.students.Remove(id)
}

func (s *Service) Student(id int) (Student, error) {
	return s.students.Get(id)
}

func (s *Service) Students() []Student {
	return s.students.List()
}

// RecordScore appends one score to a student's record. An out-of-range score
// is rejected and the student is left unchanged.
func (s *Service) RecordScore(id, score int) error {
	return s.students.Update(id, func(st Student) (Student, error) {
		if err := ValidateScore(score); err != nil {
			return st, err
		}
		st.Scores = append(append([]int(nil), st.Scores...), score)
		return st, nil
	})
}

// ReportRow is one line of the class report.
type ReportRow struct {
	ID      int
	Name    string
	Average float64
	Letter  string
}

// Report lists every student with their average and letter, in enrollment
// order.
func (s *Service) Report() []ReportRow {
	students := s.students.List()
	rows := make([]ReportRow, 0, len(students))
	for _, st := range students {
		rows = append(rows, ReportRow{ID: st.ID, Name: st.Name, Average: st.Average(), Letter: st.Letter()})
	}
	return rows
}

// Distribution groups students by letter bucket, enrollment order preserved
// within each bucket. Ungraded students land in the N/A bucket.
func (s *Service) Distribution() map[string][]Student {
	return registry.GroupBy(s.students, func(st Student) string { return st.Letter() })
}
