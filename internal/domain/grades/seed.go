package grades

// Seed populates a service with the demo's sample roster.
func Seed(s *Service) error {
	roster := []struct {
		id     int
		name   string
		scores []int
	}{
		{1, "Priya Shah", []int{95, 88, 97}},
		{2, "Tomás Ibarra", []int{72, 68, 81}},
		{3, "Hana Kobayashi", []int{55, 49, 61}},
		{4, "Leo Fontaine", []int{41, 38, 45}},
		{5, "Ingrid Mwangi", nil},
	}
	for _, row := range roster {
		st, err := NewStudent(row.id, row.name, row.scores...)
		if err != nil {
			return err
		}
		if err := s.Enroll(st); err != nil {
			return err
		}
	}
	return nil
}
