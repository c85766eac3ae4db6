package clinic

import "time"

// Seed populates a service with the demo's sample patients and prescriptions.
func Seed(s *Service) error {
	patients := []struct {
		mrn, name string
		age       int
		allergies []string
	}{
		{"MRN-1001", "Asha Rao", 34, []string{"penicillin"}},
		{"MRN-1002", "Daniel Okafor", 61, nil},
		{"MRN-1003", "Mei Lin", 8, []string{"peanuts", "latex"}},
	}
	for _, row := range patients {
		p, err := NewPatient(row.mrn, row.name, row.age, row.allergies...)
		if err != nil {
			return err
		}
		if err := s.Register(p); err != nil {
			return err
		}
	}

	written := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
	scripts := []struct {
		mrn, medication, dosage string
		refills                 int
	}{
		{"MRN-1001", "Amoxicillin", "500mg twice daily", 1},
		{"MRN-1001", "Ibuprofen", "200mg as needed", 3},
		{"MRN-1002", "Lisinopril", "10mg daily", 5},
		{"MRN-1003", "Cetirizine", "5mg daily", 2},
	}
	for i, row := range scripts {
		rx, err := NewPrescription(row.mrn, row.medication, row.dosage, row.refills, written.AddDate(0, 0, i))
		if err != nil {
			return err
		}
		if err := s.Prescribe(rx); err != nil {
			return err
		}
	}
	return nil
}
