// Package clinic implements the patient/prescription registry demo: patients
// keyed by MRN, prescriptions keyed by id, and referential integrity between
// the two.
package clinic

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/regkit/regkit/internal/registry"
)

type Service struct {
	patients      *registry.Registry[string, Patient]
	prescriptions *registry.Registry[uuid.UUID, Prescription]
}

func NewService() *Service {
	return &Service{
		patients:      registry.New[string, Patient](),
		prescriptions: registry.New[uuid.UUID, Prescription](),
	}
}

// Register adds a new patient. The patient must come from NewPatient.
func (s *Service) Register(p Patient) error {
	return s.patients.Add(p.MRN, p)
}

// Discharge removes a patient. A patient with open prescriptions cannot be
// discharged; cancel them first.
func (s *Service) Discharge(mrn string) error {
	if _, err := s.patients.Get(mrn); err != nil {
		return err
	}
	if _, open := s.prescriptions.Find(func(rx Prescription) bool { return rx.PatientMRN == mrn }); open {
		return fmt.Errorf("patient %s has open prescriptions: %w", mrn, registry.ErrInvalidValue)
	}
	return s.patients.Remove(mrn)
}

func (s *Service) Patient(mrn string) (Patient, error) {
	return s.patients.Get(mrn)
}

func (s *Service) Patients() []Patient {
	return s.patients.List()
}

// Prescribe records a prescription. The referenced patient must exist.
func (s *Service) Prescribe(rx Prescription) error {
	if _, err := s.patients.Get(rx.PatientMRN); err != nil {
		return fmt.Errorf("prescribe %s: %w", rx.Medication, err)
	}
	return s.prescriptions.Add(rx.ID, rx)
}

func (s *Service) Cancel(id uuid.UUID) error {
	return s.prescriptions.Remove(id)
}

func (s *Service) Prescription(id uuid.UUID) (Prescription, error) {
	return s.prescriptions.Get(id)
}

func (s *Service) Prescriptions() []Prescription {
	return s.prescriptions.List()
}

// Refill consumes one refill of a prescription. A prescription with no
// refills left cannot be refilled.
func (s *Service) Refill(id uuid.UUID) error {
	return s.prescriptions.Update(id, func(rx Prescription) (Prescription, error) {
		if rx.Refills == 0 {
			return rx, fmt.Errorf("prescription %s has no refills left: %w", rx.ID, registry.ErrInvalidValue)
		}
		rx.Refills--
		return rx, nil
	})
}

// PrescriptionsByPatient groups current prescriptions by patient MRN,
// prescribing order preserved within each group. The grouping is a derived
// view: rebuild it after any prescription change.
func (s *Service) PrescriptionsByPatient() map[string][]Prescription {
	return registry.GroupBy(s.prescriptions, func(rx Prescription) string { return rx.PatientMRN })
}

// Chart returns a patient together with their prescriptions.
func (s *Service) Chart(mrn string) (Chart, error) {
	p, err := s.patients.Get(mrn)
	if err != nil {
		return Chart{}, err
	}
	return Chart{Patient: p, Prescriptions: s.PrescriptionsByPatient()[mrn]}, nil
}
