package clinic

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/regkit/regkit/internal/registry"
)

// MaxAge is the upper bound accepted for a patient's age.
const MaxAge = 130

// Patient is a registered patient, keyed by medical record number.
type Patient struct {
	MRN       string   `json:"mrn"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Allergies []string `json:"allergies,omitempty"`
}

// NewPatient validates and constructs a Patient. Validation failures wrap
// registry.ErrInvalidValue; an invalid patient never reaches a registry.
func NewPatient(mrn, name string, age int, allergies ...string) (Patient, error) {
	if strings.TrimSpace(mrn) == "" {
		return Patient{}, fmt.Errorf("mrn is required: %w", registry.ErrInvalidValue)
	}
	if strings.TrimSpace(name) == "" {
		return Patient{}, fmt.Errorf("patient name is required: %w", registry.ErrInvalidValue)
	}
	if age < 0 || age > MaxAge {
		return Patient{}, fmt.Errorf("age must be between 0 and %d, got %d: %w", MaxAge, age, registry.ErrInvalidValue)
	}
	return Patient{MRN: mrn, Name: name, Age: age, Allergies: allergies}, nil
}

// Prescription is a medication order for one patient.
type Prescription struct {
	ID         uuid.UUID `json:"id"`
	PatientMRN string    `json:"patient_mrn"`
	Medication string    `json:"medication"`
	Dosage     string    `json:"dosage"`
	Refills    int       `json:"refills"`
	WrittenAt  time.Time `json:"written_at"`
}

// NewPrescription validates and constructs a Prescription with a fresh id.
func NewPrescription(patientMRN, medication, dosage string, refills int, writtenAt time.Time) (Prescription, error) {
	if strings.TrimSpace(patientMRN) == "" {
		return Prescription{}, fmt.Errorf("patient mrn is required: %w", registry.ErrInvalidValue)
	}
	if strings.TrimSpace(medication) == "" {
		return Prescription{}, fmt.Errorf("medication is required: %w", registry.ErrInvalidValue)
	}
	if refills < 0 {
		return Prescription{}, fmt.Errorf("refills must not be negative, got %d: %w", refills, registry.ErrInvalidValue)
	}
	return Prescription{
		ID:         uuid.New(),
		PatientMRN: patientMRN,
		Medication: medication,
		Dosage:     dosage,
		Refills:    refills,
		WrittenAt:  writtenAt,
	}, nil
}

// Chart pairs a patient with their prescriptions in prescribing order.
type Chart struct {
	Patient       Patient
	Prescriptions []Prescription
}
