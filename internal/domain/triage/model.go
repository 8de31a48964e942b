package triage

import (
	"time"

	"github.com/google/uuid"
)

// TriageRecord is a nurse's intake assessment of a patient: vitals, symptoms
// and the urgency classification that drives the hand-off to a physician.
type TriageRecord struct {
	ID            uuid.UUID  `json:"id"`
	PatientID     uuid.UUID  `json:"patient_id"`
	NurseID       uuid.UUID  `json:"nurse_id"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	RecordedAt    time.Time  `json:"recorded_at"`
	Weight        *float64   `json:"weight,omitempty"`
	Height        *float64   `json:"height,omitempty"`
	Temperature   *float64   `json:"temperature,omitempty"`
	BloodPressure *string    `json:"blood_pressure,omitempty"`
	HeartRate     *int       `json:"heart_rate,omitempty"`
	Symptoms      *string    `json:"symptoms,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Urgency       Urgency    `json:"urgency"`
}
