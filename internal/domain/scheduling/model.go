package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a scheduled clinical encounter between a patient and a
// physician, carrying a lifecycle status.
type Appointment struct {
	ID                uuid.UUID `json:"id"`
	PatientID         uuid.UUID `json:"patient_id"`
	PhysicianID       uuid.UUID `json:"physician_id"`
	AppointmentTypeID uuid.UUID `json:"appointment_type_id"`
	Date              time.Time `json:"date"`
	StartTime         string    `json:"start_time"`
	EndTime           string    `json:"end_time"`
	Status            Status    `json:"status"`
	Diagnosis         *string   `json:"diagnosis,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
