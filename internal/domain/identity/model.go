package identity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a person receiving care at the facility.
type Patient struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Document       string     `json:"document"`
	Phone          *string    `json:"phone,omitempty"`
	Email          *string    `json:"email,omitempty"`
	Sex            *string    `json:"sex,omitempty"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	BloodType      *string    `json:"blood_type,omitempty"`
	MedicalHistory *string    `json:"medical_history,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Physician is a doctor who attends appointments.
type Physician struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	License   string    `json:"license"`
	Specialty string    `json:"specialty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Nurse performs triage intake.
type Nurse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	License   string    `json:"license"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentType categorizes appointments (consultation, follow-up, exam).
type AppointmentType struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
