package identity

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Patients
	CreatePatient(ctx context.Context, p *Patient) error
	GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetPatientByDocument(ctx context.Context, document string) (*Patient, error)
	UpdatePatient(ctx context.Context, p *Patient) error
	DeletePatient(ctx context.Context, id uuid.UUID) error
	ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error)

	// Physicians
	CreatePhysician(ctx context.Context, p *Physician) error
	GetPhysician(ctx context.Context, id uuid.UUID) (*Physician, error)
	UpdatePhysician(ctx context.Context, p *Physician) error
	DeletePhysician(ctx context.Context, id uuid.UUID) error
	ListPhysicians(ctx context.Context, limit, offset int) ([]*Physician, int, error)
	ListPhysiciansBySpecialty(ctx context.Context, specialty string, limit, offset int) ([]*Physician, int, error)
	SearchPhysiciansByName(ctx context.Context, name string, limit, offset int) ([]*Physician, int, error)

	// Nurses
	CreateNurse(ctx context.Context, n *Nurse) error
	GetNurse(ctx context.Context, id uuid.UUID) (*Nurse, error)
	UpdateNurse(ctx context.Context, n *Nurse) error
	DeleteNurse(ctx context.Context, id uuid.UUID) error
	ListNurses(ctx context.Context, limit, offset int) ([]*Nurse, int, error)

	// Appointment types
	CreateAppointmentType(ctx context.Context, t *AppointmentType) error
	GetAppointmentType(ctx context.Context, id uuid.UUID) (*AppointmentType, error)
	ListAppointmentTypes(ctx context.Context) ([]*AppointmentType, error)
	DeleteAppointmentType(ctx context.Context, id uuid.UUID) error
}
