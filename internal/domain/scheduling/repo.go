package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	ListByDateAndStatus(ctx context.Context, date time.Time, status Status) ([]*Appointment, error)
	ListByPhysicianAndDate(ctx context.Context, physicianID uuid.UUID, date time.Time) ([]*Appointment, error)
	LatestScheduledForPatient(ctx context.Context, patientID uuid.UUID) (*Appointment, error)
}
