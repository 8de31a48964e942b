package triage

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, rec *TriageRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*TriageRecord, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*TriageRecord, int, error)
	// LinkAppointment sets the record's appointment back-reference. Records
	// are otherwise immutable once written.
	LinkAppointment(ctx context.Context, recordID, appointmentID uuid.UUID) error
}
