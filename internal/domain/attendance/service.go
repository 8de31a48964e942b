// Package attendance covers the physician's side of the patient flow: the
// per-physician work queue and the begin/finish consultation lifecycle.
package attendance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/platform/queue"
)

// Appointments is the slice of the scheduling layer the attendance flow needs.
type Appointments interface {
	GetByID(ctx context.Context, id uuid.UUID) (*scheduling.Appointment, error)
	Update(ctx context.Context, a *scheduling.Appointment) error
}

type Service struct {
	appointments Appointments
	physicianQ   *queue.PhysicianQueue
	log          zerolog.Logger
}

func NewService(appointments Appointments, physicianQ *queue.PhysicianQueue, log zerolog.Logger) *Service {
	return &Service{appointments: appointments, physicianQ: physicianQ, log: log}
}

// QueueFor returns the physician's pending hand-offs in arrival order.
func (s *Service) QueueFor(physicianID uuid.UUID) []queue.Entry {
	return s.physicianQ.ListForPhysician(physicianID)
}

// QueueSize returns how many patients wait for the physician.
func (s *Service) QueueSize(physicianID uuid.UUID) int {
	return s.physicianQ.CountForPhysician(physicianID)
}

// Begin moves the appointment into IN_ATTENDANCE and clears the patient from
// the physician queue.
func (s *Service) Begin(ctx context.Context, appointmentID uuid.UUID) (*scheduling.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := appt.TransitionTo(scheduling.StatusInAttendance); err != nil {
		return nil, err
	}
	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("updating appointment: %w", err)
	}
	s.physicianQ.Remove(appt.PatientID)

	s.log.Info().
		Str("appointment_id", appt.ID.String()).
		Str("patient_id", appt.PatientID.String()).
		Msg("consultation started")
	return appt, nil
}

// Finish completes the consultation, recording the outcome.
func (s *Service) Finish(ctx context.Context, appointmentID uuid.UUID, diagnosis, notes *string) (*scheduling.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := appt.TransitionTo(scheduling.StatusCompleted); err != nil {
		return nil, err
	}
	if diagnosis != nil {
		appt.Diagnosis = diagnosis
	}
	if notes != nil {
		appt.Notes = notes
	}
	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("updating appointment: %w", err)
	}
	return appt, nil
}
