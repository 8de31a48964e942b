package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/platform/queue"
)

// Directory resolves the patient being triaged and the nurse performing it.
type Directory interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*identity.Patient, error)
	GetNurse(ctx context.Context, id uuid.UUID) (*identity.Nurse, error)
}

// Appointments is the slice of the scheduling layer the triage flow needs.
type Appointments interface {
	GetByID(ctx context.Context, id uuid.UUID) (*scheduling.Appointment, error)
	Update(ctx context.Context, a *scheduling.Appointment) error
}

type Service struct {
	repo         Repository
	dir          Directory
	appointments Appointments
	triageQ      *queue.TriageQueue
	physicianQ   *queue.PhysicianQueue
	log          zerolog.Logger
	now          func() time.Time
}

func NewService(repo Repository, dir Directory, appointments Appointments,
	triageQ *queue.TriageQueue, physicianQ *queue.PhysicianQueue, log zerolog.Logger) *Service {
	return &Service{
		repo:         repo,
		dir:          dir,
		appointments: appointments,
		triageQ:      triageQ,
		physicianQ:   physicianQ,
		log:          log,
		now:          time.Now,
	}
}

// TriageRequest carries the intake assessment submitted by a nurse.
type TriageRequest struct {
	PatientID     uuid.UUID  `json:"patient_id"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	Weight        *float64   `json:"weight,omitempty"`
	Height        *float64   `json:"height,omitempty"`
	Temperature   *float64   `json:"temperature,omitempty"`
	BloodPressure *string    `json:"blood_pressure,omitempty"`
	HeartRate     *int       `json:"heart_rate,omitempty"`
	Symptoms      *string    `json:"symptoms,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Urgency       string     `json:"urgency"`
}

// CompleteTriage records the assessment, clears the patient from the intake
// queue and, when an appointment is named, hands the patient off to the
// appointment's physician: status moves to AWAITING_ATTENDANCE, the record is
// linked to the appointment, and a queue entry carrying the urgency is added.
// Missing patient, nurse, or appointment references propagate as NotFoundError.
func (s *Service) CompleteTriage(ctx context.Context, req TriageRequest, nurseID uuid.UUID) (*TriageRecord, error) {
	// Classify before any write so an unknown label leaves no partial state.
	urgency, err := ClassifyUrgency(req.Urgency)
	if err != nil {
		return nil, err
	}

	patient, err := s.dir.GetPatient(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.dir.GetNurse(ctx, nurseID); err != nil {
		return nil, err
	}

	rec := &TriageRecord{
		PatientID:     req.PatientID,
		NurseID:       nurseID,
		RecordedAt:    s.now(),
		Weight:        req.Weight,
		Height:        req.Height,
		Temperature:   req.Temperature,
		BloodPressure: req.BloodPressure,
		HeartRate:     req.HeartRate,
		Symptoms:      req.Symptoms,
		Notes:         req.Notes,
		Urgency:       urgency,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("persisting triage record: %w", err)
	}

	s.triageQ.Remove(req.PatientID)

	if req.AppointmentID == nil {
		return rec, nil
	}

	appt, err := s.appointments.GetByID(ctx, *req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := appt.TransitionTo(scheduling.StatusAwaitingAttendance); err != nil {
		return nil, err
	}
	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("updating appointment: %w", err)
	}
	if err := s.repo.LinkAppointment(ctx, rec.ID, appt.ID); err != nil {
		return nil, fmt.Errorf("linking triage record: %w", err)
	}
	rec.AppointmentID = &appt.ID

	s.physicianQ.Enqueue(queue.Entry{
		PatientID:     patient.ID,
		PatientName:   patient.Name,
		PhysicianID:   appt.PhysicianID,
		AppointmentID: appt.ID,
		Urgency:       string(urgency),
	})

	s.log.Info().
		Str("patient_id", patient.ID.String()).
		Str("appointment_id", appt.ID.String()).
		Str("urgency", string(urgency)).
		Msg("patient handed off to physician queue")

	return rec, nil
}

// Queue returns a snapshot of the patients waiting for triage, in arrival
// order.
func (s *Service) Queue() []queue.PatientRef {
	return s.triageQ.List()
}

// NextInQueue peeks at the patient who has waited longest without removing
// them.
func (s *Service) NextInQueue() (queue.PatientRef, bool) {
	return s.triageQ.PeekNext()
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*TriageRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// PatientHistory lists a patient's triage records, most recent first.
func (s *Service) PatientHistory(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*TriageRecord, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}
