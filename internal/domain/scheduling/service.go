package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/platform/queue"
)

// ErrCannotSchedule is the uniform failure returned when an appointment could
// not be created. The specific cause is logged but never exposed to callers,
// so a bad patient id and a bad weekday read the same from the outside.
var ErrCannotSchedule = errors.New("could not schedule appointment")

// Directory resolves the people and catalog entries an appointment refers to.
type Directory interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*identity.Patient, error)
	GetPhysician(ctx context.Context, id uuid.UUID) (*identity.Physician, error)
	GetAppointmentType(ctx context.Context, id uuid.UUID) (*identity.AppointmentType, error)
}

type Service struct {
	repo   Repository
	dir    Directory
	triage *queue.TriageQueue
	log    zerolog.Logger
	now    func() time.Time
}

func NewService(repo Repository, dir Directory, triage *queue.TriageQueue, log zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		dir:    dir,
		triage: triage,
		log:    log,
		now:    time.Now,
	}
}

// ScheduleRequest is the input for scheduling an appointment on the next
// occurrence of a weekday.
type ScheduleRequest struct {
	PatientID         uuid.UUID `json:"patient_id"`
	PhysicianID       uuid.UUID `json:"physician_id"`
	AppointmentTypeID uuid.UUID `json:"appointment_type_id"`
	Weekday           string    `json:"weekday"`
	StartTime         string    `json:"start_time"`
	EndTime           string    `json:"end_time"`
}

// Schedule creates an appointment on the next occurrence of the requested
// weekday. Every failure collapses into ErrCannotSchedule with no appointment
// persisted; the cause is logged at warn level.
func (s *Service) Schedule(ctx context.Context, req ScheduleRequest) (*Appointment, error) {
	appt, err := s.schedule(ctx, req)
	if err != nil {
		s.log.Warn().Err(err).
			Str("patient_id", req.PatientID.String()).
			Str("physician_id", req.PhysicianID.String()).
			Msg("scheduling failed")
		return nil, ErrCannotSchedule
	}
	return appt, nil
}

func (s *Service) schedule(ctx context.Context, req ScheduleRequest) (*Appointment, error) {
	if _, err := s.dir.GetPatient(ctx, req.PatientID); err != nil {
		return nil, fmt.Errorf("resolving patient: %w", err)
	}
	if _, err := s.dir.GetPhysician(ctx, req.PhysicianID); err != nil {
		return nil, fmt.Errorf("resolving physician: %w", err)
	}
	if _, err := s.dir.GetAppointmentType(ctx, req.AppointmentTypeID); err != nil {
		return nil, fmt.Errorf("resolving appointment type: %w", err)
	}

	date, err := NextDate(req.Weekday, s.now())
	if err != nil {
		return nil, err
	}

	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q", req.StartTime)
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q", req.EndTime)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("end time must be after start time")
	}

	appt := &Appointment{
		PatientID:         req.PatientID,
		PhysicianID:       req.PhysicianID,
		AppointmentTypeID: req.AppointmentTypeID,
		Date:              date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Status:            StatusScheduled,
	}
	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("persisting appointment: %w", err)
	}
	return appt, nil
}

// ForwardToTriage places the appointment's patient into the triage intake
// queue. It reports false when the appointment or its patient cannot be
// resolved, without raising. The appointment's status is not touched here;
// it changes only when triage completes.
func (s *Service) ForwardToTriage(ctx context.Context, appointmentID uuid.UUID) bool {
	appt, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		s.log.Warn().Err(err).Str("appointment_id", appointmentID.String()).
			Msg("forward to triage failed")
		return false
	}
	patient, err := s.dir.GetPatient(ctx, appt.PatientID)
	if err != nil {
		s.log.Warn().Err(err).Str("appointment_id", appointmentID.String()).
			Msg("forward to triage failed")
		return false
	}
	s.triage.Enqueue(queue.PatientRef{ID: patient.ID, Name: patient.Name})
	return true
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// Cancel moves the appointment to CANCELLED if the status machine allows it.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.transition(ctx, id, StatusCancelled)
}

// MarkNoShow moves the appointment to NO_SHOW if the status machine allows it.
func (s *Service) MarkNoShow(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.transition(ctx, id, StatusNoShow)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, next Status) (*Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appt.TransitionTo(next); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// TodaysAppointments lists appointments scheduled for the current date that
// have not yet entered the flow.
func (s *Service) TodaysAppointments(ctx context.Context) ([]*Appointment, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.repo.ListByDateAndStatus(ctx, today, StatusScheduled)
}

// PatientHistory lists a patient's appointments, most recent first.
func (s *Service) PatientHistory(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// LatestScheduled returns the patient's most recent appointment still in
// SCHEDULED state.
func (s *Service) LatestScheduled(ctx context.Context, patientID uuid.UUID) (*Appointment, error) {
	return s.repo.LatestScheduledForPatient(ctx, patientID)
}

// PhysicianAgenda lists a physician's appointments for a given date.
func (s *Service) PhysicianAgenda(ctx context.Context, physicianID uuid.UUID, date time.Time) ([]*Appointment, error) {
	return s.repo.ListByPhysicianAndDate(ctx, physicianID, date)
}
