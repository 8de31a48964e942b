package triage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/errs"
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/platform/queue"
)

// -- Mocks --

type mockRepo struct {
	records map[uuid.UUID]*TriageRecord
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[uuid.UUID]*TriageRecord)}
}

func (m *mockRepo) Create(_ context.Context, rec *TriageRecord) error {
	rec.ID = uuid.New()
	m.records[rec.ID] = rec
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*TriageRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, errs.NotFound("triage record", id)
	}
	return rec, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*TriageRecord, int, error) {
	var result []*TriageRecord
	for _, rec := range m.records {
		if rec.PatientID == patientID {
			result = append(result, rec)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) LinkAppointment(_ context.Context, recordID, appointmentID uuid.UUID) error {
	rec, ok := m.records[recordID]
	if !ok {
		return errs.NotFound("triage record", recordID)
	}
	rec.AppointmentID = &appointmentID
	return nil
}

type mockDirectory struct {
	patients map[uuid.UUID]*identity.Patient
	nurses   map[uuid.UUID]*identity.Nurse
}

func newMockDirectory() *mockDirectory {
	return &mockDirectory{
		patients: make(map[uuid.UUID]*identity.Patient),
		nurses:   make(map[uuid.UUID]*identity.Nurse),
	}
}

func (m *mockDirectory) GetPatient(_ context.Context, id uuid.UUID) (*identity.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, errs.NotFound("patient", id)
	}
	return p, nil
}

func (m *mockDirectory) GetNurse(_ context.Context, id uuid.UUID) (*identity.Nurse, error) {
	n, ok := m.nurses[id]
	if !ok {
		return nil, errs.NotFound("nurse", id)
	}
	return n, nil
}

type mockAppointments struct {
	appointments map[uuid.UUID]*scheduling.Appointment
}

func newMockAppointments() *mockAppointments {
	return &mockAppointments{appointments: make(map[uuid.UUID]*scheduling.Appointment)}
}

func (m *mockAppointments) GetByID(_ context.Context, id uuid.UUID) (*scheduling.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, errs.NotFound("appointment", id)
	}
	return a, nil
}

func (m *mockAppointments) Update(_ context.Context, a *scheduling.Appointment) error {
	m.appointments[a.ID] = a
	return nil
}

type fixture struct {
	svc        *Service
	repo       *mockRepo
	dir        *mockDirectory
	appts      *mockAppointments
	triageQ    *queue.TriageQueue
	physicianQ *queue.PhysicianQueue

	patientID uuid.UUID
	nurseID   uuid.UUID
	physID    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:       newMockRepo(),
		dir:        newMockDirectory(),
		appts:      newMockAppointments(),
		triageQ:    queue.NewTriageQueue(),
		physicianQ: queue.NewPhysicianQueue(),
		patientID:  uuid.New(),
		nurseID:    uuid.New(),
		physID:     uuid.New(),
	}
	f.dir.patients[f.patientID] = &identity.Patient{ID: f.patientID, Name: "Maria Silva"}
	f.dir.nurses[f.nurseID] = &identity.Nurse{ID: f.nurseID, Name: "Ana Souza"}
	f.svc = NewService(f.repo, f.dir, f.appts, f.triageQ, f.physicianQ, zerolog.Nop())
	f.svc.now = func() time.Time { return time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) addAppointment() *scheduling.Appointment {
	a := &scheduling.Appointment{
		ID:          uuid.New(),
		PatientID:   f.patientID,
		PhysicianID: f.physID,
		Status:      scheduling.StatusScheduled,
	}
	f.appts.appointments[a.ID] = a
	return a
}

func (f *fixture) request(appointmentID *uuid.UUID) TriageRequest {
	symptoms := "chest pain"
	return TriageRequest{
		PatientID:     f.patientID,
		AppointmentID: appointmentID,
		Symptoms:      &symptoms,
		Urgency:       "VERY_URGENT",
	}
}

// -- Tests --

func TestCompleteTriage_HandOff(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment()
	f.triageQ.Enqueue(queue.PatientRef{ID: f.patientID, Name: "Maria Silva"})

	rec, err := f.svc.CompleteTriage(context.Background(), f.request(&appt.ID), f.nurseID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.triageQ.Contains(f.patientID) {
		t.Error("expected patient removed from triage queue")
	}
	if appt.Status != scheduling.StatusAwaitingAttendance {
		t.Errorf("expected AWAITING_ATTENDANCE, got %s", appt.Status)
	}
	if rec.AppointmentID == nil || *rec.AppointmentID != appt.ID {
		t.Error("expected record linked to appointment")
	}

	entries := f.physicianQ.ListForPhysician(f.physID)
	if len(entries) != 1 {
		t.Fatalf("expected 1 physician queue entry, got %d", len(entries))
	}
	e := entries[0]
	if e.PatientID != f.patientID || e.PatientName != "Maria Silva" ||
		e.AppointmentID != appt.ID || e.Urgency != "VERY_URGENT" {
		t.Errorf("unexpected queue entry: %+v", e)
	}
}

func TestCompleteTriage_WithoutAppointment(t *testing.T) {
	f := newFixture(t)
	f.triageQ.Enqueue(queue.PatientRef{ID: f.patientID, Name: "Maria Silva"})

	rec, err := f.svc.CompleteTriage(context.Background(), f.request(nil), f.nurseID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.AppointmentID != nil {
		t.Error("expected no appointment link")
	}
	if f.triageQ.Size() != 0 {
		t.Error("expected triage queue cleared")
	}
	if len(f.physicianQ.ListAll()) != 0 {
		t.Error("expected no physician queue entries")
	}
	if len(f.repo.records) != 1 {
		t.Errorf("expected record persisted, got %d", len(f.repo.records))
	}
}

func TestCompleteTriage_UnknownUrgencyLeavesNoState(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment()
	f.triageQ.Enqueue(queue.PatientRef{ID: f.patientID, Name: "Maria Silva"})

	req := f.request(&appt.ID)
	req.Urgency = "CRITICAL"

	_, err := f.svc.CompleteTriage(context.Background(), req, f.nurseID)
	var uu *UnknownUrgencyError
	if !errors.As(err, &uu) {
		t.Fatalf("expected UnknownUrgencyError, got %v", err)
	}
	if len(f.repo.records) != 0 {
		t.Error("expected no record persisted")
	}
	if !f.triageQ.Contains(f.patientID) {
		t.Error("expected patient still in triage queue")
	}
	if appt.Status != scheduling.StatusScheduled {
		t.Errorf("expected appointment untouched, got %s", appt.Status)
	}
}

func TestCompleteTriage_UnknownPatientPropagates(t *testing.T) {
	f := newFixture(t)

	req := f.request(nil)
	req.PatientID = uuid.New()

	_, err := f.svc.CompleteTriage(context.Background(), req, f.nurseID)
	if !errs.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if len(f.repo.records) != 0 {
		t.Error("expected no record persisted")
	}
}

func TestCompleteTriage_UnknownNursePropagates(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CompleteTriage(context.Background(), f.request(nil), uuid.New())
	if !errs.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestCompleteTriage_UnknownAppointmentPropagates(t *testing.T) {
	f := newFixture(t)
	f.triageQ.Enqueue(queue.PatientRef{ID: f.patientID, Name: "Maria Silva"})
	missing := uuid.New()

	_, err := f.svc.CompleteTriage(context.Background(), f.request(&missing), f.nurseID)
	if !errs.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	// The record write and queue removal precede appointment resolution and
	// are not rolled back.
	if len(f.repo.records) != 1 {
		t.Errorf("expected record persisted before failure, got %d", len(f.repo.records))
	}
	if f.triageQ.Contains(f.patientID) {
		t.Error("expected patient removed from triage queue before failure")
	}
	if len(f.physicianQ.ListAll()) != 0 {
		t.Error("expected no physician queue entry")
	}
}

func TestCompleteTriage_TerminalAppointmentRejected(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment()
	appt.Status = scheduling.StatusCancelled

	_, err := f.svc.CompleteTriage(context.Background(), f.request(&appt.ID), f.nurseID)
	if err == nil {
		t.Fatal("expected transition error for cancelled appointment")
	}
	if len(f.physicianQ.ListAll()) != 0 {
		t.Error("expected no physician queue entry")
	}
}

func TestQueueViews(t *testing.T) {
	f := newFixture(t)

	if _, ok := f.svc.NextInQueue(); ok {
		t.Error("expected empty queue")
	}

	f.triageQ.Enqueue(queue.PatientRef{ID: f.patientID, Name: "Maria Silva"})
	other := uuid.New()
	f.triageQ.Enqueue(queue.PatientRef{ID: other, Name: "João Santos"})

	listed := f.svc.Queue()
	if len(listed) != 2 || listed[0].ID != f.patientID || listed[1].ID != other {
		t.Errorf("unexpected queue order: %+v", listed)
	}

	next, ok := f.svc.NextInQueue()
	if !ok || next.ID != f.patientID {
		t.Errorf("expected first patient at head, got %+v", next)
	}
	if f.triageQ.Size() != 2 {
		t.Error("expected peek not to remove")
	}
}
