package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/domain/errs"
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/domain/triage"
	"github.com/hms/hms/internal/platform/db"
)

func strPtr(s string) *string { return &s }

func uniqueDocument(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}

func createTestPatient(t *testing.T, ctx context.Context, repo identity.Repository, name string) *identity.Patient {
	t.Helper()
	p := &identity.Patient{
		Name:     name,
		Document: uniqueDocument("doc"),
		Phone:    strPtr("555-0100"),
	}
	if err := repo.CreatePatient(ctx, p); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return p
}

func createTestPhysician(t *testing.T, ctx context.Context, repo identity.Repository, specialty string) *identity.Physician {
	t.Helper()
	p := &identity.Physician{
		Name:      "Dr. Test",
		Document:  uniqueDocument("phy"),
		License:   uniqueDocument("crm"),
		Specialty: specialty,
	}
	if err := repo.CreatePhysician(ctx, p); err != nil {
		t.Fatalf("create physician: %v", err)
	}
	return p
}

func createTestNurse(t *testing.T, ctx context.Context, repo identity.Repository) *identity.Nurse {
	t.Helper()
	n := &identity.Nurse{
		Name:     "Nurse Test",
		Document: uniqueDocument("nur"),
		License:  uniqueDocument("coren"),
	}
	if err := repo.CreateNurse(ctx, n); err != nil {
		t.Fatalf("create nurse: %v", err)
	}
	return n
}

func createTestAppointmentType(t *testing.T, ctx context.Context, repo identity.Repository) *identity.AppointmentType {
	t.Helper()
	at := &identity.AppointmentType{
		Name:        "General Consultation " + uuid.New().String()[:8],
		Description: strPtr("routine visit"),
	}
	if err := repo.CreateAppointmentType(ctx, at); err != nil {
		t.Fatalf("create appointment type: %v", err)
	}
	return at
}

func TestPatientLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := identity.NewRepo(globalDB.Pool)

	p := createTestPatient(t, ctx, repo, "Alice Johnson")

	got, err := repo.GetPatientByDocument(ctx, p.Document)
	if err != nil {
		t.Fatalf("get by document: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("get by document returned %s, want %s", got.ID, p.ID)
	}

	// Document is unique
	dup := &identity.Patient{Name: "Imposter", Document: p.Document}
	if err := repo.CreatePatient(ctx, dup); err == nil {
		t.Error("expected duplicate document insert to fail")
	}

	got.Name = "Alice J. Smith"
	got.BloodType = strPtr("O+")
	if err := repo.UpdatePatient(ctx, got); err != nil {
		t.Fatalf("update patient: %v", err)
	}
	reloaded, err := repo.GetPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("get patient: %v", err)
	}
	if reloaded.Name != "Alice J. Smith" {
		t.Errorf("name = %q after update", reloaded.Name)
	}
	if reloaded.BloodType == nil || *reloaded.BloodType != "O+" {
		t.Error("blood type not persisted")
	}

	if err := repo.DeletePatient(ctx, p.ID); err != nil {
		t.Fatalf("delete patient: %v", err)
	}
	if _, err := repo.GetPatient(ctx, p.ID); !errs.IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestPhysicianSpecialtyFilter(t *testing.T) {
	ctx := context.Background()
	repo := identity.NewRepo(globalDB.Pool)

	specialty := "cardiology-" + uuid.New().String()[:8]
	createTestPhysician(t, ctx, repo, specialty)
	createTestPhysician(t, ctx, repo, specialty)
	createTestPhysician(t, ctx, repo, "dermatology")

	list, total, err := repo.ListPhysiciansBySpecialty(ctx, specialty, 10, 0)
	if err != nil {
		t.Fatalf("list by specialty: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Errorf("got %d physicians (total %d), want 2", len(list), total)
	}
	for _, p := range list {
		if p.Specialty != specialty {
			t.Errorf("unexpected specialty %q in filtered list", p.Specialty)
		}
	}
}

func TestAppointmentRoundTrip(t *testing.T) {
	ctx := context.Background()
	idRepo := identity.NewRepo(globalDB.Pool)
	apptRepo := scheduling.NewRepo(globalDB.Pool)

	patient := createTestPatient(t, ctx, idRepo, "Bob Martin")
	physician := createTestPhysician(t, ctx, idRepo, "general")
	apptType := createTestAppointmentType(t, ctx, idRepo)

	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	appt := &scheduling.Appointment{
		PatientID:         patient.ID,
		PhysicianID:       physician.ID,
		AppointmentTypeID: apptType.ID,
		Date:              date,
		StartTime:         "09:00",
		EndTime:           "09:30",
		Status:            scheduling.StatusScheduled,
	}
	if err := apptRepo.Create(ctx, appt); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	latest, err := apptRepo.LatestScheduledForPatient(ctx, patient.ID)
	if err != nil {
		t.Fatalf("latest scheduled: %v", err)
	}
	if latest.ID != appt.ID {
		t.Errorf("latest scheduled = %s, want %s", latest.ID, appt.ID)
	}

	byDate, err := apptRepo.ListByDateAndStatus(ctx, date, scheduling.StatusScheduled)
	if err != nil {
		t.Fatalf("list by date and status: %v", err)
	}
	found := false
	for _, a := range byDate {
		if a.ID == appt.ID {
			found = true
		}
	}
	if !found {
		t.Error("appointment missing from date/status listing")
	}

	agenda, err := apptRepo.ListByPhysicianAndDate(ctx, physician.ID, date)
	if err != nil {
		t.Fatalf("physician agenda: %v", err)
	}
	if len(agenda) != 1 {
		t.Errorf("agenda has %d entries, want 1", len(agenda))
	}

	latest.Status = scheduling.StatusCancelled
	if err := apptRepo.Update(ctx, latest); err != nil {
		t.Fatalf("update appointment: %v", err)
	}
	if _, err := apptRepo.LatestScheduledForPatient(ctx, patient.ID); !errs.IsNotFound(err) {
		t.Errorf("expected no scheduled appointment after cancel, got %v", err)
	}
}

func TestTriageRecordLinking(t *testing.T) {
	ctx := context.Background()
	idRepo := identity.NewRepo(globalDB.Pool)
	apptRepo := scheduling.NewRepo(globalDB.Pool)
	triageRepo := triage.NewRepo(globalDB.Pool)

	patient := createTestPatient(t, ctx, idRepo, "Carol White")
	physician := createTestPhysician(t, ctx, idRepo, "general")
	nurse := createTestNurse(t, ctx, idRepo)
	apptType := createTestAppointmentType(t, ctx, idRepo)

	appt := &scheduling.Appointment{
		PatientID:         patient.ID,
		PhysicianID:       physician.ID,
		AppointmentTypeID: apptType.ID,
		Date:              time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		StartTime:         "10:00",
		EndTime:           "10:30",
		Status:            scheduling.StatusInTriage,
	}
	if err := apptRepo.Create(ctx, appt); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	weight := 72.5
	hr := 88
	rec := &triage.TriageRecord{
		PatientID:  patient.ID,
		NurseID:    nurse.ID,
		RecordedAt: time.Now().UTC(),
		Weight:     &weight,
		HeartRate:  &hr,
		Symptoms:   strPtr("chest pain"),
		Urgency:    triage.UrgencyVeryUrgent,
	}
	if err := triageRepo.Create(ctx, rec); err != nil {
		t.Fatalf("create triage record: %v", err)
	}

	if err := triageRepo.LinkAppointment(ctx, rec.ID, appt.ID); err != nil {
		t.Fatalf("link appointment: %v", err)
	}

	got, err := triageRepo.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get triage record: %v", err)
	}
	if got.AppointmentID == nil || *got.AppointmentID != appt.ID {
		t.Error("appointment link not persisted")
	}
	if got.Urgency != triage.UrgencyVeryUrgent {
		t.Errorf("urgency = %q, want %q", got.Urgency, triage.UrgencyVeryUrgent)
	}

	history, total, err := triageRepo.ListByPatient(ctx, patient.ID, 10, 0)
	if err != nil {
		t.Fatalf("list by patient: %v", err)
	}
	if total != 1 || len(history) != 1 {
		t.Errorf("got %d records (total %d), want 1", len(history), total)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	repo := identity.NewRepo(globalDB.Pool)

	document := uniqueDocument("tx")
	err := db.WithTx(ctx, globalDB.Pool, func(ctx context.Context) error {
		p := &identity.Patient{Name: "Rollback Test", Document: document}
		if err := repo.CreatePatient(ctx, p); err != nil {
			return err
		}
		return fmt.Errorf("forced failure")
	})
	if err == nil {
		t.Fatal("expected WithTx to return the callback error")
	}

	if _, err := repo.GetPatientByDocument(ctx, document); !errs.IsNotFound(err) {
		t.Errorf("expected rollback to discard patient, got %v", err)
	}
}
