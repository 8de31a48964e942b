package triage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/internal/domain/errs"
	"github.com/hms/hms/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const recordCols = `id, patient_id, nurse_id, appointment_id, recorded_at, weight, height,
	temperature, blood_pressure, heart_rate, symptoms, notes, urgency`

func (r *repoPG) Create(ctx context.Context, rec *TriageRecord) error {
	rec.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO triage_records (id, patient_id, nurse_id, appointment_id, recorded_at,
			weight, height, temperature, blood_pressure, heart_rate, symptoms, notes, urgency)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		rec.ID, rec.PatientID, rec.NurseID, rec.AppointmentID, rec.RecordedAt,
		rec.Weight, rec.Height, rec.Temperature, rec.BloodPressure, rec.HeartRate,
		rec.Symptoms, rec.Notes, rec.Urgency,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*TriageRecord, error) {
	var rec TriageRecord
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT `+recordCols+` FROM triage_records WHERE id = $1`, id).Scan(
		&rec.ID, &rec.PatientID, &rec.NurseID, &rec.AppointmentID, &rec.RecordedAt,
		&rec.Weight, &rec.Height, &rec.Temperature, &rec.BloodPressure, &rec.HeartRate,
		&rec.Symptoms, &rec.Notes, &rec.Urgency)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("triage record", id)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*TriageRecord, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM triage_records WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+recordCols+` FROM triage_records WHERE patient_id = $1
		 ORDER BY recorded_at DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*TriageRecord
	for rows.Next() {
		var rec TriageRecord
		if err := rows.Scan(&rec.ID, &rec.PatientID, &rec.NurseID, &rec.AppointmentID, &rec.RecordedAt,
			&rec.Weight, &rec.Height, &rec.Temperature, &rec.BloodPressure, &rec.HeartRate,
			&rec.Symptoms, &rec.Notes, &rec.Urgency); err != nil {
			return nil, 0, err
		}
		records = append(records, &rec)
	}
	return records, total, nil
}

func (r *repoPG) LinkAppointment(ctx context.Context, recordID, appointmentID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE triage_records SET appointment_id = $2 WHERE id = $1`, recordID, appointmentID)
	return err
}
