package scheduling

import (
	"context"
	"errors"
	"time"

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

const apptCols = `id, patient_id, physician_id, appointment_type_id, date,
	start_time, end_time, status, diagnosis, notes, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO appointments (id, patient_id, physician_id, appointment_type_id,
			date, start_time, end_time, status, diagnosis, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		a.ID, a.PatientID, a.PhysicianID, a.AppointmentTypeID,
		a.Date, a.StartTime, a.EndTime, a.Status, a.Diagnosis, a.Notes,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppt(r.conn(ctx).QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("appointment", id)
	}
	return a, err
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE appointments SET
			date=$2, start_time=$3, end_time=$4, status=$5, diagnosis=$6, notes=$7,
			updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.Date, a.StartTime, a.EndTime, a.Status, a.Diagnosis, a.Notes,
	)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE patient_id = $1
		 ORDER BY date DESC, start_time DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	appts, err := collectAppts(rows)
	return appts, total, err
}

func (r *repoPG) ListByDateAndStatus(ctx context.Context, date time.Time, status Status) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE date = $1 AND status = $2
		 ORDER BY start_time`,
		date, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppts(rows)
}

func (r *repoPG) ListByPhysicianAndDate(ctx context.Context, physicianID uuid.UUID, date time.Time) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE physician_id = $1 AND date = $2
		 ORDER BY start_time`,
		physicianID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppts(rows)
}

func (r *repoPG) LatestScheduledForPatient(ctx context.Context, patientID uuid.UUID) (*Appointment, error) {
	a, err := scanAppt(r.conn(ctx).QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments
		 WHERE patient_id = $1 AND status = $2
		 ORDER BY date DESC, start_time DESC LIMIT 1`,
		patientID, StatusScheduled))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("appointment", patientID)
	}
	return a, err
}

func scanAppt(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.PhysicianID, &a.AppointmentTypeID,
		&a.Date, &a.StartTime, &a.EndTime, &a.Status, &a.Diagnosis, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAppts(rows pgx.Rows) ([]*Appointment, error) {
	var appts []*Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.PhysicianID, &a.AppointmentTypeID,
			&a.Date, &a.StartTime, &a.EndTime, &a.Status, &a.Diagnosis, &a.Notes,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		appts = append(appts, &a)
	}
	return appts, nil
}
