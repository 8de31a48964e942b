package identity

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

// -- Patients --

const patientCols = `id, name, document, phone, email, sex, birth_date, blood_type,
	medical_history, created_at, updated_at`

func (r *repoPG) CreatePatient(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patients (id, name, document, phone, email, sex, birth_date, blood_type, medical_history)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.Name, p.Document, p.Phone, p.Email, p.Sex, p.BirthDate, p.BloodType, p.MedicalHistory,
	)
	return err
}

func (r *repoPG) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("patient", id)
	}
	return p, err
}

func (r *repoPG) GetPatientByDocument(ctx context.Context, document string) (*Patient, error) {
	p, err := scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE document = $1`, document))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFoundKey("patient", document)
	}
	return p, err
}

func (r *repoPG) UpdatePatient(ctx context.Context, p *Patient) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE patients SET
			name=$2, document=$3, phone=$4, email=$5, sex=$6, birth_date=$7,
			blood_type=$8, medical_history=$9, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Document, p.Phone, p.Email, p.Sex, p.BirthDate, p.BloodType, p.MedicalHistory,
	)
	return err
}

func (r *repoPG) DeletePatient(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Document, &p.Phone, &p.Email, &p.Sex,
			&p.BirthDate, &p.BloodType, &p.MedicalHistory, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		patients = append(patients, &p)
	}
	return patients, total, nil
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Document, &p.Phone, &p.Email, &p.Sex,
		&p.BirthDate, &p.BloodType, &p.MedicalHistory, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// -- Physicians --

const physicianCols = `id, name, document, email, phone, license, specialty, created_at, updated_at`

func (r *repoPG) CreatePhysician(ctx context.Context, p *Physician) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO physicians (id, name, document, email, phone, license, specialty)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Name, p.Document, p.Email, p.Phone, p.License, p.Specialty,
	)
	return err
}

func (r *repoPG) GetPhysician(ctx context.Context, id uuid.UUID) (*Physician, error) {
	p, err := scanPhysician(r.conn(ctx).QueryRow(ctx,
		`SELECT `+physicianCols+` FROM physicians WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("physician", id)
	}
	return p, err
}

func (r *repoPG) UpdatePhysician(ctx context.Context, p *Physician) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE physicians SET
			name=$2, document=$3, email=$4, phone=$5, license=$6, specialty=$7, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Document, p.Email, p.Phone, p.License, p.Specialty,
	)
	return err
}

func (r *repoPG) DeletePhysician(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM physicians WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListPhysicians(ctx context.Context, limit, offset int) ([]*Physician, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM physicians`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+physicianCols+` FROM physicians ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPhysicians(rows, total)
}

func (r *repoPG) ListPhysiciansBySpecialty(ctx context.Context, specialty string, limit, offset int) ([]*Physician, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM physicians WHERE specialty = $1`, specialty).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+physicianCols+` FROM physicians WHERE specialty = $1 ORDER BY name LIMIT $2 OFFSET $3`,
		specialty, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPhysicians(rows, total)
}

func (r *repoPG) SearchPhysiciansByName(ctx context.Context, name string, limit, offset int) ([]*Physician, int, error) {
	pattern := "%" + name + "%"
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM physicians WHERE name ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+physicianCols+` FROM physicians WHERE name ILIKE $1 ORDER BY name LIMIT $2 OFFSET $3`,
		pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPhysicians(rows, total)
}

func scanPhysician(row pgx.Row) (*Physician, error) {
	var p Physician
	err := row.Scan(&p.ID, &p.Name, &p.Document, &p.Email, &p.Phone, &p.License,
		&p.Specialty, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPhysicians(rows pgx.Rows, total int) ([]*Physician, int, error) {
	var physicians []*Physician
	for rows.Next() {
		var p Physician
		if err := rows.Scan(&p.ID, &p.Name, &p.Document, &p.Email, &p.Phone, &p.License,
			&p.Specialty, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		physicians = append(physicians, &p)
	}
	return physicians, total, nil
}

// -- Nurses --

const nurseCols = `id, name, document, email, phone, license, created_at, updated_at`

func (r *repoPG) CreateNurse(ctx context.Context, n *Nurse) error {
	n.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO nurses (id, name, document, email, phone, license)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		n.ID, n.Name, n.Document, n.Email, n.Phone, n.License,
	)
	return err
}

func (r *repoPG) GetNurse(ctx context.Context, id uuid.UUID) (*Nurse, error) {
	var n Nurse
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT `+nurseCols+` FROM nurses WHERE id = $1`, id).Scan(
		&n.ID, &n.Name, &n.Document, &n.Email, &n.Phone, &n.License, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("nurse", id)
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repoPG) UpdateNurse(ctx context.Context, n *Nurse) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE nurses SET name=$2, document=$3, email=$4, phone=$5, license=$6, updated_at=NOW()
		WHERE id = $1`,
		n.ID, n.Name, n.Document, n.Email, n.Phone, n.License,
	)
	return err
}

func (r *repoPG) DeleteNurse(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM nurses WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListNurses(ctx context.Context, limit, offset int) ([]*Nurse, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM nurses`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+nurseCols+` FROM nurses ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var nurses []*Nurse
	for rows.Next() {
		var n Nurse
		if err := rows.Scan(&n.ID, &n.Name, &n.Document, &n.Email, &n.Phone, &n.License,
			&n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, 0, err
		}
		nurses = append(nurses, &n)
	}
	return nurses, total, nil
}

// -- Appointment types --

func (r *repoPG) CreateAppointmentType(ctx context.Context, t *AppointmentType) error {
	t.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO appointment_types (id, name, description) VALUES ($1,$2,$3)`,
		t.ID, t.Name, t.Description,
	)
	return err
}

func (r *repoPG) GetAppointmentType(ctx context.Context, id uuid.UUID) (*AppointmentType, error) {
	var t AppointmentType
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, name, description, created_at FROM appointment_types WHERE id = $1`, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("appointment type", id)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repoPG) ListAppointmentTypes(ctx context.Context) ([]*AppointmentType, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name, description, created_at FROM appointment_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*AppointmentType
	for rows.Next() {
		var t AppointmentType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		types = append(types, &t)
	}
	return types, nil
}

func (r *repoPG) DeleteAppointmentType(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM appointment_types WHERE id = $1`, id)
	return err
}
