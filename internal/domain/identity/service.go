package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/domain/errs"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) RegisterPatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Document == "" {
		return fmt.Errorf("document is required")
	}
	if existing, err := s.repo.GetPatientByDocument(ctx, p.Document); err == nil && existing != nil {
		return fmt.Errorf("document already registered: %s", p.Document)
	} else if err != nil && !errs.IsNotFound(err) {
		return err
	}
	return s.repo.CreatePatient(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetPatient(ctx, id)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := s.repo.GetPatient(ctx, p.ID); err != nil {
		return err
	}
	return s.repo.UpdatePatient(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePatient(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.ListPatients(ctx, limit, offset)
}

func (s *Service) RegisterPhysician(ctx context.Context, p *Physician) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.License == "" {
		return fmt.Errorf("license is required")
	}
	if p.Specialty == "" {
		return fmt.Errorf("specialty is required")
	}
	return s.repo.CreatePhysician(ctx, p)
}

func (s *Service) GetPhysician(ctx context.Context, id uuid.UUID) (*Physician, error) {
	return s.repo.GetPhysician(ctx, id)
}

func (s *Service) UpdatePhysician(ctx context.Context, p *Physician) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := s.repo.GetPhysician(ctx, p.ID); err != nil {
		return err
	}
	return s.repo.UpdatePhysician(ctx, p)
}

func (s *Service) DeletePhysician(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePhysician(ctx, id)
}

// ListPhysicians filters by specialty or name when given; specialty wins
// when both are present.
func (s *Service) ListPhysicians(ctx context.Context, specialty, name string, limit, offset int) ([]*Physician, int, error) {
	if specialty != "" {
		return s.repo.ListPhysiciansBySpecialty(ctx, specialty, limit, offset)
	}
	if name != "" {
		return s.repo.SearchPhysiciansByName(ctx, name, limit, offset)
	}
	return s.repo.ListPhysicians(ctx, limit, offset)
}

func (s *Service) RegisterNurse(ctx context.Context, n *Nurse) error {
	if n.Name == "" {
		return fmt.Errorf("name is required")
	}
	if n.License == "" {
		return fmt.Errorf("license is required")
	}
	return s.repo.CreateNurse(ctx, n)
}

func (s *Service) GetNurse(ctx context.Context, id uuid.UUID) (*Nurse, error) {
	return s.repo.GetNurse(ctx, id)
}

func (s *Service) UpdateNurse(ctx context.Context, n *Nurse) error {
	if n.Name == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := s.repo.GetNurse(ctx, n.ID); err != nil {
		return err
	}
	return s.repo.UpdateNurse(ctx, n)
}

func (s *Service) DeleteNurse(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteNurse(ctx, id)
}

func (s *Service) ListNurses(ctx context.Context, limit, offset int) ([]*Nurse, int, error) {
	return s.repo.ListNurses(ctx, limit, offset)
}

func (s *Service) CreateAppointmentType(ctx context.Context, t *AppointmentType) error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.CreateAppointmentType(ctx, t)
}

func (s *Service) GetAppointmentType(ctx context.Context, id uuid.UUID) (*AppointmentType, error) {
	return s.repo.GetAppointmentType(ctx, id)
}

func (s *Service) ListAppointmentTypes(ctx context.Context) ([]*AppointmentType, error) {
	return s.repo.ListAppointmentTypes(ctx)
}

func (s *Service) DeleteAppointmentType(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAppointmentType(ctx, id)
}
