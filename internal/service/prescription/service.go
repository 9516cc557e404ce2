package prescription

import (
	"context"
	"fmt"

	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/repository"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

type Service struct {
	repo            repository.PrescriptionRepository
	appointmentRepo repository.AppointmentRepository
}

func NewService(repo repository.PrescriptionRepository, appointmentRepo repository.AppointmentRepository) *Service {
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
	}
}

// AddItem inserts exactly one medication row against an existing
// appointment. Multi-drug prescriptions are repeated calls, never a list:
// each row stays independently editable and removable.
func (s *Service) AddItem(ctx context.Context, appointmentID int64, req *model.AddPrescriptionItemRequest) (*model.PrescriptionItem, error) {
	if req.Medication == "" {
		return nil, apperrors.Validation("medication name is required", nil)
	}

	exists, err := s.appointmentRepo.Exists(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check appointment: %w", err)
	}
	if !exists {
		return nil, apperrors.ForeignKey("appointment", nil)
	}

	item := &model.PrescriptionItem{
		AppointmentID: appointmentID,
		Medication:    req.Medication,
		Dosage:        req.Dosage,
		Frequency:     req.Frequency,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add prescription item: %w", err)
	}
	return item, nil
}

func (s *Service) GetItem(ctx context.Context, id int64) (*model.PrescriptionItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get prescription item: %w", err)
	}
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int64, req *model.UpdatePrescriptionItemRequest) (*model.PrescriptionItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get prescription item: %w", err)
	}

	if req.Medication != nil {
		if *req.Medication == "" {
			return nil, apperrors.Validation("medication name cannot be empty", nil)
		}
		item.Medication = *req.Medication
	}
	if req.Dosage != nil {
		item.Dosage = req.Dosage
	}
	if req.Frequency != nil {
		item.Frequency = req.Frequency
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update prescription item: %w", err)
	}
	return item, nil
}

func (s *Service) RemoveItem(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove prescription item: %w", err)
	}
	return nil
}

// ListByAppointment returns the insertion-ordered medications for one
// appointment. An empty slice is a valid result.
func (s *Service) ListByAppointment(ctx context.Context, appointmentID int64) ([]*model.PrescriptionItem, error) {
	items, err := s.repo.ListByAppointment(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescription items: %w", err)
	}
	return items, nil
}
