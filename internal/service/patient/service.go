package patient

import (
	"context"
	"fmt"

	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/repository"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

type Service struct {
	repo            repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	historyRepo     repository.MedicalHistoryRepository
}

func NewService(repo repository.PatientRepository, appointmentRepo repository.AppointmentRepository, historyRepo repository.MedicalHistoryRepository) *Service {
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		historyRepo:     historyRepo,
	}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("patient name is required", nil)
	}
	if req.BirthDate.IsZero() {
		return nil, apperrors.Validation("patient birth date is required", nil)
	}

	patient := &model.Patient{
		Name:      req.Name,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

// UpdatePatient applies the non-nil fields of req. The id is immutable
// once assigned.
func (s *Service) UpdatePatient(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.Validation("patient name cannot be empty", nil)
		}
		patient.Name = *req.Name
	}
	if req.BirthDate != nil {
		if req.BirthDate.IsZero() {
			return nil, apperrors.Validation("patient birth date cannot be empty", nil)
		}
		patient.BirthDate = *req.BirthDate
	}
	if req.Phone != nil {
		patient.Phone = req.Phone
	}
	if req.Email != nil {
		patient.Email = req.Email
	}
	if req.Address != nil {
		patient.Address = req.Address
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

// DeletePatient refuses while appointments or history rows still
// reference the patient. The restrict constraint in the store backs this
// check up, so a racing insert cannot orphan anything.
func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	hasAppointments, err := s.appointmentRepo.ExistsForPatient(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check patient appointments: %w", err)
	}
	if hasAppointments {
		return apperrors.Conflict("patient has appointments on record", nil)
	}

	hasHistory, err := s.historyRepo.ExistsForPatient(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check patient history: %w", err)
	}
	if hasHistory {
		return apperrors.Conflict("patient has medical history on record", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}
