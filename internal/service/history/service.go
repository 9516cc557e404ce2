package history

import (
	"context"
	"fmt"

	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/repository"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

type Service struct {
	repo        repository.MedicalHistoryRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func NewService(repo repository.MedicalHistoryRepository, patientRepo repository.PatientRepository, doctorRepo repository.DoctorRepository) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

// Record logs a visit. There is no appointment foreign key on purpose:
// a walk-in visit gets a history row without any ledger entry.
func (s *Service) Record(ctx context.Context, req *model.RecordHistoryRequest) (*model.MedicalHistoryRecord, error) {
	if req.VisitDate.IsZero() {
		return nil, apperrors.Validation("visit date is required", nil)
	}

	patientExists, err := s.patientRepo.Exists(ctx, req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check patient: %w", err)
	}
	if !patientExists {
		return nil, apperrors.ForeignKey("patient", nil)
	}

	doctorExists, err := s.doctorRepo.Exists(ctx, req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check doctor: %w", err)
	}
	if !doctorExists {
		return nil, apperrors.ForeignKey("doctor", nil)
	}

	record := &model.MedicalHistoryRecord{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		VisitDate: req.VisitDate,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}
	return record, nil
}

func (s *Service) GetRecord(ctx context.Context, id int64) (*model.MedicalHistoryRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get medical history record: %w", err)
	}
	return record, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalHistoryRecord, error) {
	records, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical history: %w", err)
	}
	return records, nil
}
