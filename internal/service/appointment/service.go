package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/repository"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository, doctorRepo repository.DoctorRepository) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

// Schedule creates a ledger row. Both parents are verified before the
// insert; the store's constraints re-check inside the statement, so a
// violation either way means no row was written.
func (s *Service) Schedule(ctx context.Context, req *model.ScheduleAppointmentRequest) (*model.Appointment, error) {
	if req.VisitDate.IsZero() {
		return nil, apperrors.Validation("appointment date is required", nil)
	}
	if req.VisitTime == "" {
		return nil, apperrors.Validation("appointment time is required", nil)
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

	status := req.Status
	if status == "" {
		status = model.AppointmentStatusScheduled
	}

	appointment := &model.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		VisitDate: req.VisitDate,
		VisitTime: req.VisitTime,
		Reason:    req.Reason,
		Status:    status,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to schedule appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appointment, nil
}

// UpdateStatus replaces the status label. Any short string is accepted:
// the vocabulary is an open question for the domain owners, not a modeled
// state machine.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	appointment.Status = status
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	return appointment, nil
}

// UpdateAppointment mutates date, time, reason, or status. Patient and
// doctor links are fixed at scheduling time.
func (s *Service) UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if req.VisitDate != nil {
		if req.VisitDate.IsZero() {
			return nil, apperrors.Validation("appointment date cannot be empty", nil)
		}
		appointment.VisitDate = *req.VisitDate
	}
	if req.VisitTime != nil {
		if *req.VisitTime == "" {
			return nil, apperrors.Validation("appointment time cannot be empty", nil)
		}
		appointment.VisitTime = *req.VisitTime
	}
	if req.Reason != nil {
		appointment.Reason = req.Reason
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return appointment, nil
}

// ListByDateRange returns appointments with visit dates in [start, end]
// inclusive, ordered by date then time.
func (s *Service) ListByDateRange(ctx context.Context, start, end time.Time) ([]*model.Appointment, error) {
	if start.IsZero() || end.IsZero() {
		return nil, apperrors.Validation("start and end dates are required", nil)
	}
	if end.Before(start) {
		return nil, apperrors.Validation("end date precedes start date", nil)
	}

	appointments, err := s.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
