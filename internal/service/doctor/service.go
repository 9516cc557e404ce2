package doctor

import (
	"context"
	"fmt"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/repository"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

type Service struct {
	repo            repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	historyRepo     repository.MedicalHistoryRepository
	// registry rows change rarely, so doctor lookups are read-through
	// cached; derived views are never cached
	cache *gocache.Cache
}

func NewService(repo repository.DoctorRepository, appointmentRepo repository.AppointmentRepository, historyRepo repository.MedicalHistoryRepository) *Service {
	return &Service{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		historyRepo:     historyRepo,
		cache:           gocache.New(cacheTTL, cacheCleanup),
	}
}

func cacheKey(id int64) string {
	return "doctor:" + strconv.FormatInt(id, 10)
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("doctor name is required", nil)
	}
	if req.Specialty == "" {
		return nil, apperrors.Validation("doctor specialty is required", nil)
	}

	doctor := &model.Doctor{
		Name:      req.Name,
		Specialty: req.Specialty,
		Phone:     req.Phone,
		Email:     req.Email,
		Schedule:  req.Schedule,
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor, nil
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	if cached, ok := s.cache.Get(cacheKey(id)); ok {
		doctor := cached.(model.Doctor)
		return &doctor, nil
	}

	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	s.cache.Set(cacheKey(id), *doctor, gocache.DefaultExpiration)
	return doctor, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.Validation("doctor name cannot be empty", nil)
		}
		doctor.Name = *req.Name
	}
	if req.Specialty != nil {
		if *req.Specialty == "" {
			return nil, apperrors.Validation("doctor specialty cannot be empty", nil)
		}
		doctor.Specialty = *req.Specialty
	}
	if req.Phone != nil {
		doctor.Phone = req.Phone
	}
	if req.Email != nil {
		doctor.Email = req.Email
	}
	if req.Schedule != nil {
		doctor.Schedule = req.Schedule
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}

	s.cache.Delete(cacheKey(id))
	return doctor, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id int64) error {
	hasAppointments, err := s.appointmentRepo.ExistsForDoctor(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check doctor appointments: %w", err)
	}
	if hasAppointments {
		return apperrors.Conflict("doctor has appointments on record", nil)
	}

	hasHistory, err := s.historyRepo.ExistsForDoctor(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check doctor history: %w", err)
	}
	if hasHistory {
		return apperrors.Conflict("doctor has medical history on record", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	s.cache.Delete(cacheKey(id))
	return nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}
