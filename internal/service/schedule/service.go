package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/repository"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

// upcomingWindowDays is the rolling window of the upcoming-appointments
// view: [today, today+7] inclusive.
const upcomingWindowDays = 7

type Service struct {
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	// now is injected so the window and age computations are testable
	// against a fixed date
	now func() time.Time
}

func NewService(appointmentRepo repository.AppointmentRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		now:             time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Upcoming recomputes the view on every call: appointments joined with
// patient and doctor, filtered to the next seven days, each row annotated
// with whole days remaining (zero for today). onlyScheduled restricts to
// status "scheduled" and is off by default.
func (s *Service) Upcoming(ctx context.Context, onlyScheduled bool) ([]*model.UpcomingAppointment, error) {
	today := truncateToDate(s.now())
	until := today.AddDate(0, 0, upcomingWindowDays)

	rows, err := s.appointmentRepo.ListUpcoming(ctx, today, until, onlyScheduled)
	if err != nil {
		return nil, fmt.Errorf("failed to compute upcoming appointments: %w", err)
	}

	for _, row := range rows {
		row.DaysRemaining = daysBetween(today, truncateToDate(row.VisitDate))
	}
	return rows, nil
}

// PatientAge returns the patient's age in completed years, or (nil, nil)
// when no such patient exists. An unknown id is a legitimate query
// outcome here, not an error.
func (s *Service) PatientAge(ctx context.Context, patientID int64) (*int, error) {
	patient, err := s.patientRepo.Get(ctx, patientID)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	age := Age(patient.BirthDate, s.now())
	return &age, nil
}

// Age computes completed calendar years between birth and today. When
// today's month/day precedes the birth month/day the birthday has not
// happened yet this year, so one year is subtracted from the naive
// difference. This is calendar subtraction, not day-count division.
func Age(birth, today time.Time) int {
	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	return years
}

// truncateToDate normalizes to a UTC midnight so day arithmetic is exact
// regardless of the wall clock's zone or DST shifts.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b, both at midnight.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
