package memory

import (
	"context"
	"sort"
	"time"

	"github.com/medtrack/clinic-api/internal/model"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

func (s *doctorStore) Create(_ context.Context, doctor *model.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctor.ID = s.newID()
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = time.Now()
	s.doctors[doctor.ID] = *doctor
	return nil
}

func (s *doctorStore) Get(_ context.Context, id int64) (*model.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doctor, ok := s.doctors[id]
	if !ok {
		return nil, apperrors.NotFound("doctor", nil)
	}
	return &doctor, nil
}

func (s *doctorStore) Update(_ context.Context, doctor *model.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doctors[doctor.ID]; !ok {
		return apperrors.NotFound("doctor", nil)
	}
	doctor.UpdatedAt = time.Now()
	s.doctors[doctor.ID] = *doctor
	return nil
}

func (s *doctorStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doctors[id]; !ok {
		return apperrors.NotFound("doctor", nil)
	}
	for _, a := range s.appointments {
		if a.DoctorID == id {
			return apperrors.Conflict("doctor is still referenced by dependent rows", nil)
		}
	}
	for _, h := range s.history {
		if h.DoctorID == id {
			return apperrors.Conflict("doctor is still referenced by dependent rows", nil)
		}
	}
	delete(s.doctors, id)
	return nil
}

func (s *doctorStore) List(_ context.Context) ([]*model.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doctors := make([]*model.Doctor, 0, len(s.doctors))
	for id := range s.doctors {
		doctor := s.doctors[id]
		doctors = append(doctors, &doctor)
	}
	sort.Slice(doctors, func(i, j int) bool { return doctors[i].Name < doctors[j].Name })
	return doctors, nil
}

func (s *doctorStore) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.doctors[id]
	return ok, nil
}
