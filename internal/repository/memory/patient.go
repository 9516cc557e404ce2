package memory

import (
	"context"
	"sort"
	"time"

	"github.com/medtrack/clinic-api/internal/model"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

func (s *patientStore) Create(_ context.Context, patient *model.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	patient.ID = s.newID()
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()
	s.patients[patient.ID] = *patient
	return nil
}

func (s *patientStore) Get(_ context.Context, id int64) (*model.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patient, ok := s.patients[id]
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	return &patient, nil
}

func (s *patientStore) Update(_ context.Context, patient *model.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[patient.ID]; !ok {
		return apperrors.NotFound("patient", nil)
	}
	patient.UpdatedAt = time.Now()
	s.patients[patient.ID] = *patient
	return nil
}

func (s *patientStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[id]; !ok {
		return apperrors.NotFound("patient", nil)
	}
	for _, a := range s.appointments {
		if a.PatientID == id {
			return apperrors.Conflict("patient is still referenced by dependent rows", nil)
		}
	}
	for _, h := range s.history {
		if h.PatientID == id {
			return apperrors.Conflict("patient is still referenced by dependent rows", nil)
		}
	}
	delete(s.patients, id)
	return nil
}

func (s *patientStore) List(_ context.Context) ([]*model.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patients := make([]*model.Patient, 0, len(s.patients))
	for id := range s.patients {
		patient := s.patients[id]
		patients = append(patients, &patient)
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].Name < patients[j].Name })
	return patients, nil
}

func (s *patientStore) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.patients[id]
	return ok, nil
}
