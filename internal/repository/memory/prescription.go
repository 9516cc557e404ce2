package memory

import (
	"context"
	"sort"
	"time"

	"github.com/medtrack/clinic-api/internal/model"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

func (s *prescriptionStore) Create(_ context.Context, item *model.PrescriptionItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[item.AppointmentID]; !ok {
		return apperrors.ForeignKey("appointment", nil)
	}

	item.ID = s.newID()
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	s.prescriptions[item.ID] = *item
	return nil
}

func (s *prescriptionStore) Get(_ context.Context, id int64) (*model.PrescriptionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.prescriptions[id]
	if !ok {
		return nil, apperrors.NotFound("prescription item", nil)
	}
	return &item, nil
}

func (s *prescriptionStore) Update(_ context.Context, item *model.PrescriptionItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prescriptions[item.ID]; !ok {
		return apperrors.NotFound("prescription item", nil)
	}
	item.UpdatedAt = time.Now()
	s.prescriptions[item.ID] = *item
	return nil
}

func (s *prescriptionStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prescriptions[id]; !ok {
		return apperrors.NotFound("prescription item", nil)
	}
	delete(s.prescriptions, id)
	return nil
}

func (s *prescriptionStore) ListByAppointment(_ context.Context, appointmentID int64) ([]*model.PrescriptionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*model.PrescriptionItem, 0)
	for id := range s.prescriptions {
		item := s.prescriptions[id]
		if item.AppointmentID == appointmentID {
			items = append(items, &item)
		}
	}
	// ids ascend with insertion, so this is insertion order
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
