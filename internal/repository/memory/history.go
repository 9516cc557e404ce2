package memory

import (
	"context"
	"sort"
	"time"

	"github.com/medtrack/clinic-api/internal/model"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

func (s *historyStore) Create(_ context.Context, record *model.MedicalHistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[record.PatientID]; !ok {
		return apperrors.ForeignKey("patient", nil)
	}
	if _, ok := s.doctors[record.DoctorID]; !ok {
		return apperrors.ForeignKey("doctor", nil)
	}

	record.ID = s.newID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()
	s.history[record.ID] = *record
	return nil
}

func (s *historyStore) Get(_ context.Context, id int64) (*model.MedicalHistoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.history[id]
	if !ok {
		return nil, apperrors.NotFound("medical history record", nil)
	}
	return &record, nil
}

func (s *historyStore) ListByPatient(_ context.Context, patientID int64) ([]*model.MedicalHistoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []*model.MedicalHistoryRecord
	for id := range s.history {
		record := s.history[id]
		if record.PatientID == patientID {
			records = append(records, &record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].VisitDate.After(records[j].VisitDate)
	})
	return records, nil
}

func (s *historyStore) ExistsForPatient(_ context.Context, patientID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.history {
		if record.PatientID == patientID {
			return true, nil
		}
	}
	return false, nil
}

func (s *historyStore) ExistsForDoctor(_ context.Context, doctorID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.history {
		if record.DoctorID == doctorID {
			return true, nil
		}
	}
	return false, nil
}
