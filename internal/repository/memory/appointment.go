package memory

import (
	"context"
	"sort"
	"time"

	"github.com/medtrack/clinic-api/internal/model"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

func (s *appointmentStore) Create(_ context.Context, appointment *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// FK check before the row is written, same as the SQL constraint
	if _, ok := s.patients[appointment.PatientID]; !ok {
		return apperrors.ForeignKey("patient", nil)
	}
	if _, ok := s.doctors[appointment.DoctorID]; !ok {
		return apperrors.ForeignKey("doctor", nil)
	}

	appointment.ID = s.newID()
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()
	s.appointments[appointment.ID] = *appointment
	return nil
}

func (s *appointmentStore) Get(_ context.Context, id int64) (*model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appointment, ok := s.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	return &appointment, nil
}

func (s *appointmentStore) Update(_ context.Context, appointment *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[appointment.ID]; !ok {
		return apperrors.NotFound("appointment", nil)
	}
	appointment.UpdatedAt = time.Now()
	s.appointments[appointment.ID] = *appointment
	return nil
}

func (s *appointmentStore) ListByDateRange(_ context.Context, start, end time.Time) ([]*model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var appointments []*model.Appointment
	for id := range s.appointments {
		a := s.appointments[id]
		if a.VisitDate.Before(start) || a.VisitDate.After(end) {
			continue
		}
		appointments = append(appointments, &a)
	}
	sortAppointments(appointments)
	return appointments, nil
}

func (s *appointmentStore) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.appointments[id]
	return ok, nil
}

func (s *appointmentStore) ExistsForPatient(_ context.Context, patientID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.appointments {
		if a.PatientID == patientID {
			return true, nil
		}
	}
	return false, nil
}

func (s *appointmentStore) ExistsForDoctor(_ context.Context, doctorID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.appointments {
		if a.DoctorID == doctorID {
			return true, nil
		}
	}
	return false, nil
}

func (s *appointmentStore) ListUpcoming(_ context.Context, from, to time.Time, onlyScheduled bool) ([]*model.UpcomingAppointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var appointments []*model.Appointment
	for id := range s.appointments {
		a := s.appointments[id]
		if a.VisitDate.Before(from) || a.VisitDate.After(to) {
			continue
		}
		if onlyScheduled && a.Status != model.AppointmentStatusScheduled {
			continue
		}
		appointments = append(appointments, &a)
	}
	sortAppointments(appointments)

	rows := make([]*model.UpcomingAppointment, 0, len(appointments))
	for _, a := range appointments {
		patient := s.patients[a.PatientID]
		doctor := s.doctors[a.DoctorID]
		rows = append(rows, &model.UpcomingAppointment{
			AppointmentID:   a.ID,
			VisitDate:       a.VisitDate,
			VisitTime:       a.VisitTime,
			Reason:          a.Reason,
			PatientName:     patient.Name,
			PatientPhone:    patient.Phone,
			DoctorName:      doctor.Name,
			DoctorSpecialty: doctor.Specialty,
		})
	}
	return rows, nil
}

func sortAppointments(appointments []*model.Appointment) {
	sort.Slice(appointments, func(i, j int) bool {
		if !appointments[i].VisitDate.Equal(appointments[j].VisitDate) {
			return appointments[i].VisitDate.Before(appointments[j].VisitDate)
		}
		return appointments[i].VisitTime < appointments[j].VisitTime
	})
}
