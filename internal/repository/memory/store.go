// Package memory implements the repository interfaces against in-process
// maps, with the same constraint behavior the SQL schema enforces:
// foreign keys checked before any row is written, restrict-on-delete for
// referenced parents. It backs the service tests.
package memory

import (
	"sync"

	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/repository"
)

type Store struct {
	mu sync.RWMutex

	patients      map[int64]model.Patient
	doctors       map[int64]model.Doctor
	appointments  map[int64]model.Appointment
	history       map[int64]model.MedicalHistoryRecord
	prescriptions map[int64]model.PrescriptionItem

	// insertion order per table, ids ascend with insertion
	nextID int64
}

func NewStore() *Store {
	return &Store{
		patients:      make(map[int64]model.Patient),
		doctors:       make(map[int64]model.Doctor),
		appointments:  make(map[int64]model.Appointment),
		history:       make(map[int64]model.MedicalHistoryRecord),
		prescriptions: make(map[int64]model.PrescriptionItem),
	}
}

func (s *Store) newID() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) Patients() repository.PatientRepository {
	return &patientStore{s}
}

func (s *Store) Doctors() repository.DoctorRepository {
	return &doctorStore{s}
}

func (s *Store) Appointments() repository.AppointmentRepository {
	return &appointmentStore{s}
}

func (s *Store) MedicalHistory() repository.MedicalHistoryRepository {
	return &historyStore{s}
}

func (s *Store) Prescriptions() repository.PrescriptionRepository {
	return &prescriptionStore{s}
}

type patientStore struct{ *Store }
type doctorStore struct{ *Store }
type appointmentStore struct{ *Store }
type historyStore struct{ *Store }
type prescriptionStore struct{ *Store }
