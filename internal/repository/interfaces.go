package repository

import (
	"context"
	"time"

	"github.com/medtrack/clinic-api/internal/model"
)

// All repository interfaces in one file
type (
	// PatientRepository handles the patient registry
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id int64) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Patient, error)
		Exists(ctx context.Context, id int64) (bool, error)
	}

	// DoctorRepository handles the doctor registry
	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id int64) (*model.Doctor, error)
		Update(ctx context.Context, doctor *model.Doctor) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Doctor, error)
		Exists(ctx context.Context, id int64) (bool, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		ListByDateRange(ctx context.Context, start, end time.Time) ([]*model.Appointment, error)
		Exists(ctx context.Context, id int64) (bool, error)
		ExistsForPatient(ctx context.Context, patientID int64) (bool, error)
		ExistsForDoctor(ctx context.Context, doctorID int64) (bool, error)
		// ListUpcoming joins appointments with patients and doctors for
		// visit dates within [from, to] inclusive, ordered by date then
		// time. onlyScheduled additionally filters status = "scheduled".
		ListUpcoming(ctx context.Context, from, to time.Time, onlyScheduled bool) ([]*model.UpcomingAppointment, error)
	}

	MedicalHistoryRepository interface {
		Create(ctx context.Context, record *model.MedicalHistoryRecord) error
		Get(ctx context.Context, id int64) (*model.MedicalHistoryRecord, error)
		ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalHistoryRecord, error)
		ExistsForPatient(ctx context.Context, patientID int64) (bool, error)
		ExistsForDoctor(ctx context.Context, doctorID int64) (bool, error)
	}

	PrescriptionRepository interface {
		Create(ctx context.Context, item *model.PrescriptionItem) error
		Get(ctx context.Context, id int64) (*model.PrescriptionItem, error)
		Update(ctx context.Context, item *model.PrescriptionItem) error
		Delete(ctx context.Context, id int64) error
		ListByAppointment(ctx context.Context, appointmentID int64) ([]*model.PrescriptionItem, error)
	}
)
