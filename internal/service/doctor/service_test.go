package doctor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/repository/memory"
	"github.com/medtrack/clinic-api/internal/service/doctor"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

func newService(store *memory.Store) *doctor.Service {
	return doctor.NewService(store.Doctors(), store.Appointments(), store.MedicalHistory())
}

func strPtr(s string) *string { return &s }

func TestCreateAndGet(t *testing.T) {
	svc := newService(memory.NewStore())
	ctx := context.Background()

	created, err := svc.CreateDoctor(ctx, &model.CreateDoctorRequest{
		Name:      "Dr. Rivas",
		Specialty: "Cardiología",
		Schedule:  strPtr("Lun-Vie 09:00-13:00"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetDoctor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Rivas", got.Name)
	assert.Equal(t, "Cardiología", got.Specialty)
	assert.Equal(t, "Lun-Vie 09:00-13:00", *got.Schedule)
}

func TestCreateRequiresNameAndSpecialty(t *testing.T) {
	svc := newService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.CreateDoctor(ctx, &model.CreateDoctorRequest{Specialty: "Cardiología"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreateDoctor(ctx, &model.CreateDoctorRequest{Name: "Dr. Rivas"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetServesCacheAndUpdateInvalidates(t *testing.T) {
	store := memory.NewStore()
	svc := newService(store)
	ctx := context.Background()

	created, err := svc.CreateDoctor(ctx, &model.CreateDoctorRequest{
		Name:      "Dr. Rivas",
		Specialty: "Cardiología",
	})
	require.NoError(t, err)

	// warm the cache
	_, err = svc.GetDoctor(ctx, created.ID)
	require.NoError(t, err)

	// mutate behind the service's back; the cached copy is served
	stale := *created
	stale.Specialty = "Neurología"
	require.NoError(t, store.Doctors().Update(ctx, &stale))

	got, err := svc.GetDoctor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cardiología", got.Specialty)

	// an update through the service drops the cache entry
	updated, err := svc.UpdateDoctor(ctx, created.ID, &model.UpdateDoctorRequest{
		Specialty: strPtr("Pediatría"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Pediatría", updated.Specialty)

	got, err = svc.GetDoctor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pediatría", got.Specialty)
}

func TestDeleteWithAppointmentsConflicts(t *testing.T) {
	store := memory.NewStore()
	svc := newService(store)
	ctx := context.Background()

	created, err := svc.CreateDoctor(ctx, &model.CreateDoctorRequest{
		Name:      "Dr. Rivas",
		Specialty: "Cardiología",
	})
	require.NoError(t, err)

	patient := &model.Patient{Name: "María López", BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, store.Patients().Create(ctx, patient))
	require.NoError(t, store.Appointments().Create(ctx, &model.Appointment{
		PatientID: patient.ID,
		DoctorID:  created.ID,
		VisitDate: time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC),
		VisitTime: "10:00",
		Status:    model.AppointmentStatusScheduled,
	}))

	err = svc.DeleteDoctor(ctx, created.ID)
	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateUnknownDoctor(t *testing.T) {
	svc := newService(memory.NewStore())

	_, err := svc.UpdateDoctor(context.Background(), 42, &model.UpdateDoctorRequest{
		Specialty: strPtr("Pediatría"),
	})
	assert.True(t, apperrors.IsNotFound(err))
}
