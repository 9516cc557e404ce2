package patient_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/repository/memory"
	"github.com/medtrack/clinic-api/internal/service/patient"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

func newService(store *memory.Store) *patient.Service {
	return patient.NewService(store.Patients(), store.Appointments(), store.MedicalHistory())
}

func strPtr(s string) *string { return &s }

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc := newService(memory.NewStore())
	ctx := context.Background()

	req := &model.CreatePatientRequest{
		Name:      "María López",
		BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		Phone:     strPtr("555-0134"),
		Email:     strPtr("maria@example.com"),
		Address:   strPtr("Av. Reforma 12"),
	}

	created, err := svc.CreatePatient(ctx, req)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetPatient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, req.Name, got.Name)
	assert.Equal(t, req.BirthDate, got.BirthDate)
	assert.Equal(t, *req.Phone, *got.Phone)
	assert.Equal(t, *req.Email, *got.Email)
	assert.Equal(t, *req.Address, *got.Address)
}

func TestCreateRequiresNameAndBirthDate(t *testing.T) {
	svc := newService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.CreatePatient(ctx, &model.CreatePatientRequest{
		BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreatePatient(ctx, &model.CreatePatientRequest{Name: "María López"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetUnknownPatient(t *testing.T) {
	svc := newService(memory.NewStore())

	_, err := svc.GetPatient(context.Background(), 42)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdatePartialFields(t *testing.T) {
	svc := newService(memory.NewStore())
	ctx := context.Background()

	created, err := svc.CreatePatient(ctx, &model.CreatePatientRequest{
		Name:      "María López",
		BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePatient(ctx, created.ID, &model.UpdatePatientRequest{
		Phone: strPtr("555-0199"),
	})
	require.NoError(t, err)

	// untouched fields survive, id is immutable
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "María López", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0199", *updated.Phone)
}

func TestUpdateUnknownPatient(t *testing.T) {
	svc := newService(memory.NewStore())

	_, err := svc.UpdatePatient(context.Background(), 42, &model.UpdatePatientRequest{
		Phone: strPtr("555-0199"),
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteWithDependentAppointmentConflicts(t *testing.T) {
	store := memory.NewStore()
	svc := newService(store)
	ctx := context.Background()

	created, err := svc.CreatePatient(ctx, &model.CreatePatientRequest{
		Name:      "María López",
		BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	doctor := &model.Doctor{Name: "Dr. Rivas", Specialty: "Cardiología"}
	require.NoError(t, store.Doctors().Create(ctx, doctor))
	require.NoError(t, store.Appointments().Create(ctx, &model.Appointment{
		PatientID: created.ID,
		DoctorID:  doctor.ID,
		VisitDate: time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC),
		VisitTime: "10:00",
		Status:    model.AppointmentStatusScheduled,
	}))

	err = svc.DeletePatient(ctx, created.ID)
	assert.True(t, apperrors.IsConflict(err))

	// still readable afterwards
	_, err = svc.GetPatient(ctx, created.ID)
	assert.NoError(t, err)
}

func TestDeleteWithHistoryConflicts(t *testing.T) {
	store := memory.NewStore()
	svc := newService(store)
	ctx := context.Background()

	created, err := svc.CreatePatient(ctx, &model.CreatePatientRequest{
		Name:      "María López",
		BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	doctor := &model.Doctor{Name: "Dr. Rivas", Specialty: "Cardiología"}
	require.NoError(t, store.Doctors().Create(ctx, doctor))
	require.NoError(t, store.MedicalHistory().Create(ctx, &model.MedicalHistoryRecord{
		PatientID: created.ID,
		DoctorID:  doctor.ID,
		VisitDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	}))

	err = svc.DeletePatient(ctx, created.ID)
	assert.True(t, apperrors.IsConflict(err))
}

func TestDeleteWithoutDependents(t *testing.T) {
	svc := newService(memory.NewStore())
	ctx := context.Background()

	created, err := svc.CreatePatient(ctx, &model.CreatePatientRequest{
		Name:      "María López",
		BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePatient(ctx, created.ID))

	_, err = svc.GetPatient(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
