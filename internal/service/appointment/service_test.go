package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/repository/memory"
	"github.com/medtrack/clinic-api/internal/service/appointment"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func setup(t *testing.T) (*appointment.Service, *memory.Store, int64, int64) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	patient := &model.Patient{Name: "María López", BirthDate: date(1990, 3, 15)}
	require.NoError(t, store.Patients().Create(ctx, patient))

	doctor := &model.Doctor{Name: "Dr. Rivas", Specialty: "Cardiología"}
	require.NoError(t, store.Doctors().Create(ctx, doctor))

	svc := appointment.NewService(store.Appointments(), store.Patients(), store.Doctors())
	return svc, store, patient.ID, doctor.ID
}

func TestSchedule(t *testing.T) {
	svc, _, patientID, doctorID := setup(t)

	reason := "control anual"
	created, err := svc.Schedule(context.Background(), &model.ScheduleAppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		VisitDate: date(2025, 11, 6),
		VisitTime: "10:00",
		Reason:    &reason,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, model.AppointmentStatusScheduled, created.Status, "status defaults to scheduled")

	got, err := svc.GetAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "10:00", got.VisitTime)
}

func TestScheduleUnknownPatientFails(t *testing.T) {
	svc, store, _, doctorID := setup(t)

	_, err := svc.Schedule(context.Background(), &model.ScheduleAppointmentRequest{
		PatientID: 9999,
		DoctorID:  doctorID,
		VisitDate: date(2025, 11, 6),
		VisitTime: "10:00",
	})
	assert.True(t, apperrors.IsForeignKey(err))

	// nothing persisted
	rows, err := store.Appointments().ListByDateRange(context.Background(), date(2025, 1, 1), date(2025, 12, 31))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestScheduleUnknownDoctorFails(t *testing.T) {
	svc, store, patientID, _ := setup(t)

	_, err := svc.Schedule(context.Background(), &model.ScheduleAppointmentRequest{
		PatientID: patientID,
		DoctorID:  9999,
		VisitDate: date(2025, 11, 6),
		VisitTime: "10:00",
	})
	assert.True(t, apperrors.IsForeignKey(err))

	rows, err := store.Appointments().ListByDateRange(context.Background(), date(2025, 1, 1), date(2025, 12, 31))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestScheduleRequiresDateAndTime(t *testing.T) {
	svc, _, patientID, doctorID := setup(t)

	_, err := svc.Schedule(context.Background(), &model.ScheduleAppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		VisitTime: "10:00",
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Schedule(context.Background(), &model.ScheduleAppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		VisitDate: date(2025, 11, 6),
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateStatusAcceptsAnyLabel(t *testing.T) {
	svc, _, patientID, doctorID := setup(t)
	ctx := context.Background()

	created, err := svc.Schedule(ctx, &model.ScheduleAppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		VisitDate: date(2025, 11, 6),
		VisitTime: "10:00",
	})
	require.NoError(t, err)

	// the vocabulary is open: unmodeled labels go through unchanged
	for _, status := range []string{"completed", "no-show", "rescheduled"} {
		updated, err := svc.UpdateStatus(ctx, created.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	svc, _, _, _ := setup(t)

	_, err := svc.UpdateStatus(context.Background(), 9999, "completed")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateAppointmentPartial(t *testing.T) {
	svc, _, patientID, doctorID := setup(t)
	ctx := context.Background()

	created, err := svc.Schedule(ctx, &model.ScheduleAppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		VisitDate: date(2025, 11, 6),
		VisitTime: "10:00",
	})
	require.NoError(t, err)

	newTime := "11:30"
	updated, err := svc.UpdateAppointment(ctx, created.ID, &model.UpdateAppointmentRequest{
		VisitTime: &newTime,
	})
	require.NoError(t, err)
	assert.Equal(t, "11:30", updated.VisitTime)
	assert.Equal(t, date(2025, 11, 6), updated.VisitDate)
	assert.Equal(t, patientID, updated.PatientID)
}

func TestListByDateRangeInclusive(t *testing.T) {
	svc, _, patientID, doctorID := setup(t)
	ctx := context.Background()

	for _, d := range []time.Time{date(2025, 11, 2), date(2025, 11, 5), date(2025, 11, 9), date(2025, 11, 10)} {
		_, err := svc.Schedule(ctx, &model.ScheduleAppointmentRequest{
			PatientID: patientID,
			DoctorID:  doctorID,
			VisitDate: d,
			VisitTime: "09:00",
		})
		require.NoError(t, err)
	}

	rows, err := svc.ListByDateRange(ctx, date(2025, 11, 2), date(2025, 11, 9))
	require.NoError(t, err)
	require.Len(t, rows, 3, "both bounds are inclusive")
	assert.Equal(t, date(2025, 11, 2), rows[0].VisitDate)
	assert.Equal(t, date(2025, 11, 9), rows[2].VisitDate)
}

func TestListByDateRangeValidation(t *testing.T) {
	svc, _, _, _ := setup(t)

	_, err := svc.ListByDateRange(context.Background(), date(2025, 11, 9), date(2025, 11, 2))
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.ListByDateRange(context.Background(), time.Time{}, date(2025, 11, 9))
	assert.True(t, apperrors.IsValidation(err))
}
