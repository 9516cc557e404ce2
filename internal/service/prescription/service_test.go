package prescription_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/clinic-api/internal/model"
	"github.com/medtrack/clinic-api/internal/repository/memory"
	"github.com/medtrack/clinic-api/internal/service/prescription"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

func strPtr(s string) *string { return &s }

func setup(t *testing.T) (*prescription.Service, int64) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	patient := &model.Patient{Name: "María López", BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, store.Patients().Create(ctx, patient))

	doctor := &model.Doctor{Name: "Dr. Rivas", Specialty: "Cardiología"}
	require.NoError(t, store.Doctors().Create(ctx, doctor))

	appointment := &model.Appointment{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		VisitDate: time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC),
		VisitTime: "10:00",
		Status:    model.AppointmentStatusScheduled,
	}
	require.NoError(t, store.Appointments().Create(ctx, appointment))

	return prescription.NewService(store.Prescriptions(), store.Appointments()), appointment.ID
}

func TestAddItemRoundTrip(t *testing.T) {
	svc, appointmentID := setup(t)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, appointmentID, &model.AddPrescriptionItemRequest{
		Medication: "Losartán 50mg",
		Dosage:     strPtr("1 tableta"),
		Frequency:  strPtr("Cada 12 horas"),
	})
	require.NoError(t, err)
	assert.NotZero(t, item.ID)

	got, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Losartán 50mg", got.Medication)
	assert.Equal(t, "1 tableta", *got.Dosage)
	assert.Equal(t, "Cada 12 horas", *got.Frequency)
	assert.Equal(t, appointmentID, got.AppointmentID)
}

func TestAddItemUnknownAppointment(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.AddItem(context.Background(), 9999, &model.AddPrescriptionItemRequest{
		Medication: "Losartán 50mg",
	})
	assert.True(t, apperrors.IsForeignKey(err))
}

func TestAddItemEmptyMedication(t *testing.T) {
	svc, appointmentID := setup(t)

	_, err := svc.AddItem(context.Background(), appointmentID, &model.AddPrescriptionItemRequest{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestListByAppointmentInsertionOrder(t *testing.T) {
	svc, appointmentID := setup(t)
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		_, err := svc.AddItem(ctx, appointmentID, &model.AddPrescriptionItemRequest{
			Medication: fmt.Sprintf("Medicamento %d", i),
		})
		require.NoError(t, err)
	}

	items, err := svc.ListByAppointment(ctx, appointmentID)
	require.NoError(t, err)
	require.Len(t, items, n)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("Medicamento %d", i), item.Medication)
	}
}

func TestListByAppointmentEmptyIsValid(t *testing.T) {
	svc, appointmentID := setup(t)

	items, err := svc.ListByAppointment(context.Background(), appointmentID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateSingleItemLeavesSiblingsAlone(t *testing.T) {
	svc, appointmentID := setup(t)
	ctx := context.Background()

	first, err := svc.AddItem(ctx, appointmentID, &model.AddPrescriptionItemRequest{Medication: "Losartán 50mg"})
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, appointmentID, &model.AddPrescriptionItemRequest{Medication: "Metformina 850mg"})
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, first.ID, &model.UpdatePrescriptionItemRequest{
		Dosage: strPtr("2 tabletas"),
	})
	require.NoError(t, err)

	got, err := svc.GetItem(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Metformina 850mg", got.Medication)
	assert.Nil(t, got.Dosage)
}

func TestRemoveItem(t *testing.T) {
	svc, appointmentID := setup(t)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, appointmentID, &model.AddPrescriptionItemRequest{Medication: "Losartán 50mg"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, item.ID))

	_, err = svc.GetItem(ctx, item.ID)
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.RemoveItem(ctx, item.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateUnknownItem(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.UpdateItem(context.Background(), 9999, &model.UpdatePrescriptionItemRequest{
		Dosage: strPtr("1 tableta"),
	})
	assert.True(t, apperrors.IsNotFound(err))
}
