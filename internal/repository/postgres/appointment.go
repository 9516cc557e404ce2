package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/medtrack/clinic-api/internal/model"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			patient_id, doctor_id, visit_date, visit_time,
			reason, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	err := r.db.GetContext(ctx, &appointment.ID, query,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.VisitDate,
		appointment.VisitTime,
		appointment.Reason,
		appointment.Status,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", translateWriteError(err, "appointment", "patient or doctor"))
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, visit_date, visit_time,
			   reason, status, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, translateReadError(err, "appointment")
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET visit_date = $1, visit_time = $2, reason = $3,
			status = $4, updated_at = $5
		WHERE id = $6
	`
	appointment.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		appointment.VisitDate,
		appointment.VisitTime,
		appointment.Reason,
		appointment.Status,
		appointment.UpdatedAt,
		appointment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", translateWriteError(err, "appointment", "patient or doctor"))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("appointment", nil)
	}
	return nil
}

func (r *appointmentRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*model.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, visit_date, visit_time,
			   reason, status, created_at, updated_at
		FROM appointments
		WHERE visit_date >= $1
		AND visit_date <= $2
		ORDER BY visit_date ASC, visit_time ASC
	`
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM appointments WHERE id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check appointment existence: %w", err)
	}
	return exists, nil
}

func (r *appointmentRepository) ExistsForPatient(ctx context.Context, patientID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM appointments WHERE patient_id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, patientID); err != nil {
		return false, fmt.Errorf("failed to check patient appointments: %w", err)
	}
	return exists, nil
}

func (r *appointmentRepository) ExistsForDoctor(ctx context.Context, doctorID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM appointments WHERE doctor_id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, doctorID); err != nil {
		return false, fmt.Errorf("failed to check doctor appointments: %w", err)
	}
	return exists, nil
}

// ListUpcoming recomputes the upcoming-appointments projection on every
// call. Nothing is materialized: staleness is impossible because the join
// runs against live rows.
func (r *appointmentRepository) ListUpcoming(ctx context.Context, from, to time.Time, onlyScheduled bool) ([]*model.UpcomingAppointment, error) {
	query := `
		SELECT a.id AS appointment_id,
			   a.visit_date, a.visit_time, a.reason,
			   p.name AS patient_name, p.phone AS patient_phone,
			   d.name AS doctor_name, d.specialty AS doctor_specialty
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.visit_date >= $1
		AND a.visit_date <= $2
	`
	args := []interface{}{from, to}

	if onlyScheduled {
		query += fmt.Sprintf(" AND a.status = $%d", len(args)+1)
		args = append(args, model.AppointmentStatusScheduled)
	}

	query += " ORDER BY a.visit_date ASC, a.visit_time ASC"

	var rows []*model.UpcomingAppointment
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list upcoming appointments: %w", err)
	}
	return rows, nil
}
