package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/medtrack/clinic-api/internal/model"
	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

func (r *prescriptionRepository) Create(ctx context.Context, item *model.PrescriptionItem) error {
	query := `
		INSERT INTO prescription_items (
			appointment_id, medication, dosage, frequency,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	err := r.db.GetContext(ctx, &item.ID, query,
		item.AppointmentID,
		item.Medication,
		item.Dosage,
		item.Frequency,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create prescription item: %w", translateWriteError(err, "prescription item", "appointment"))
	}
	return nil
}

func (r *prescriptionRepository) Get(ctx context.Context, id int64) (*model.PrescriptionItem, error) {
	query := `
		SELECT id, appointment_id, medication, dosage, frequency,
			   created_at, updated_at
		FROM prescription_items
		WHERE id = $1
	`
	var item model.PrescriptionItem
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, translateReadError(err, "prescription item")
	}
	return &item, nil
}

func (r *prescriptionRepository) Update(ctx context.Context, item *model.PrescriptionItem) error {
	query := `
		UPDATE prescription_items
		SET medication = $1, dosage = $2, frequency = $3, updated_at = $4
		WHERE id = $5
	`
	item.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		item.Medication,
		item.Dosage,
		item.Frequency,
		item.UpdatedAt,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update prescription item: %w", translateWriteError(err, "prescription item", "appointment"))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("prescription item", nil)
	}
	return nil
}

func (r *prescriptionRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM prescription_items
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete prescription item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("prescription item", nil)
	}
	return nil
}

// ListByAppointment orders by id so the sequence is stable by insertion.
func (r *prescriptionRepository) ListByAppointment(ctx context.Context, appointmentID int64) ([]*model.PrescriptionItem, error) {
	query := `
		SELECT id, appointment_id, medication, dosage, frequency,
			   created_at, updated_at
		FROM prescription_items
		WHERE appointment_id = $1
		ORDER BY id ASC
	`
	var items []*model.PrescriptionItem
	if err := r.db.SelectContext(ctx, &items, query, appointmentID); err != nil {
		return nil, fmt.Errorf("failed to list prescription items: %w", err)
	}
	return items, nil
}
