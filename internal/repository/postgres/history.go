package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/medtrack/clinic-api/internal/model"
)

func (r *medicalHistoryRepository) Create(ctx context.Context, record *model.MedicalHistoryRecord) error {
	query := `
		INSERT INTO medical_history (
			patient_id, doctor_id, visit_date, diagnosis, treatment,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	err := r.db.GetContext(ctx, &record.ID, query,
		record.PatientID,
		record.DoctorID,
		record.VisitDate,
		record.Diagnosis,
		record.Treatment,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medical history record: %w", translateWriteError(err, "medical history record", "patient or doctor"))
	}
	return nil
}

func (r *medicalHistoryRepository) Get(ctx context.Context, id int64) (*model.MedicalHistoryRecord, error) {
	query := `
		SELECT id, patient_id, doctor_id, visit_date, diagnosis, treatment,
			   created_at, updated_at
		FROM medical_history
		WHERE id = $1
	`
	var record model.MedicalHistoryRecord
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, translateReadError(err, "medical history record")
	}
	return &record, nil
}

func (r *medicalHistoryRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalHistoryRecord, error) {
	query := `
		SELECT id, patient_id, doctor_id, visit_date, diagnosis, treatment,
			   created_at, updated_at
		FROM medical_history
		WHERE patient_id = $1
		ORDER BY visit_date DESC
	`
	var records []*model.MedicalHistoryRecord
	if err := r.db.SelectContext(ctx, &records, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list medical history: %w", err)
	}
	return records, nil
}

func (r *medicalHistoryRepository) ExistsForPatient(ctx context.Context, patientID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM medical_history WHERE patient_id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, patientID); err != nil {
		return false, fmt.Errorf("failed to check patient history: %w", err)
	}
	return exists, nil
}

func (r *medicalHistoryRepository) ExistsForDoctor(ctx context.Context, doctorID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM medical_history WHERE doctor_id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, doctorID); err != nil {
		return false, fmt.Errorf("failed to check doctor history: %w", err)
	}
	return exists, nil
}
