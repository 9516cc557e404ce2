package model

import "time"

// MedicalHistoryRecord is a visit record, not a scheduled appointment:
// it references patient and doctor directly and carries no appointment
// foreign key, so a walk-in visit can be logged without a ledger row.
type MedicalHistoryRecord struct {
	Base
	PatientID int64     `db:"patient_id" json:"patient_id"`
	DoctorID  int64     `db:"doctor_id" json:"doctor_id"`
	VisitDate time.Time `db:"visit_date" json:"visit_date"`
	Diagnosis *string   `db:"diagnosis" json:"diagnosis,omitempty"`
	Treatment *string   `db:"treatment" json:"treatment,omitempty"`
}

type RecordHistoryRequest struct {
	PatientID int64     `json:"patient_id" binding:"required"`
	DoctorID  int64     `json:"doctor_id" binding:"required"`
	VisitDate time.Time `json:"visit_date" binding:"required" time_format:"2006-01-02"`
	Diagnosis *string   `json:"diagnosis"`
	Treatment *string   `json:"treatment"`
}
