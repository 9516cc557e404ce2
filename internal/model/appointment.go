package model

import "time"

// Status values seen in practice. The column is an unconstrained label on
// purpose: the valid vocabulary was never formally enumerated, so the
// store accepts any short string rather than a closed enum.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

type Appointment struct {
	Base
	PatientID int64     `db:"patient_id" json:"patient_id"`
	DoctorID  int64     `db:"doctor_id" json:"doctor_id"`
	VisitDate time.Time `db:"visit_date" json:"visit_date"`
	// VisitTime is the wall-clock slot as "HH:MM"; lexical order matches
	// chronological order, which the date-range listing relies on.
	VisitTime string  `db:"visit_time" json:"visit_time"`
	Reason    *string `db:"reason" json:"reason,omitempty"`
	Status    string  `db:"status" json:"status"`
}

type ScheduleAppointmentRequest struct {
	PatientID int64     `json:"patient_id" binding:"required"`
	DoctorID  int64     `json:"doctor_id" binding:"required"`
	VisitDate time.Time `json:"visit_date" binding:"required" time_format:"2006-01-02"`
	VisitTime string    `json:"visit_time" binding:"required"`
	Reason    *string   `json:"reason"`
	Status    string    `json:"status"`
}

type UpdateAppointmentRequest struct {
	VisitDate *time.Time `json:"visit_date" time_format:"2006-01-02"`
	VisitTime *string    `json:"visit_time"`
	Reason    *string    `json:"reason"`
	Status    *string    `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
