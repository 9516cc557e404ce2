package model

import "time"

// UpcomingAppointment is one row of the upcoming-appointments view: a
// join of an appointment with its patient and doctor, recomputed on
// every query. It has no table of its own.
type UpcomingAppointment struct {
	AppointmentID   int64     `db:"appointment_id" json:"appointment_id"`
	VisitDate       time.Time `db:"visit_date" json:"visit_date"`
	VisitTime       string    `db:"visit_time" json:"visit_time"`
	Reason          *string   `db:"reason" json:"reason,omitempty"`
	PatientName     string    `db:"patient_name" json:"patient_name"`
	PatientPhone    *string   `db:"patient_phone" json:"patient_phone,omitempty"`
	DoctorName      string    `db:"doctor_name" json:"doctor_name"`
	DoctorSpecialty string    `db:"doctor_specialty" json:"doctor_specialty"`
	DaysRemaining   int       `db:"-" json:"days_remaining"`
}
