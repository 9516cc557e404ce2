package model

// PrescriptionItem holds exactly one medication per row. Appointments
// never store a multi-valued medication field; each prescribed drug is
// its own independently addressable child row keyed by appointment_id.
type PrescriptionItem struct {
	Base
	AppointmentID int64   `db:"appointment_id" json:"appointment_id"`
	Medication    string  `db:"medication" json:"medication"`
	Dosage        *string `db:"dosage" json:"dosage,omitempty"`
	Frequency     *string `db:"frequency" json:"frequency,omitempty"`
}

type AddPrescriptionItemRequest struct {
	Medication string  `json:"medication" binding:"required"`
	Dosage     *string `json:"dosage"`
	Frequency  *string `json:"frequency"`
}

type UpdatePrescriptionItemRequest struct {
	Medication *string `json:"medication"`
	Dosage     *string `json:"dosage"`
	Frequency  *string `json:"frequency"`
}
