package model

type Doctor struct {
	Base
	Name      string  `db:"name" json:"name"`
	Specialty string  `db:"specialty" json:"specialty"`
	Phone     *string `db:"phone" json:"phone,omitempty"`
	Email     *string `db:"email" json:"email,omitempty"`
	// Schedule is the consultation availability window as entered at the
	// front desk, e.g. "Lun-Vie 09:00-13:00".
	Schedule *string `db:"schedule" json:"schedule,omitempty"`
}

type CreateDoctorRequest struct {
	Name      string  `json:"name" binding:"required"`
	Specialty string  `json:"specialty" binding:"required"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Schedule  *string `json:"schedule"`
}

type UpdateDoctorRequest struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Schedule  *string `json:"schedule"`
}
