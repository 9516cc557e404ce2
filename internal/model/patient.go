package model

import "time"

type Patient struct {
	Base
	Name      string    `db:"name" json:"name"`
	BirthDate time.Time `db:"birth_date" json:"birth_date"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Address   *string   `db:"address" json:"address,omitempty"`
}

type CreatePatientRequest struct {
	Name      string    `json:"name" binding:"required"`
	BirthDate time.Time `json:"birth_date" binding:"required" time_format:"2006-01-02"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email" binding:"omitempty,email"`
	Address   *string   `json:"address"`
}

type UpdatePatientRequest struct {
	Name      *string    `json:"name"`
	BirthDate *time.Time `json:"birth_date" time_format:"2006-01-02"`
	Phone     *string    `json:"phone"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	Address   *string    `json:"address"`
}
