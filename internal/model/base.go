package model

import "time"

// Base contains the columns shared by every stored entity. Primary keys
// are store-generated (BIGSERIAL); an ID of zero means "not yet persisted".
type Base struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DateRange is an inclusive [Start, End] calendar-date filter.
type DateRange struct {
	Start time.Time `json:"start" form:"start" time_format:"2006-01-02"`
	End   time.Time `json:"end" form:"end" time_format:"2006-01-02"`
}
