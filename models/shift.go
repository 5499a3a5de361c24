package models

import "time"

// Shift is a staff member's working session with an opening and closing
// cash float. A shift with a nil ClosedAt is still open.
type Shift struct {
	ID                string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	StaffID           string     `gorm:"type:varchar(36);not null;index" json:"staff_id"`
	OpenedAt          time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt          *time.Time `json:"closed_at,omitempty"`
	OpeningFloatCents int64      `gorm:"not null" json:"opening_float_cents"`
	ClosingFloatCents *int64     `json:"closing_float_cents,omitempty"`
}
