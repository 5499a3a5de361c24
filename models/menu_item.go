package models

import "time"

// MenuItem is read-only from this service's point of view; prices are
// snapshotted onto order items at insert time.
type MenuItem struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	MenuID     string    `gorm:"type:varchar(36);index" json:"menu_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	PriceCents int64     `gorm:"not null" json:"price_cents"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
