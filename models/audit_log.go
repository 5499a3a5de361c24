package models

import "time"

// AuditLog is the append-only trail of sensitive actions. Rows are written
// once and never updated or deleted by this service.
type AuditLog struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	RestaurantID string    `gorm:"type:varchar(36);index" json:"restaurant_id"`
	UserID       string    `gorm:"type:varchar(36);index" json:"user_id"`
	Action       string    `gorm:"type:varchar(64);not null" json:"action"`
	EntityType   string    `gorm:"type:varchar(64);not null" json:"entity_type"`
	EntityID     string    `gorm:"type:varchar(36);not null" json:"entity_id"`
	Payload      string    `gorm:"type:text" json:"payload"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
