package models

import "time"

// Order statuses. Items may only be added while the order is open.
const (
	OrderStatusOpen      = "open"
	OrderStatusClosed    = "closed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID           string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	RestaurantID string     `gorm:"type:varchar(36);index" json:"restaurant_id"`
	TableID      *uint      `gorm:"index" json:"table_id,omitempty"`
	StaffID      string     `gorm:"type:varchar(36);index" json:"staff_id"`
	Status       string     `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`

	// Total amount is never stored on the order; it is recomputed from the
	// non-voided items so a void can never leave a stale cached value.
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}
