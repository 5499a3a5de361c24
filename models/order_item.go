package models

import "time"

type OrderItem struct {
	ID      string `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrderID string `gorm:"type:varchar(36);not null;index" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order          Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID     string   `gorm:"type:varchar(36);not null" json:"menu_item_id"`
	MenuItem       MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item,omitempty"`
	Quantity       int      `gorm:"not null" json:"quantity"`
	UnitPriceCents int64    `gorm:"not null" json:"unit_price_cents"`
	// Voided items stay on the order for the trail but are excluded from
	// every total computation. They are never deleted.
	Voided     bool      `gorm:"not null;default:false" json:"voided"`
	VoidReason string    `gorm:"type:text" json:"void_reason,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
