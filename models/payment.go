package models

import "time"

// Payment methods accepted at the till.
const (
	PaymentMethodCash  = "cash"
	PaymentMethodCard  = "card"
	PaymentMethodOther = "other"
)

type Payment struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrderID        string    `gorm:"type:varchar(36);not null;index" json:"order_id"`
	Order          Order     `gorm:"foreignKey:OrderID;references:ID" json:"-"`
	Method         string    `gorm:"type:varchar(20);not null" json:"method"`
	AmountCents    int64     `gorm:"not null" json:"amount_cents"`
	ChangeDueCents int64     `gorm:"not null;default:0" json:"change_due_cents"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}
