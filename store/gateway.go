package store

import (
	"errors"
	"time"

	"github.com/danuarta/pos-backend/models"
)

// ErrNotFound is returned by every Fetch* method when the referenced row
// does not exist, regardless of the backing driver.
var ErrNotFound = errors.New("record not found")

// Gateway is the data-store boundary the handlers talk to. One method per
// logical operation so the whole surface can be swapped for a test double.
type Gateway interface {
	// Transaction runs fn against a gateway bound to a single database
	// transaction. Returning an error rolls everything back. Order fetches
	// inside a transaction take a row lock, which serializes the
	// read-check-write-recompute sequence per order.
	Transaction(fn func(Gateway) error) error

	FetchOrder(id string) (*models.Order, error)
	CreateOrder(order *models.Order) error
	UpdateOrder(order *models.Order) error

	FetchMenuItem(id string) (*models.MenuItem, error)
	ListMenuItems() ([]models.MenuItem, error)

	InsertOrderItem(item *models.OrderItem) error
	FetchOrderItem(id string) (*models.OrderItem, error)
	UpdateOrderItem(item *models.OrderItem) error
	// ComputeOrderTotal sums quantity*unit_price_cents over the order's
	// non-voided items. Always computed fresh from the rows.
	ComputeOrderTotal(orderID string) (int64, error)

	InsertPayment(payment *models.Payment) error
	// PaymentTotalsBetween returns cents taken per payment method in
	// [from, to), for shift summaries.
	PaymentTotalsBetween(from, to time.Time) (map[string]int64, error)

	CreateShift(shift *models.Shift) error
	FetchShift(id string) (*models.Shift, error)
	UpdateShift(shift *models.Shift) error

	InsertAuditLog(entry *models.AuditLog) error

	FetchTable(id uint) (*models.Table, error)
	ListTables() ([]models.Table, error)
	UpdateTableStatus(id uint, status string) error

	CreateUser(user *models.User) error
	FetchUserByEmail(email string) (*models.User, error)
}
