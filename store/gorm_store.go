package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/danuarta/pos-backend/models"
)

// GormStore implements Gateway on top of a gorm connection (MySQL in
// production, sqlite in tests).
type GormStore struct {
	db   *gorm.DB
	inTx bool
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transaction(fn func(Gateway) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, inTx: true})
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) FetchOrder(id string) (*models.Order, error) {
	var order models.Order
	q := s.db
	// Lock the order row inside a transaction so concurrent add/void calls
	// against the same order cannot interleave the total recompute.
	// sqlite has no FOR UPDATE; its writes are serialized anyway.
	if s.inTx && s.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.Where("id = ?", id).First(&order).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (s *GormStore) CreateOrder(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	return s.db.Create(order).Error
}

func (s *GormStore) UpdateOrder(order *models.Order) error {
	order.UpdatedAt = time.Now()
	return s.db.Save(order).Error
}

func (s *GormStore) FetchMenuItem(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (s *GormStore) ListMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) InsertOrderItem(item *models.OrderItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return s.db.Create(item).Error
}

func (s *GormStore) FetchOrderItem(id string) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := s.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (s *GormStore) UpdateOrderItem(item *models.OrderItem) error {
	item.UpdatedAt = time.Now()
	return s.db.Save(item).Error
}

func (s *GormStore) ComputeOrderTotal(orderID string) (int64, error) {
	var total int64
	err := s.db.Model(&models.OrderItem{}).
		Where("order_id = ? AND voided = ?", orderID, false).
		Select("COALESCE(SUM(quantity * unit_price_cents), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *GormStore) InsertPayment(payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	return s.db.Create(payment).Error
}

func (s *GormStore) PaymentTotalsBetween(from, to time.Time) (map[string]int64, error) {
	var rows []struct {
		Method string
		Total  int64
	}
	err := s.db.Model(&models.Payment{}).
		Select("method, COALESCE(SUM(amount_cents), 0) as total").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("method").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int64, len(rows))
	for _, r := range rows {
		totals[r.Method] = r.Total
	}
	return totals, nil
}

func (s *GormStore) CreateShift(shift *models.Shift) error {
	if shift.ID == "" {
		shift.ID = uuid.NewString()
	}
	return s.db.Create(shift).Error
}

func (s *GormStore) FetchShift(id string) (*models.Shift, error) {
	var shift models.Shift
	if err := s.db.Where("id = ?", id).First(&shift).Error; err != nil {
		return nil, notFound(err)
	}
	return &shift, nil
}

func (s *GormStore) UpdateShift(shift *models.Shift) error {
	return s.db.Save(shift).Error
}

func (s *GormStore) InsertAuditLog(entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	return s.db.Create(entry).Error
}

func (s *GormStore) FetchTable(id uint) (*models.Table, error) {
	var table models.Table
	if err := s.db.First(&table, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &table, nil
}

func (s *GormStore) ListTables() ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *GormStore) UpdateTableStatus(id uint, status string) error {
	return s.db.Model(&models.Table{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}

func (s *GormStore) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return s.db.Create(user).Error
}

func (s *GormStore) FetchUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}
