package controllers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/danuarta/pos-backend/middlewares"
	"github.com/danuarta/pos-backend/models"
	"github.com/danuarta/pos-backend/store"
	"github.com/danuarta/pos-backend/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// One named in-memory database per test so state never leaks between
	// tests while the connection pool still sees the same db.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Shift{},
		&models.AuditLog{},
	))
	return db
}

// buildRouter wires the CORS middleware plus whatever routes the test
// registers, mirroring the production router setup.
func buildRouter(register func(r *gin.Engine)) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.CORSMiddlewares())
	register(r)
	return r
}

func doRequest(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func dataField(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "expected data object in response")
	return data
}

// staticIdentity returns fixed claims regardless of the header, standing in
// for a verified token.
type staticIdentity struct {
	claims *utils.CustomClaims
	err    error
}

func (s staticIdentity) Resolve(string) (*utils.CustomClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func identityWithRole(role string) staticIdentity {
	return staticIdentity{claims: &utils.CustomClaims{UserID: "user-" + role, Role: role}}
}

func deniedIdentity() staticIdentity {
	return staticIdentity{err: errors.New("missing bearer token")}
}

// failingStore wraps a real gateway and injects failures on selected
// writes, including inside transactions.
type failingStore struct {
	store.Gateway
	failInsertOrderItem bool
	failAudit           bool
	failTotal           bool
}

func (f *failingStore) Transaction(fn func(store.Gateway) error) error {
	return f.Gateway.Transaction(func(tx store.Gateway) error {
		return fn(&failingStore{
			Gateway:             tx,
			failInsertOrderItem: f.failInsertOrderItem,
			failAudit:           f.failAudit,
			failTotal:           f.failTotal,
		})
	})
}

func (f *failingStore) InsertOrderItem(item *models.OrderItem) error {
	if f.failInsertOrderItem {
		return errors.New("insert refused")
	}
	return f.Gateway.InsertOrderItem(item)
}

func (f *failingStore) InsertAuditLog(entry *models.AuditLog) error {
	if f.failAudit {
		return errors.New("audit refused")
	}
	return f.Gateway.InsertAuditLog(entry)
}

func (f *failingStore) ComputeOrderTotal(orderID string) (int64, error) {
	if f.failTotal {
		return 0, errors.New("total refused")
	}
	return f.Gateway.ComputeOrderTotal(orderID)
}

func seedOrder(t *testing.T, db *gorm.DB, status string) *models.Order {
	t.Helper()
	now := time.Now()
	tableID := uint(1)
	order := &models.Order{
		ID:           uuid.NewString(),
		RestaurantID: uuid.NewString(),
		TableID:      &tableID,
		StaffID:      uuid.NewString(),
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, priceCents int64) *models.MenuItem {
	t.Helper()
	now := time.Now()
	item := &models.MenuItem{
		ID:         uuid.NewString(),
		MenuID:     uuid.NewString(),
		Name:       name,
		PriceCents: priceCents,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedOrderItem(t *testing.T, db *gorm.DB, orderID, menuItemID string, qty int, priceCents int64, voided bool) *models.OrderItem {
	t.Helper()
	now := time.Now()
	item := &models.OrderItem{
		ID:             uuid.NewString(),
		OrderID:        orderID,
		MenuItemID:     menuItemID,
		Quantity:       qty,
		UnitPriceCents: priceCents,
		Voided:         voided,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedShift(t *testing.T, db *gorm.DB, openedAt time.Time, openingFloat int64) *models.Shift {
	t.Helper()
	shift := &models.Shift{
		ID:                uuid.NewString(),
		StaffID:           uuid.NewString(),
		OpenedAt:          openedAt,
		OpeningFloatCents: openingFloat,
	}
	require.NoError(t, db.Create(shift).Error)
	return shift
}
