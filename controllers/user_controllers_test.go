package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/danuarta/pos-backend/controllers"
	"github.com/danuarta/pos-backend/models"
	"github.com/danuarta/pos-backend/store"
	"github.com/danuarta/pos-backend/utils"
)

func newUserRouter(db *gorm.DB) *gin.Engine {
	ctrl := controllers.NewUserController(store.NewGormStore(db))
	return buildRouter(func(r *gin.Engine) {
		r.POST("/register", ctrl.Register)
		r.POST("/login", ctrl.Login)
	})
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r := newUserRouter(db)

	w := doRequest(r, http.MethodPost, "/register",
		`{"name":"Dewi","email":"dewi@example.com","password":"s3cret","role":"manager"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	userID := dataField(t, decodeEnvelope(t, w))["user_id"].(string)
	assert.NotEmpty(t, userID)

	var row models.User
	require.NoError(t, db.First(&row, "id = ?", userID).Error)
	assert.NotEqual(t, "s3cret", row.Password)

	w = doRequest(r, http.MethodPost, "/login",
		`{"email":"dewi@example.com","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, decodeEnvelope(t, w))
	assert.Equal(t, "manager", data["user_role"])

	token, ok := data["token"].(string)
	require.True(t, ok)
	claims, err := utils.TokenIdentity{}.Resolve("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "manager", claims.Role)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	r := newUserRouter(db)

	w := doRequest(r, http.MethodPost, "/register",
		`{"name":"X","email":"x@example.com","password":"p","role":"owner"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decodeEnvelope(t, w)["success"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	hashed, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Name: "Budi", Email: "budi@example.com", Password: string(hashed), Role: "staff"}
	require.NoError(t, store.NewGormStore(db).CreateUser(user))
	r := newUserRouter(db)

	w := doRequest(r, http.MethodPost, "/login", `{"email":"budi@example.com","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", decodeEnvelope(t, w)["error"])
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	r := newUserRouter(db)

	w := doRequest(r, http.MethodPost, "/login", `{"email":"ghost@example.com","password":"p"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", decodeEnvelope(t, w)["error"])
}
