package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danuarta/pos-backend/models"
	"github.com/danuarta/pos-backend/utils"
)

// Identity resolves an Authorization header into caller claims. The
// production implementation is utils.TokenIdentity; tests inject their own.
type Identity interface {
	Resolve(authHeader string) (*utils.CustomClaims, error)
}

var ErrNoPermission = errors.New("you don't have permission to access this resource")

// handlePreflight answers OPTIONS with 200 and rejects any method other
// than POST before the body is touched. Returns true when the request has
// been fully answered.
func handlePreflight(c *gin.Context) bool {
	switch c.Request.Method {
	case http.MethodOptions:
		c.String(http.StatusOK, "ok")
		return true
	case http.MethodPost:
		return false
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("method not allowed"))
		return true
	}
}

func isManager(role string) bool {
	return role == "manager" || role == "admin"
}

// apiError carries a status code out of a store transaction so the
// rollback and the wire response stay consistent.
type apiError struct {
	code int
	msg  string
}

func (e *apiError) Error() string { return e.msg }

func fail(code int, msg string) error {
	return &apiError{code: code, msg: msg}
}

// respondAPIError maps a transaction error onto the wire. Anything that is
// not an apiError is a downstream failure and becomes a generic 500; driver
// detail never reaches the client.
func respondAPIError(c *gin.Context, err error, fallback string) {
	var ae *apiError
	if errors.As(err, &ae) {
		utils.RespondError(c, ae.code, ae)
		return
	}
	utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.RespondError(c, http.StatusInternalServerError, errors.New(fallback))
}

func auditEntry(restaurantID, userID, action, entityType, entityID string, payload map[string]interface{}) *models.AuditLog {
	raw, _ := json.Marshal(payload)
	return &models.AuditLog{
		RestaurantID: restaurantID,
		UserID:       userID,
		Action:       action,
		EntityType:   entityType,
		EntityID:     entityID,
		Payload:      string(raw),
		CreatedAt:    time.Now(),
	}
}
