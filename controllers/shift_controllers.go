package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danuarta/pos-backend/events"
	"github.com/danuarta/pos-backend/models"
	"github.com/danuarta/pos-backend/store"
	"github.com/danuarta/pos-backend/utils"
)

type ShiftController struct {
	Store store.Gateway
	Auth  Identity
}

func NewShiftController(st store.Gateway, auth Identity) *ShiftController {
	return &ShiftController{Store: st, Auth: auth}
}

// OpenShift starts a staff member's working session with an opening cash
// float.
func (sc *ShiftController) OpenShift(c *gin.Context) {
	if handlePreflight(c) {
		return
	}
	payload, ok := parseBody(c, msgInvalidBody, msgInvalidBody)
	if !ok {
		return
	}

	staffID, ok := stringField(payload, "staff_id")
	if !ok {
		requireField(c, "staff_id is required")
		return
	}
	openingFloat, ok := centsField(payload, "opening_float")
	if !ok {
		requireField(c, "opening_float is required")
		return
	}

	shift := &models.Shift{
		StaffID:           staffID,
		OpenedAt:          time.Now(),
		OpeningFloatCents: openingFloat,
	}
	if err := sc.Store.CreateShift(shift); err != nil {
		utils.ErrorLogger.Printf("open shift: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Failed to open shift"))
		return
	}

	events.BroadcastShift(events.EventShiftOpened, shift)
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"shift_id":   shift.ID,
		"started_at": shift.OpenedAt.UTC().Format(time.RFC3339),
	})
}

// CloseShift ends a session and reconciles the drawer. Manager-only, and
// the audit write shares the transaction: a shift cannot close without its
// trail.
func (sc *ShiftController) CloseShift(c *gin.Context) {
	if handlePreflight(c) {
		return
	}
	claims, err := sc.Auth.Resolve(c.GetHeader("Authorization"))
	if err != nil || !isManager(claims.Role) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}
	payload, ok := parseBody(c, msgInvalidBody, msgInvalidBody)
	if !ok {
		return
	}

	shiftID, ok := stringField(payload, "shift_id")
	if !ok {
		requireField(c, "shift_id is required")
		return
	}
	closingFloat, ok := centsField(payload, "closing_float")
	if !ok {
		requireField(c, "closing_float is required")
		return
	}

	var (
		closed  *models.Shift
		summary gin.H
	)
	err = sc.Store.Transaction(func(tx store.Gateway) error {
		shift, err := tx.FetchShift(shiftID)
		if err != nil {
			return fail(http.StatusNotFound, "Shift not found")
		}
		if shift.ClosedAt != nil {
			return fail(http.StatusUnprocessableEntity, "Shift is not open")
		}

		now := time.Now()
		counted := closingFloat
		shift.ClosedAt = &now
		shift.ClosingFloatCents = &counted
		if err := tx.UpdateShift(shift); err != nil {
			return fail(http.StatusInternalServerError, "Failed to close shift")
		}

		totals, err := tx.PaymentTotalsBetween(shift.OpenedAt, now)
		if err != nil {
			return fail(http.StatusInternalServerError, "Failed to compute shift summary")
		}
		expectedCash := shift.OpeningFloatCents + totals[models.PaymentMethodCash]

		summary = gin.H{
			"opened_at":     shift.OpenedAt.UTC().Format(time.RFC3339),
			"closed_at":     now.UTC().Format(time.RFC3339),
			"opening_float": shift.OpeningFloatCents,
			"closing_float": counted,
			"payments":      totals,
			"expected_cash": expectedCash,
			"cash_variance": counted - expectedCash,
		}

		entry := auditEntry("", claims.UserID, "close_shift", "shift", shift.ID,
			map[string]interface{}{"closing_float": counted, "expected_cash": expectedCash})
		if err := tx.InsertAuditLog(entry); err != nil {
			return fail(http.StatusInternalServerError, "Failed to write audit log")
		}

		utils.InfoLogger.Printf("Shift %s closed: expected cash %s, counted %s",
			shift.ID, utils.FormatCents(expectedCash), utils.FormatCents(counted))
		closed = shift
		return nil
	})
	if err != nil {
		respondAPIError(c, err, "Failed to close shift")
		return
	}

	events.BroadcastShift(events.EventShiftClosed, closed)
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"shift_id": closed.ID,
		"summary":  summary,
	})
}
