package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danuarta/pos-backend/events"
	"github.com/danuarta/pos-backend/models"
	"github.com/danuarta/pos-backend/store"
	"github.com/danuarta/pos-backend/utils"
)

type PaymentController struct {
	Store store.Gateway
	Auth  Identity
}

func NewPaymentController(st store.Gateway, auth Identity) *PaymentController {
	return &PaymentController{Store: st, Auth: auth}
}

func validPaymentMethod(method string) bool {
	switch method {
	case models.PaymentMethodCash, models.PaymentMethodCard, models.PaymentMethodOther:
		return true
	}
	return false
}

// RecordPayment writes a payment against an open order. Change is only due
// on cash, when the tender exceeds the recomputed order total.
func (pc *PaymentController) RecordPayment(c *gin.Context) {
	if handlePreflight(c) {
		return
	}
	claims, err := pc.Auth.Resolve(c.GetHeader("Authorization"))
	if err != nil {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}
	payload, ok := parseBody(c, msgInvalidBody, msgInvalidBody)
	if !ok {
		return
	}

	orderID, ok := stringField(payload, "order_id")
	if !ok {
		requireField(c, "order_id is required")
		return
	}
	amount, ok := centsField(payload, "amount")
	if !ok {
		requireField(c, "amount is required")
		return
	}
	if amount <= 0 {
		requireField(c, "amount must be greater than 0")
		return
	}
	method, ok := stringField(payload, "method")
	if !ok {
		requireField(c, "method is required")
		return
	}
	if !validPaymentMethod(method) {
		requireField(c, "method must be one of cash, card, other")
		return
	}

	var payment *models.Payment
	err = pc.Store.Transaction(func(tx store.Gateway) error {
		order, err := tx.FetchOrder(orderID)
		if err != nil {
			return fail(http.StatusNotFound, "Order not found")
		}
		if order.Status != models.OrderStatusOpen {
			return fail(http.StatusUnprocessableEntity, "Order is not open")
		}

		total, err := tx.ComputeOrderTotal(order.ID)
		if err != nil {
			return fail(http.StatusInternalServerError, "Failed to compute order total")
		}

		var changeDue int64
		if method == models.PaymentMethodCash && amount > total {
			changeDue = amount - total
		}

		p := &models.Payment{
			OrderID:        order.ID,
			Method:         method,
			AmountCents:    amount,
			ChangeDueCents: changeDue,
			CreatedAt:      time.Now(),
		}
		if err := tx.InsertPayment(p); err != nil {
			return fail(http.StatusInternalServerError, "Failed to record payment")
		}

		payment = p
		return nil
	})
	if err != nil {
		respondAPIError(c, err, "Failed to record payment")
		return
	}

	entry := auditEntry("", claims.UserID, "record_payment", "payment", payment.ID,
		map[string]interface{}{"order_id": orderID, "method": method, "amount_cents": payment.AmountCents})
	if err := pc.Store.InsertAuditLog(entry); err != nil {
		utils.ErrorLogger.Printf("audit write failed for payment %s: %v", payment.ID, err)
	}

	events.BroadcastPayment(payment)
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"payment_id": payment.ID,
		"change_due": payment.ChangeDueCents,
	})
}
