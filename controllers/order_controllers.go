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

type OrderController struct {
	Store store.Gateway
	Auth  Identity
}

func NewOrderController(st store.Gateway, auth Identity) *OrderController {
	return &OrderController{Store: st, Auth: auth}
}

// CreateOrder opens a fresh tab for a table. Every call produces a new
// order id; there is deliberately no idempotency here.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	if handlePreflight(c) {
		return
	}
	payload, ok := parseBody(c, msgInvalidOrMissingBody, msgMissingBody)
	if !ok {
		return
	}

	// Table numbers are positive integers; anything else would survive the
	// float-to-uint conversion as garbage.
	tableNum, ok := intField(payload, "table_id")
	if !ok || tableNum < 1 {
		requireField(c, "table_id is required")
		return
	}
	staffID, ok := stringField(payload, "staff_id")
	if !ok {
		requireField(c, "staff_id is required")
		return
	}
	restaurantID, _ := payload["restaurant_id"].(string)

	now := time.Now()
	tableID := uint(tableNum)
	order := &models.Order{
		RestaurantID: restaurantID,
		TableID:      &tableID,
		StaffID:      staffID,
		Status:       models.OrderStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := oc.Store.CreateOrder(order); err != nil {
		utils.ErrorLogger.Printf("create order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Failed to create order"))
		return
	}

	// Occupy the table when it is known to the floor plan. An unknown
	// table number is not an error for order creation itself.
	if err := oc.Store.UpdateTableStatus(tableID, models.TableStatusOccupied); err != nil {
		utils.ErrorLogger.Printf("occupy table %d: %v", tableID, err)
	}

	events.BroadcastOrder(events.EventOrderCreated, order)
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"order_id": order.ID,
		"status":   order.Status,
	})
}

// CancelOrder voids an entire open tab. Manager-only, and the audit write
// is part of the transaction: no trail, no cancellation.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	if handlePreflight(c) {
		return
	}
	claims, err := oc.Auth.Resolve(c.GetHeader("Authorization"))
	if err != nil || !isManager(claims.Role) {
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
	reason, ok := stringField(payload, "reason")
	if !ok {
		requireField(c, "reason is required")
		return
	}

	var cancelled *models.Order
	err = oc.Store.Transaction(func(tx store.Gateway) error {
		order, err := tx.FetchOrder(orderID)
		if err != nil {
			return fail(http.StatusNotFound, "Order not found")
		}
		if order.Status != models.OrderStatusOpen {
			return fail(http.StatusUnprocessableEntity, "Order cannot be cancelled")
		}

		now := time.Now()
		order.Status = models.OrderStatusCancelled
		order.CancelledAt = &now
		if err := tx.UpdateOrder(order); err != nil {
			return err
		}
		if order.TableID != nil {
			if err := tx.UpdateTableStatus(*order.TableID, models.TableStatusAvailable); err != nil {
				return err
			}
		}

		entry := auditEntry(order.RestaurantID, claims.UserID, "cancel_order", "order", order.ID,
			map[string]interface{}{"reason": reason})
		if err := tx.InsertAuditLog(entry); err != nil {
			return fail(http.StatusInternalServerError, "Failed to write audit log")
		}

		cancelled = order
		return nil
	})
	if err != nil {
		respondAPIError(c, err, "Failed to cancel order")
		return
	}

	events.BroadcastOrder(events.EventOrderCancelled, cancelled)
	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true})
}

// CloseOrder settles an open tab. The final total is recomputed from the
// non-voided line items at close time, never read from a cached column.
func (oc *OrderController) CloseOrder(c *gin.Context) {
	if handlePreflight(c) {
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

	var (
		closed     *models.Order
		finalTotal int64
	)
	err := oc.Store.Transaction(func(tx store.Gateway) error {
		order, err := tx.FetchOrder(orderID)
		if err != nil {
			return fail(http.StatusNotFound, "Order not found")
		}
		if order.Status != models.OrderStatusOpen {
			return fail(http.StatusConflict, "Order is not open")
		}

		total, err := tx.ComputeOrderTotal(order.ID)
		if err != nil {
			return fail(http.StatusInternalServerError, "Failed to compute order total")
		}

		now := time.Now()
		order.Status = models.OrderStatusClosed
		order.ClosedAt = &now
		if err := tx.UpdateOrder(order); err != nil {
			return err
		}
		if order.TableID != nil {
			if err := tx.UpdateTableStatus(*order.TableID, models.TableStatusDirty); err != nil {
				return err
			}
		}

		closed = order
		finalTotal = total
		return nil
	})
	if err != nil {
		respondAPIError(c, err, "Failed to close order")
		return
	}

	entry := auditEntry(closed.RestaurantID, "", "close_order", "order", closed.ID,
		map[string]interface{}{"final_total": finalTotal})
	if err := oc.Store.InsertAuditLog(entry); err != nil {
		utils.ErrorLogger.Printf("audit write failed for order %s: %v", closed.ID, err)
	}

	events.BroadcastOrder(events.EventOrderClosed, closed)
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"success":     true,
		"final_total": finalTotal,
	})
}
