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

// AddItemToOrder puts a line item on an open tab. The menu price is
// snapshotted onto the item at insert time, so later menu edits never move
// an existing order. Fetch, status check, insert and total recompute run in
// one transaction holding the order row lock.
func (oc *OrderController) AddItemToOrder(c *gin.Context) {
	if handlePreflight(c) {
		return
	}

	claims, err := oc.Auth.Resolve(c.GetHeader("Authorization"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Unauthorized"))
		return
	}

	payload, ok := parseBody(c, msgInvalidOrMissingBody, msgMissingBody)
	if !ok {
		return
	}

	orderID, ok := stringField(payload, "order_id")
	if !ok {
		requireField(c, "order_id is required and must be a non-empty string")
		return
	}
	menuItemID, ok := stringField(payload, "menu_item_id")
	if !ok {
		requireField(c, "menu_item_id is required and must be a non-empty string")
		return
	}
	quantity, ok := intField(payload, "quantity")
	if !ok || quantity < 1 {
		requireField(c, "quantity is required and must be a positive integer")
		return
	}

	var (
		item  *models.OrderItem
		order *models.Order
		total int64
	)
	err = oc.Store.Transaction(func(tx store.Gateway) error {
		o, err := tx.FetchOrder(orderID)
		if err != nil {
			return fail(http.StatusNotFound, "Order not found")
		}
		if o.Status != models.OrderStatusOpen {
			return fail(http.StatusConflict, "Order is not open")
		}

		menuItem, err := tx.FetchMenuItem(menuItemID)
		if err != nil {
			return fail(http.StatusNotFound, "Menu item not found")
		}

		now := time.Now()
		newItem := &models.OrderItem{
			OrderID:        o.ID,
			MenuItemID:     menuItem.ID,
			Quantity:       quantity,
			UnitPriceCents: menuItem.PriceCents,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.InsertOrderItem(newItem); err != nil {
			return fail(http.StatusInternalServerError, "Failed to add item to order")
		}

		t, err := tx.ComputeOrderTotal(o.ID)
		if err != nil {
			return fail(http.StatusInternalServerError, "Failed to compute order total")
		}

		item, order, total = newItem, o, t
		return nil
	})
	if err != nil {
		respondAPIError(c, err, "Failed to add item to order")
		return
	}

	// Audit is best-effort for adds: the item is already committed and the
	// caller still gets its 200. Failures are logged, not surfaced.
	entry := auditEntry(order.RestaurantID, claims.UserID, "add_item_to_order", "order_item", item.ID,
		map[string]interface{}{
			"order_id":         orderID,
			"menu_item_id":     menuItemID,
			"quantity":         quantity,
			"unit_price_cents": item.UnitPriceCents,
		})
	if err := oc.Store.InsertAuditLog(entry); err != nil {
		utils.ErrorLogger.Printf("audit write failed for order item %s: %v", item.ID, err)
	}

	events.Broadcast(events.Message{Event: events.EventItemAdded, Data: item})
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"order_item_id": item.ID,
		"order_total":   total,
	})
}

// VoidItem excludes a line item from the tab without deleting it.
// Manager-only; the audit write is part of the transaction.
func (oc *OrderController) VoidItem(c *gin.Context) {
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

	itemID, ok := stringField(payload, "order_item_id")
	if !ok {
		requireField(c, "order_item_id is required")
		return
	}
	reason, ok := stringField(payload, "reason")
	if !ok {
		requireField(c, "reason is required")
		return
	}

	var (
		voided *models.OrderItem
		total  int64
	)
	err = oc.Store.Transaction(func(tx store.Gateway) error {
		item, err := tx.FetchOrderItem(itemID)
		if err != nil {
			return fail(http.StatusNotFound, "Order item not found")
		}
		order, err := tx.FetchOrder(item.OrderID)
		if err != nil {
			return fail(http.StatusNotFound, "Order not found")
		}
		if order.Status != models.OrderStatusOpen {
			return fail(http.StatusConflict, "Order is not open")
		}
		if item.Voided {
			return fail(http.StatusConflict, "Item is already voided")
		}

		item.Voided = true
		item.VoidReason = reason
		if err := tx.UpdateOrderItem(item); err != nil {
			return fail(http.StatusInternalServerError, "Failed to void item")
		}

		t, err := tx.ComputeOrderTotal(order.ID)
		if err != nil {
			return fail(http.StatusInternalServerError, "Failed to compute order total")
		}

		entry := auditEntry(order.RestaurantID, claims.UserID, "void_item", "order_item", item.ID,
			map[string]interface{}{"order_id": order.ID, "reason": reason})
		if err := tx.InsertAuditLog(entry); err != nil {
			return fail(http.StatusInternalServerError, "Failed to write audit log")
		}

		voided, total = item, t
		return nil
	})
	if err != nil {
		respondAPIError(c, err, "Failed to void item")
		return
	}

	events.Broadcast(events.Message{Event: events.EventItemVoided, Data: voided})
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"success":     true,
		"order_total": total,
	})
}
