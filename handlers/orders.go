// orders.go - Order CRUD handlers

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // Sentinel checks
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"storefront-backend/models" // Order and patch types
	"storefront-backend/store"  // Store errors
)

// ListOrders - GET /api/orders, items included
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.store.Orders().List(c.Request.Context())
	if err != nil {
		h.fail(c, "list orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder - POST /api/orders, the client's total is stored as sent
func (h *Handler) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := bindBody(c, &order); err != nil { // Parse JSON input
		message(c, http.StatusBadRequest, err.Error())
		return
	}
	order.ID = ""
	for i := range order.Items {
		order.Items[i].ID = "" // Item identities are assigned by the store too
	}
	if err := h.store.Orders().Create(c.Request.Context(), &order); err != nil {
		h.fail(c, "create order", err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateOrder - PUT /api/orders/:id, status may be set to any valid value regardless of the current one
func (h *Handler) UpdateOrder(c *gin.Context) {
	var patch models.OrderPatch
	if err := bindBody(c, &patch); err != nil {
		message(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.store.Orders().Update(c.Request.Context(), c.Param("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		message(c, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		h.fail(c, "update order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder - DELETE /api/orders/:id, items go with it
func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.store.Orders().Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete order", err)
		return
	}
	message(c, http.StatusOK, "Order deleted successfully")
}
