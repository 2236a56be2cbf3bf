package http

import (
	"net/http"
	"strconv"

	"storefront/internal/auth"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Checkout(c *gin.Context) {
	identity := auth.IdentityFrom(c)

	order, err := h.checkout.Checkout(c.Request.Context(), identity.CustomerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Checkout successful",
		"order": gin.H{
			"order_id": order.ID,
			"total":    order.Total,
			"status":   order.Status,
			"paid":     order.Paid,
		},
	})
}

func (h *Handler) TrackOrder(c *gin.Context) {
	identity := auth.IdentityFrom(c)

	orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}

	order, err := h.orders.TrackOrder(identity.CustomerID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	details := make([]gin.H, 0, len(order.Details))
	for _, d := range order.Details {
		details = append(details, gin.H{
			"product":  d.Product,
			"qty":      d.Qty,
			"price":    d.Price,
			"subtotal": d.Subtotal,
		})
	}

	c.JSON(http.StatusOK, gin.H{"order": gin.H{
		"id":        order.ID,
		"total":     order.Total,
		"status":    order.Status,
		"paid":      order.Paid,
		"paid_by":   order.PaidBy,
		"date_time": order.CreatedAt,
		"details":   details,
	}})
}

func (h *Handler) AdminListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders()
	if err != nil {
		respondError(c, err)
		return
	}

	if len(orders) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No orders found",
			"orders":  []gin.H{},
		})
		return
	}

	list := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		details := make([]gin.H, 0, len(order.Details))
		for _, d := range order.Details {
			details = append(details, gin.H{
				"product_id": d.ProductID,
				"qty":        d.Qty,
				"price":      d.Price,
				"cost":       d.Cost,
			})
		}
		list = append(list, gin.H{
			"id":          order.ID,
			"customer_id": order.CustomerID,
			"total":       order.Total,
			"status":      order.Status,
			"paid":        order.Paid,
			"paid_by":     order.PaidBy,
			"date_time":   order.CreatedAt,
			"details":     details,
		})
	}

	c.JSON(http.StatusOK, gin.H{"orders": list})
}

func (h *Handler) AdminOrderDetail(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}

	order, err := h.orders.OrderDetail(orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	details := make([]gin.H, 0, len(order.Details))
	for _, d := range order.Details {
		details = append(details, gin.H{
			"product_id":    d.ProductID,
			"product_title": d.Product,
			"qty":           d.Qty,
			"price":         d.Price,
			"cost":          d.Cost,
			"subtotal":      d.Subtotal,
		})
	}

	c.JSON(http.StatusOK, gin.H{"order": gin.H{
		"id":          order.ID,
		"customer_id": order.CustomerID,
		"total":       order.Total,
		"status":      order.Status,
		"paid":        order.Paid,
		"paid_by":     order.PaidBy,
		"date_time":   order.CreatedAt,
		"details":     details,
	}})
}

func (h *Handler) AdminUpdateOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := h.orders.UpdateOrder(orderID, services.UpdateOrderInput{
		Status: req.Status,
		Paid:   req.Paid,
		PaidBy: req.PaidBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"order": gin.H{
			"id":          order.ID,
			"customer_id": order.CustomerID,
			"status":      order.Status,
			"paid":        order.Paid,
			"paid_by":     order.PaidBy,
			"total":       order.Total,
			"date_time":   order.CreatedAt,
		},
	})
}
