package http

import (
	"net/http"
	"strconv"

	"storefront/internal/auth"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AddCartItem(c *gin.Context) {
	identity := auth.IdentityFrom(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID is required"})
		return
	}

	qty := 1
	if req.Qty != nil {
		qty = *req.Qty
	}

	item, err := h.cart.AddItem(identity.CustomerID, req.ProductID, qty)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart_item": item})
}

func (h *Handler) ListCartItems(c *gin.Context) {
	identity := auth.IdentityFrom(c)

	items, err := h.cart.ListItems(identity.CustomerID)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(items) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Cart is empty"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": items})
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	identity := auth.IdentityFrom(c)

	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item id"})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity (qty) is required"})
		return
	}

	item, err := h.cart.UpdateItem(identity.CustomerID, itemID, *req.Qty)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cart item updated successfully",
		"cart_item": item,
	})
}

func (h *Handler) DeleteCartItem(c *gin.Context) {
	identity := auth.IdentityFrom(c)

	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item id"})
		return
	}

	if err := h.cart.DeleteItem(identity.CustomerID, itemID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted successfully"})
}
