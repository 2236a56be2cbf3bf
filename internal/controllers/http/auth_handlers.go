package http

import (
	"net/http"
	"strconv"

	"storefront/internal/auth"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	customer, err := h.customers.Register(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Customer created successfully",
		"customer": gin.H{
			"id":       customer.ID,
			"username": customer.Username,
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := h.customers.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": token,
	})
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := h.customers.AdminLogin(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) Me(c *gin.Context) {
	identity := auth.IdentityFrom(c)

	customer, err := h.customers.GetByID(identity.CustomerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       customer.ID,
		"username": customer.Username,
	})
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.customers.List()
	if err != nil {
		respondError(c, err)
		return
	}

	list := make([]gin.H, 0, len(customers))
	for _, customer := range customers {
		list = append(list, gin.H{"id": customer.ID, "username": customer.Username})
	}
	c.JSON(http.StatusOK, gin.H{"customers": list})
}

func (h *Handler) AdminCreateCustomer(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	customer, err := h.customers.Register(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Customer created successfully",
		"customer": gin.H{
			"id":       customer.ID,
			"username": customer.Username,
		},
	})
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("customerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid customer id"})
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	customer, err := h.customers.Update(customerID, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer updated successfully",
		"customer": gin.H{
			"id":       customer.ID,
			"username": customer.Username,
		},
	})
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("customerID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid customer id"})
		return
	}

	if err := h.customers.Delete(customerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
