package http

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/auth"
	"storefront/internal/domain"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	customers *services.CustomerService
	catalog   *services.CatalogService
	cart      *services.CartService
	checkout  *services.CheckoutService
	orders    *services.OrderService
	issuer    *auth.TokenIssuer
}

func NewHandler(
	customers *services.CustomerService,
	catalog *services.CatalogService,
	cart *services.CartService,
	checkout *services.CheckoutService,
	orders *services.OrderService,
	issuer *auth.TokenIssuer,
) *Handler {
	return &Handler{
		customers: customers,
		catalog:   catalog,
		cart:      cart,
		checkout:  checkout,
		orders:    orders,
		issuer:    issuer,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/create-customer", h.Register)
	r.POST("/login", h.Login)
	r.POST("/admin/login", h.AdminLogin)

	r.GET("/product/list", h.ListProducts)
	r.GET("/product/:id", h.GetProduct)
	r.GET("/product/category/:categoryID", h.ListProductsByCategory)

	customer := r.Group("/", auth.RequireCustomer(h.issuer))
	customer.GET("/me", h.Me)
	customer.POST("/api/cart", h.AddCartItem)
	customer.GET("/api/cart/list", h.ListCartItems)
	customer.PUT("/api/cart/:itemID", h.UpdateCartItem)
	customer.DELETE("/api/cart/:itemID", h.DeleteCartItem)
	customer.POST("/api/checkout", h.Checkout)
	customer.GET("/order/:orderID", h.TrackOrder)

	admin := r.Group("/admin", auth.RequireAdmin(h.issuer))
	admin.POST("/category/create", h.CreateCategory)
	admin.GET("/category/list", h.ListCategories)
	admin.PUT("/category/update/:categoryID", h.UpdateCategory)
	admin.DELETE("/category/delete/:categoryID", h.DeleteCategory)

	admin.POST("/product/create", h.CreateProduct)
	admin.PUT("/product/update/:id", h.UpdateProduct)
	admin.DELETE("/product/delete/:id", h.DeleteProduct)
	admin.GET("/product/list", h.AdminListProducts)

	admin.GET("/customer/list", h.ListCustomers)
	admin.POST("/create-customer", h.AdminCreateCustomer)
	admin.PUT("/customer/update/:customerID", h.UpdateCustomer)
	admin.DELETE("/customer/delete/:customerID", h.DeleteCustomer)

	admin.GET("/order", h.AdminListOrders)
	admin.GET("/order/detail/:orderID", h.AdminOrderDetail)
	admin.PUT("/order/update/:orderID", h.AdminUpdateOrder)
}

// respondError maps service and domain errors onto the response contract.
// Checkout failures roll back inside the repository; whatever surfaces here
// describes an untouched system.
func respondError(c *gin.Context, err error) {
	var stockErr *domain.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Insufficient stock for %s", stockErr.Title)})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	case errors.Is(err, domain.ErrInvalidPaidValue):
		c.JSON(http.StatusBadRequest, gin.H{"message": "paid must be true or false"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
	case errors.Is(err, services.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
	case errors.Is(err, services.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
	case errors.Is(err, services.ErrCategoryExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category already exists"})
	case errors.Is(err, services.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{"message": "Cannot delete category because it contains products"})
	case errors.Is(err, services.ErrProductExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product already exists"})
	case errors.Is(err, services.ErrCartItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
	case errors.Is(err, services.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"message": "qty must be greater than 0"})
	case errors.Is(err, services.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient stock"})
	case errors.Is(err, services.ErrNoFieldsProvided):
		c.JSON(http.StatusBadRequest, gin.H{"message": "At least one field (status, paid, paid_by) is required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
