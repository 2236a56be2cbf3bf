package http

type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Cost        *float64 `json:"cost" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
	CategoryID  *uint64  `json:"category_id" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Cost        *float64 `json:"cost" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	CategoryID  *uint64  `json:"category_id"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

type AddCartItemRequest struct {
	ProductID uint64 `json:"product_id" binding:"required"`
	// Qty defaults to 1 when omitted.
	Qty *int `json:"qty"`
}

type UpdateCartItemRequest struct {
	Qty *int `json:"qty" binding:"required"`
}

type UpdateOrderRequest struct {
	Status string `json:"status"`
	Paid   any    `json:"paid"`
	PaidBy string `json:"paid_by"`
}

type UpdateCustomerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
