package services

import (
	"storefront/internal/domain"
	"storefront/internal/repository"
)

// CartItemView is a cart line joined with its product at current prices.
type CartItemView struct {
	CartID   uint64  `json:"cart_id"`
	Product  string  `json:"product"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type CartService struct {
	cart     repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(cart repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{cart: cart, products: products}
}

// AddItem adds qty of a product to the customer's cart. An existing line is
// incremented, and the incremented total is what gets validated against
// stock, so repeated adds cannot overshoot.
func (s *CartService) AddItem(customerID, productID uint64, qty int) (*CartItemView, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	line, err := s.cart.FindLine(customerID, productID)
	if err != nil {
		return nil, err
	}

	if line != nil {
		requested := line.Qty + qty
		if requested > product.Stock {
			return nil, ErrInsufficientStock
		}
		line.Qty = requested
		if err := s.cart.Update(line); err != nil {
			return nil, err
		}
	} else {
		if qty > product.Stock {
			return nil, ErrInsufficientStock
		}
		line = &domain.CartLine{
			CustomerID: customerID,
			ProductID:  productID,
			Qty:        qty,
		}
		if err := s.cart.Save(line); err != nil {
			return nil, err
		}
	}

	return cartItemView(line, product), nil
}

// ListItems skips lines whose product has vanished from the catalog.
func (s *CartService) ListItems(customerID uint64) ([]CartItemView, error) {
	lines, err := s.cart.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	views := make([]CartItemView, 0, len(lines))
	for i := range lines {
		product, err := s.products.FindByID(lines[i].ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		views = append(views, *cartItemView(&lines[i], product))
	}
	return views, nil
}

// UpdateItem sets the line quantity. A line owned by another customer is
// reported as not found, never as forbidden.
func (s *CartService) UpdateItem(customerID, itemID uint64, qty int) (*CartItemView, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	line, err := s.cart.FindByIDForCustomer(itemID, customerID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, ErrCartItemNotFound
	}

	product, err := s.products.FindByID(line.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if qty > product.Stock {
		return nil, ErrInsufficientStock
	}

	line.Qty = qty
	if err := s.cart.Update(line); err != nil {
		return nil, err
	}
	return cartItemView(line, product), nil
}

// DeleteItem is idempotent; deleting a missing or foreign line is a no-op.
func (s *CartService) DeleteItem(customerID, itemID uint64) error {
	return s.cart.Delete(itemID, customerID)
}

func cartItemView(line *domain.CartLine, product *domain.Product) *CartItemView {
	return &CartItemView{
		CartID:   line.ID,
		Product:  product.Title,
		Qty:      line.Qty,
		Price:    product.Price,
		Subtotal: product.Price * float64(line.Qty),
	}
}
