package domain

// CartLine is one open (customer, product) intent to purchase. The composite
// unique index keeps at most one line per customer per product; repeated adds
// increment Qty instead of inserting.
type CartLine struct {
	ID         uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID uint64 `json:"customer_id" gorm:"not null;uniqueIndex:idx_cart_customer_product"`
	ProductID  uint64 `json:"product_id" gorm:"not null;uniqueIndex:idx_cart_customer_product"`
	Qty        int    `json:"qty" gorm:"not null"`
}
