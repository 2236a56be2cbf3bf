package domain

import (
	"errors"
	"strings"
	"time"
)

// StatusPending is the only status the system assigns on its own. Admins may
// store any string; it is trimmed and lowercased, never validated against a
// closed set.
const StatusPending = "pending"

var ErrInvalidPaidValue = errors.New("paid must be true or false")

type Order struct {
	ID         uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID uint64        `json:"customer_id" gorm:"not null;index"`
	Total      float64       `json:"total" gorm:"not null"`
	Paid       bool          `json:"paid" gorm:"default:false"`
	PaidBy     string        `json:"paid_by" gorm:"size:128"`
	Status     string        `json:"status" gorm:"size:50;default:'pending'"`
	CreatedAt  time.Time     `json:"created_at" gorm:"autoCreateTime"`
	Details    []OrderDetail `json:"details" gorm:"foreignKey:OrderID"`
}

// OrderDetail is a historical record: Price and Cost are snapshots taken at
// checkout time and never follow later product changes.
type OrderDetail struct {
	ID        uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64  `json:"order_id" gorm:"not null;index"`
	ProductID uint64  `json:"product_id" gorm:"not null"`
	Qty       int     `json:"qty" gorm:"not null"`
	Cost      float64 `json:"cost" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"`
}

// ParsePaid accepts a JSON boolean or the literal strings "true"/"1" and
// "false"/"0" in any case. Everything else is rejected.
func ParsePaid(v any) (bool, error) {
	switch paid := v.(type) {
	case bool:
		return paid, nil
	case string:
		switch strings.ToLower(paid) {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
	}
	return false, ErrInvalidPaidValue
}

func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}
