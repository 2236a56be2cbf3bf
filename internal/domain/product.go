package domain

type Product struct {
	ID          uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string  `json:"title" gorm:"size:128;not null;uniqueIndex"`
	Price       float64 `json:"price" gorm:"not null"`
	Cost        float64 `json:"cost" gorm:"not null"`
	Stock       int     `json:"stock" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Image       string  `json:"image" gorm:"size:255"`
	CategoryID  uint64  `json:"category_id" gorm:"not null;index"`
}
