package domain

type Customer struct {
	ID       uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"size:128;not null;index"`
	Password string `json:"-" gorm:"size:128;not null"`
}
