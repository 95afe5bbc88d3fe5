package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"uniqueIndex;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
