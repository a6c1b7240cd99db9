package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockPrice is one observed quote, logged whenever the provider is queried.
type StockPrice struct {
	gorm.Model
	Symbol    string          `gorm:"index" json:"symbol"`
	Price     decimal.Decimal `gorm:"type:numeric(20,8)" json:"price"`
	Timestamp time.Time       `json:"timestamp"`
}
