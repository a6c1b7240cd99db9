package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction types recorded in the journal.
const (
	TypePurchased = "PURCHASED"
	TypeSold      = "SOLD"
)

// Holding is a user's current position in one symbol. A row only exists
// while the user holds at least one share.
type Holding struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_user_symbol,unique" json:"user_id"`
	Symbol string `gorm:"index:idx_user_symbol,unique" json:"symbol"`
	Name   string `json:"name"`
	Shares int    `json:"shares"`
}

// Transaction is one completed buy or sell. Rows are append-only.
type Transaction struct {
	gorm.Model
	UserID   uint            `gorm:"index" json:"user_id"`
	Username string          `json:"username"`
	Symbol   string          `json:"symbol"`
	Shares   int             `json:"shares"`
	Price    decimal.Decimal `gorm:"type:numeric(20,8)" json:"price"`
	Type     string          `json:"type"`
}
