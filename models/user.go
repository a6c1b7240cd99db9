package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string          `gorm:"uniqueIndex" json:"username"`
	Hash     string          `json:"-"`
	Cash     decimal.Decimal `gorm:"type:numeric(20,8)" json:"cash"`
}
