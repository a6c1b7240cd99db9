package database

import (
	"time"

	"gorm.io/gorm"

	"stock-simulator/models"
	"stock-simulator/quotes"
)

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Holding{},
		&models.Transaction{},
		&models.StockPrice{},
	)
}

// LogQuote appends one observed price to the stock_prices log.
func LogQuote(db *gorm.DB, q quotes.Quote) error {
	entry := models.StockPrice{
		Symbol:    q.Symbol,
		Price:     q.Price,
		Timestamp: time.Now(),
	}
	return db.Create(&entry).Error
}
