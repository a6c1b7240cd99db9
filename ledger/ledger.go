// Package ledger owns cash balances, holdings and the transaction journal,
// and the atomic rules for mutating them. It is the only component with
// money-moving side effects; handlers translate HTTP input into these calls.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock-simulator/database"
	"stock-simulator/models"
	"stock-simulator/quotes"
)

const minPasswordLen = 6

type Ledger struct {
	db           *gorm.DB
	quotes       quotes.Provider
	startingCash decimal.Decimal
}

func New(db *gorm.DB, provider quotes.Provider, startingCash decimal.Decimal) *Ledger {
	return &Ledger{db: db, quotes: provider, startingCash: startingCash}
}

// Register creates an account seeded with the starting cash balance.
func (l *Ledger) Register(username, password, confirmation string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}
	if password != confirmation {
		return nil, fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Hash:     string(hash),
		Cash:     l.startingCash,
	}

	err = l.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("username = ?", username).First(&existing).Error
		if err == nil {
			return ErrDuplicateUsername
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies a username/password pair and returns the user id.
func (l *Ledger) Authenticate(username, password string) (uint, error) {
	var user models.User
	if err := l.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(password)); err != nil {
		return 0, ErrInvalidCredentials
	}
	return user.ID, nil
}

// ChangePassword replaces a user's password after verifying the current one.
func (l *Ledger) ChangePassword(username, current, newPassword, confirmation string) error {
	if username == "" || current == "" || newPassword == "" {
		return fmt.Errorf("%w: username, current and new password required", ErrInvalidInput)
	}
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: new password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}
	if newPassword != confirmation {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}

	var user models.User
	if err := l.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return l.db.Model(&user).Update("hash", string(hash)).Error
}

// Quote resolves a symbol through the provider and logs the observed price.
// Provider absence and provider failure both surface as ErrUnknownSymbol.
func (l *Ledger) Quote(ctx context.Context, symbol string) (quotes.Quote, error) {
	if quotes.Normalize(symbol) == "" {
		return quotes.Quote{}, fmt.Errorf("%w: symbol required", ErrInvalidInput)
	}
	q, err := l.quotes.Lookup(ctx, symbol)
	if err != nil {
		return quotes.Quote{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, quotes.Normalize(symbol))
	}
	_ = database.LogQuote(l.db, q)
	return q, nil
}

// TradeReceipt reports the state after a successful buy or sell.
type TradeReceipt struct {
	Symbol     string          `json:"symbol"`
	Shares     int             `json:"shares"`
	Price      decimal.Decimal `json:"price"`
	Total      decimal.Decimal `json:"total"`
	Cash       decimal.Decimal `json:"cash"`
	HeldShares int             `json:"held_shares"`
}

// Buy purchases shares at the current quoted price. The debit, the holding
// upsert and the journal append happen in one store transaction with the
// user row locked, so concurrent trades by the same user serialize.
func (l *Ledger) Buy(ctx context.Context, userID uint, symbol, sharesRaw string) (*TradeReceipt, error) {
	if quotes.Normalize(symbol) == "" {
		return nil, fmt.Errorf("%w: symbol required", ErrInvalidInput)
	}
	shares, err := ParseShareCount(sharesRaw)
	if err != nil {
		return nil, err
	}
	q, err := l.quotes.Lookup(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, quotes.Normalize(symbol))
	}

	cost := q.Price.Mul(decimal.NewFromInt(int64(shares)))
	receipt := TradeReceipt{Symbol: q.Symbol, Shares: shares, Price: q.Price, Total: cost}

	err = l.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			return err
		}
		if cost.GreaterThan(user.Cash) {
			return ErrInsufficientFunds
		}

		receipt.Cash = user.Cash.Sub(cost)
		if err := tx.Model(&user).Update("cash", receipt.Cash).Error; err != nil {
			return err
		}

		var holding models.Holding
		err := tx.Where("user_id = ? AND symbol = ?", userID, q.Symbol).First(&holding).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			holding = models.Holding{UserID: userID, Symbol: q.Symbol, Name: q.Name, Shares: shares}
			if err := tx.Create(&holding).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			holding.Shares += shares
			if err := tx.Model(&holding).Update("shares", holding.Shares).Error; err != nil {
				return err
			}
		}
		receipt.HeldShares = holding.Shares

		journal := models.Transaction{
			UserID:   userID,
			Username: user.Username,
			Symbol:   q.Symbol,
			Shares:   shares,
			Price:    q.Price,
			Type:     models.TypePurchased,
		}
		return tx.Create(&journal).Error
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Sell disposes of shares at the current quoted price. Credits cash,
// decrements the holding (deleting the row at zero) and appends a SOLD
// transaction, all in one store transaction.
func (l *Ledger) Sell(ctx context.Context, userID uint, symbol, sharesRaw string) (*TradeReceipt, error) {
	if quotes.Normalize(symbol) == "" {
		return nil, fmt.Errorf("%w: symbol required", ErrInvalidInput)
	}
	shares, err := ParseShareCount(sharesRaw)
	if err != nil {
		return nil, err
	}
	q, err := l.quotes.Lookup(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, quotes.Normalize(symbol))
	}

	proceeds := q.Price.Mul(decimal.NewFromInt(int64(shares)))
	receipt := TradeReceipt{Symbol: q.Symbol, Shares: shares, Price: q.Price, Total: proceeds}

	err = l.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			return err
		}

		var holding models.Holding
		err := tx.Where("user_id = ? AND symbol = ?", userID, q.Symbol).First(&holding).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoSuchHolding
		}
		if err != nil {
			return err
		}
		if shares > holding.Shares {
			return ErrInsufficientShares
		}

		receipt.Cash = user.Cash.Add(proceeds)
		if err := tx.Model(&user).Update("cash", receipt.Cash).Error; err != nil {
			return err
		}

		holding.Shares -= shares
		if holding.Shares == 0 {
			if err := tx.Unscoped().Delete(&holding).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&holding).Update("shares", holding.Shares).Error; err != nil {
				return err
			}
		}
		receipt.HeldShares = holding.Shares

		journal := models.Transaction{
			UserID:   userID,
			Username: user.Username,
			Symbol:   q.Symbol,
			Shares:   shares,
			Price:    q.Price,
			Type:     models.TypeSold,
		}
		return tx.Create(&journal).Error
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Position is one portfolio line priced at the current quote.
type Position struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Shares int             `json:"shares"`
	Price  decimal.Decimal `json:"price"`
	Value  decimal.Decimal `json:"value"`
}

// Snapshot is a user's cash plus every holding priced at the current quote.
type Snapshot struct {
	Cash      decimal.Decimal `json:"cash"`
	Positions []Position      `json:"positions"`
	Total     decimal.Decimal `json:"total"`
}

// PortfolioSnapshot prices the portfolio line by line. Each holding is
// quoted separately, so the total reflects the provider at slightly
// different instants rather than one atomic market read.
func (l *Ledger) PortfolioSnapshot(ctx context.Context, userID uint) (*Snapshot, error) {
	var user models.User
	if err := l.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	var holdings []models.Holding
	if err := l.db.Where("user_id = ?", userID).Order("symbol").Find(&holdings).Error; err != nil {
		return nil, err
	}

	snapshot := Snapshot{Cash: user.Cash, Positions: make([]Position, 0, len(holdings)), Total: user.Cash}
	for _, h := range holdings {
		q, err := l.quotes.Lookup(ctx, h.Symbol)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, h.Symbol)
		}
		value := q.Price.Mul(decimal.NewFromInt(int64(h.Shares)))
		snapshot.Positions = append(snapshot.Positions, Position{
			Symbol: h.Symbol,
			Name:   h.Name,
			Shares: h.Shares,
			Price:  q.Price,
			Value:  value,
		})
		snapshot.Total = snapshot.Total.Add(value)
	}
	return &snapshot, nil
}

// History returns the user's transaction journal, oldest first.
func (l *Ledger) History(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := l.db.Where("user_id = ?", userID).Order("id").Find(&transactions).Error
	return transactions, err
}
