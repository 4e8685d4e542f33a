package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts serialize as JSON numbers, matching the API contract.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a financial transaction in the system
type Transaction struct {
	Base
	UserID     uint            `gorm:"not null;index:idx_transactions_user_date" json:"userId"`
	CategoryID *uint           `json:"categoryId,omitempty"`
	Title      string          `gorm:"not null" json:"title"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Type       TransactionType `gorm:"not null" json:"type"`
	Date       time.Time       `gorm:"not null;index:idx_transactions_user_date" json:"date"`
	Note       string          `json:"note,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
