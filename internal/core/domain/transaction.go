package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeInvestment TransactionType = "investment"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeInvestment:
		return true
	}
	return false
}

type Transaction struct {
	ID        uint64
	UserID    uint64
	Type      TransactionType
	Amount    decimal.Decimal
	Date      time.Time
	Note      *string
	Category  *Category
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

func (t Transaction) NoteText() string {
	if t.Note == nil {
		return ""
	}
	return *t.Note
}

type CreateTransactionInput struct {
	UserID     uint64
	Type       TransactionType
	Amount     decimal.Decimal
	Date       time.Time
	Note       *string
	CategoryID *uint64
}

type UpdateTransactionInput struct {
	Type          *TransactionType
	Amount        *decimal.Decimal
	Date          *time.Time
	Note          *string
	NoteSet       bool
	CategoryID    *uint64
	CategoryIDSet bool
}
