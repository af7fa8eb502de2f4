package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthLayout is the storage and wire format of a budget month.
const MonthLayout = "2006-01"

// Budget caps expense spending in one transaction category for one month.
type Budget struct {
	ID        uint64
	UserID    uint64
	Category  Category
	Month     string
	Limit     decimal.Decimal
	CreatedAt time.Time
}

type CreateBudgetInput struct {
	UserID     uint64
	CategoryID uint64
	Month      string
	Limit      decimal.Decimal
}

// ParseMonth reads a YYYY-MM month and returns its first instant in loc.
func ParseMonth(month string, loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation(MonthLayout, month, loc)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return start, nil
}
