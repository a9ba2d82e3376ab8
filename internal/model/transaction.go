package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransactionType = errors.New("model: invalid transaction type")
	ErrNegativeAmount         = errors.New("model: amount must not be negative")
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionIncome, TransactionExpense:
		return true
	default:
		return false
	}
}

// Transaction is a single income or expense entry. It is owned by the
// user and never mutated by the due-detection engine.
type Transaction struct {
	ID          string
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: transaction id is required")
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTransactionType, t.Type)
	}
	if strings.TrimSpace(t.Category) == "" {
		return errors.New("model: transaction category is required")
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, t.Amount)
	}
	if t.Date.IsZero() {
		return errors.New("model: transaction date is required")
	}
	return nil
}
