package report

import (
	"time"

	"github.com/shopspring/decimal"

	"billd/internal/model"
)

// Summary holds month totals. Sums are exact decimal accumulations of
// the stored amounts; rounding happens only at display time.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
}

// Summarize totals a transaction set. Balance = income - expenses.
func Summarize(txs []model.Transaction) Summary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case model.TransactionIncome:
			income = income.Add(tx.Amount)
		case model.TransactionExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}
	return Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}
}

// TransactionsInMonth keeps transactions whose date falls in the exact
// calendar year and month.
func TransactionsInMonth(txs []model.Transaction, year int, month time.Month) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Date.Year() == year && tx.Date.Month() == month {
			out = append(out, tx)
		}
	}
	return out
}

// RemindersInMonth keeps reminders whose due date falls in the exact
// calendar year and month. Reminders with an unparsable due date are
// excluded.
func RemindersInMonth(rems []model.Reminder, year int, month time.Month, loc *time.Location) []model.Reminder {
	out := make([]model.Reminder, 0, len(rems))
	for _, rem := range rems {
		due, err := rem.DueInstant(loc)
		if err != nil {
			continue
		}
		if due.Year() == year && due.Month() == month {
			out = append(out, rem)
		}
	}
	return out
}

// FormatAmount renders an amount with two-decimal display formatting.
func FormatAmount(v decimal.Decimal) string {
	return v.StringFixed(2)
}
