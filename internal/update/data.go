package update

import (
	"context"
	"fmt"
	"sort"
	"time"

	"billd/internal/model"
	"billd/internal/report"
	"billd/internal/storage"
)

// reloadData replaces the in-memory transaction and reminder sets from
// the repository. Rows that fail to decode are skipped so one bad
// record cannot blank the whole screen.
func (m *Model) reloadData() {
	if m.repo == nil {
		return
	}
	ctx := context.Background()

	txRows, err := m.repo.ListTransactions(ctx, storage.TransactionListFilter{})
	if err != nil {
		m.LastError = fmt.Errorf("load transactions: %w", err)
		m.Status = StatusBar{Text: m.LastError.Error(), IsError: true}
		return
	}
	txs := make([]model.Transaction, 0, len(txRows))
	for _, row := range txRows {
		tx, err := storage.DecodeTransaction(row)
		if err != nil {
			continue
		}
		txs = append(txs, tx)
	}

	remRows, err := m.repo.ListReminders(ctx, storage.ReminderListFilter{})
	if err != nil {
		m.LastError = fmt.Errorf("load reminders: %w", err)
		m.Status = StatusBar{Text: m.LastError.Error(), IsError: true}
		return
	}
	rems := make([]model.Reminder, 0, len(remRows))
	for _, row := range remRows {
		rem, err := storage.DecodeReminder(row)
		if err != nil {
			continue
		}
		rems = append(rems, rem)
	}

	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })
	sort.SliceStable(rems, func(i, j int) bool {
		if rems[i].DueDate != rems[j].DueDate {
			return rems[i].DueDate < rems[j].DueDate
		}
		return rems[i].DueTime < rems[j].DueTime
	})

	m.Transactions = txs
	m.Reminders = rems
	m.clampCursors()
}

func (m *Model) monthTransactions() []model.Transaction {
	return report.TransactionsInMonth(m.Transactions, m.ViewedMonth.Year(), m.ViewedMonth.Month())
}

func (m *Model) monthReminders() []model.Reminder {
	return report.RemindersInMonth(m.Reminders, m.ViewedMonth.Year(), m.ViewedMonth.Month(), m.loc)
}

func (m *Model) monthSummary() report.Summary {
	return report.Summarize(m.monthTransactions())
}

// shiftViewedMonth moves the viewed month by delta months, normalized
// to the first of the month so day overflow cannot skip a month.
func (m *Model) shiftViewedMonth(delta int) {
	base := time.Date(m.ViewedMonth.Year(), m.ViewedMonth.Month(), 1, 0, 0, 0, 0, m.loc)
	m.ViewedMonth = base.AddDate(0, delta, 0)
	m.TxCursor = 0
	m.persistState()
}

func (m *Model) clampCursors() {
	if monthLen := len(m.monthTransactions()); m.TxCursor >= monthLen {
		m.TxCursor = maxInt(0, monthLen-1)
	}
	if m.BillCursor >= len(m.Reminders) {
		m.BillCursor = maxInt(0, len(m.Reminders)-1)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (m *Model) reminderByID(id string) (model.Reminder, bool) {
	for _, rem := range m.Reminders {
		if rem.ID == id {
			return rem, true
		}
	}
	return model.Reminder{}, false
}
