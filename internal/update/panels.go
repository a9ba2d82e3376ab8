package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"billd/internal/model"
	"billd/internal/report"
	"billd/internal/views"
)

func (m *Model) billData(rem model.Reminder) views.BillData {
	return views.BillData{
		ID:       rem.ID,
		BillName: rem.BillName,
		Amount:   report.FormatAmount(rem.Amount),
		DueDate:  rem.DueDate,
		DueTime:  rem.DueTime,
		Notified: rem.Notified,
		Snoozed:  rem.Snoozed(m.now()),
	}
}

func (m *Model) renderDashboardView() string {
	summary := m.monthSummary()
	now := m.now()

	var upcoming, overdue []views.BillData
	for _, rem := range m.monthReminders() {
		due, err := rem.DueInstant(m.loc)
		if err != nil {
			continue
		}
		if !due.After(now) && !rem.Snoozed(now) {
			overdue = append(overdue, m.billData(rem))
		} else {
			upcoming = append(upcoming, m.billData(rem))
		}
	}

	return views.RenderDashboardPanel(views.DashboardPanelData{
		Summary: views.SummaryData{
			MonthLabel:    m.ViewedMonth.Format("January 2006"),
			TotalIncome:   report.FormatAmount(summary.TotalIncome),
			TotalExpenses: report.FormatAmount(summary.TotalExpenses),
			Balance:       report.FormatAmount(summary.Balance),
		},
		UpcomingBills: upcoming,
		OverdueBills:  overdue,
	})
}

func (m *Model) renderTransactionsView() string {
	monthTxs := m.monthTransactions()
	items := make([]views.TransactionItemData, 0, len(monthTxs))
	for _, tx := range monthTxs {
		items = append(items, views.TransactionItemData{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Category:    tx.Category,
			Amount:      report.FormatAmount(tx.Amount),
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
		})
	}
	selected := ""
	if m.TxCursor >= 0 && m.TxCursor < len(items) {
		selected = items[m.TxCursor].ID
	}
	return views.RenderTransactionsPanel(views.TransactionsPanelData{
		MonthLabel: m.ViewedMonth.Format("January 2006"),
		TableView:  m.txTable.View(),
		Items:      items,
		SelectedID: selected,
	})
}

func (m *Model) renderBillsView() string {
	bills := make([]views.BillData, 0, len(m.Reminders))
	for _, rem := range m.Reminders {
		bills = append(bills, m.billData(rem))
	}
	selected := ""
	if m.BillCursor >= 0 && m.BillCursor < len(m.Reminders) {
		selected = m.Reminders[m.BillCursor].ID
	}
	return views.RenderRemindersPanel(views.RemindersPanelData{
		ListView:   m.billList.View(),
		Bills:      bills,
		SelectedID: selected,
	})
}

func (m *Model) renderToastsView() string {
	if len(m.ActiveNotifications) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.ActiveNotifications))
	for _, rem := range m.ActiveNotifications {
		lines = append(lines, views.RenderToast(views.ToastData{
			BillName: rem.BillName,
			Amount:   report.FormatAmount(rem.Amount),
			DueDate:  rem.DueDate,
			DueTime:  rem.DueTime,
		}))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderSidePane() string {
	parts := make([]string, 0, 2)
	if palette := views.RenderCommandPalette(m.Palette.Active, m.Palette.Input); palette != "" {
		parts = append(parts, palette)
	}
	if help := m.renderHelpIfVisible(); help != "" {
		parts = append(parts, help)
	}
	return strings.Join(parts, "\n\n")
}

const helpMarkdown = `# billd

Track income and expenses per month and get reminded when bills
come due.

## Commands

- ` + "`add income|expense <amount> <category> [description]`" + `
- ` + "`snooze <id|last>`" + `
- ` + "`show month <yyyy-mm>`" + ` / ` + "`show bills|transactions`" + `
- ` + "`reschedule <id|last> <yyyy-mm-dd> <hh:mm>`" + `
`

func (m Model) handleTransactionsKey(key tea.KeyMsg) Model {
	monthTxs := m.monthTransactions()
	switch key.String() {
	case "j", "down":
		if m.TxCursor < len(monthTxs)-1 {
			m.TxCursor++
		}
	case "k", "up":
		if m.TxCursor > 0 {
			m.TxCursor--
		}
	case "x":
		if m.TxCursor >= 0 && m.TxCursor < len(monthTxs) {
			m.deleteTransaction(monthTxs[m.TxCursor].ID)
		}
	}
	return m
}

func (m Model) handleBillsKey(key tea.KeyMsg) Model {
	switch key.String() {
	case "j", "down":
		if m.BillCursor < len(m.Reminders)-1 {
			m.BillCursor++
		}
	case "k", "up":
		if m.BillCursor > 0 {
			m.BillCursor--
		}
	case "s":
		if m.BillCursor >= 0 && m.BillCursor < len(m.Reminders) {
			m.snoozeReminder(m.Reminders[m.BillCursor].ID)
		}
	case "x":
		if m.BillCursor >= 0 && m.BillCursor < len(m.Reminders) {
			m.deleteReminder(m.Reminders[m.BillCursor].ID)
		}
	}
	return m
}

func (m *Model) deleteTransaction(id string) {
	if m.repo != nil {
		if err := m.repo.DeleteTransaction(context.Background(), id); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: fmt.Sprintf("delete failed: %v", err), IsError: true}
			return
		}
	}
	kept := m.Transactions[:0]
	for _, tx := range m.Transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	m.Transactions = kept
	m.clampCursors()
	m.Status = StatusBar{Text: "transaction deleted", IsError: false}
}

func (m *Model) deleteReminder(id string) {
	if m.repo != nil {
		if err := m.repo.DeleteReminder(context.Background(), id); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: fmt.Sprintf("delete failed: %v", err), IsError: true}
			return
		}
	}
	kept := m.Reminders[:0]
	for _, rem := range m.Reminders {
		if rem.ID != id {
			kept = append(kept, rem)
		}
	}
	m.Reminders = kept
	m.removeToast(id)
	m.clampCursors()
	m.Status = StatusBar{Text: "bill deleted", IsError: false}
}
