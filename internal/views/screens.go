package views

import (
	"fmt"
	"strings"
)

type SummaryData struct {
	MonthLabel    string
	TotalIncome   string
	TotalExpenses string
	Balance       string
}

type BillData struct {
	ID       string
	BillName string
	Amount   string
	DueDate  string
	DueTime  string
	Notified bool
	Snoozed  bool
}

type DashboardPanelData struct {
	Summary       SummaryData
	UpcomingBills []BillData
	OverdueBills  []BillData
}

type TransactionItemData struct {
	ID          string
	Type        string
	Category    string
	Amount      string
	Date        string
	Description string
}

type TransactionsPanelData struct {
	MonthLabel string
	TableView  string
	Items      []TransactionItemData
	SelectedID string
}

type RemindersPanelData struct {
	ListView   string
	Bills      []BillData
	SelectedID string
}

type ToastData struct {
	BillName string
	Amount   string
	DueDate  string
	DueTime  string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("dashboard:\n")
	b.WriteString(fmt.Sprintf("month: %s\n", data.Summary.MonthLabel))
	b.WriteString("actions: [h/l]month [1]dashboard [2]transactions [3]bills\n\n")
	b.WriteString(fmt.Sprintf("income:   %s\n", data.Summary.TotalIncome))
	b.WriteString(fmt.Sprintf("expenses: %s\n", data.Summary.TotalExpenses))
	b.WriteString(fmt.Sprintf("balance:  %s\n", data.Summary.Balance))
	renderBillSection(&b, "Overdue", data.OverdueBills, "")
	renderBillSection(&b, "Upcoming", data.UpcomingBills, "")
	return strings.TrimSpace(b.String())
}

func RenderTransactionsPanel(data TransactionsPanelData) string {
	var b strings.Builder
	b.WriteString("transactions:\n")
	b.WriteString(fmt.Sprintf("month: %s\n", data.MonthLabel))
	b.WriteString("actions: [j/k]move [h/l]month [x]delete\n")
	b.WriteString(data.TableView + "\n")
	if len(data.Items) == 0 {
		b.WriteString("(no transactions this month)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s %s %s", cursor, strings.ToUpper(item.Type), item.Date, item.Amount, item.Category))
		if item.Description != "" {
			b.WriteString(" " + item.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderRemindersPanel(data RemindersPanelData) string {
	var b strings.Builder
	b.WriteString("bills:\n")
	b.WriteString("actions: [j/k]move [s]snooze [x]delete\n")
	b.WriteString(data.ListView + "\n")
	renderBillSection(&b, "All", data.Bills, data.SelectedID)
	return strings.TrimSpace(b.String())
}

func RenderToast(data ToastData) string {
	return fmt.Sprintf("bill due: %s %s (due %s %s) [s]snooze [d]dismiss",
		data.BillName, data.Amount, data.DueDate, data.DueTime)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func renderBillSection(b *strings.Builder, title string, bills []BillData, selectedID string) {
	b.WriteString(fmt.Sprintf("\n%s:\n", title))
	if len(bills) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, bill := range bills {
		cursor := " "
		if selectedID == bill.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s due:%s %s", cursor, statusBadge(bill), bill.BillName, bill.Amount, bill.DueDate, bill.DueTime))
		b.WriteString("\n")
	}
}

func statusBadge(bill BillData) string {
	if bill.Snoozed {
		return "[SNOOZED]"
	}
	if bill.Notified {
		return "[NOTIFIED]"
	}
	return "[PENDING]"
}
