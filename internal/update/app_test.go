package update

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"billd/internal/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testBill(id, name, dueDate, dueTime string) model.Reminder {
	return model.Reminder{
		ID:        id,
		BillName:  name,
		Amount:    decimal.RequireFromString("42.50"),
		DueDate:   dueDate,
		DueTime:   dueTime,
		Sound:     model.SoundDefault,
		CreatedAt: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()
	if m.CurrentView != ViewDashboard {
		t.Fatalf("expected default view %q, got %q", ViewDashboard, m.CurrentView)
	}
	if m.ViewedMonth.Day() != 1 {
		t.Fatalf("expected viewed month normalized to day 1, got %d", m.ViewedMonth.Day())
	}
	if !m.Focused {
		t.Fatalf("expected model to start focused")
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	next := updated.(Model)
	if next.CurrentView != ViewTransactions {
		t.Fatalf("expected transactions view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	next = updated.(Model)
	if next.CurrentView != ViewBills {
		t.Fatalf("expected bills view, got %q", next.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(SwitchViewMsg{View: ViewBills})
	next := updated.(Model)
	if next.CurrentView != ViewBills {
		t.Fatalf("expected bills view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewBills {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	errMsg := errors.New("boom")
	updated, _ = next.Update(AppErrorMsg{Err: errMsg})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestFocusBlurTracksVisibility(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(tea.BlurMsg{})
	next := updated.(Model)
	if next.Focused {
		t.Fatalf("expected blurred model")
	}
	updated, _ = next.Update(tea.FocusMsg{})
	next = updated.(Model)
	if !next.Focused {
		t.Fatalf("expected focused model")
	}
}

func TestReminderFiredAddsToast(t *testing.T) {
	m := NewModel()
	bill := testBill("r1", "Electricity", "2026-03-10", "09:00")
	bill.Notified = true

	updated, _ := m.Update(ReminderFiredMsg{Reminder: bill})
	next := updated.(Model)
	if len(next.ActiveNotifications) != 1 {
		t.Fatalf("expected one toast, got %d", len(next.ActiveNotifications))
	}
	if next.LastFiredID != "r1" {
		t.Fatalf("expected last fired id r1, got %q", next.LastFiredID)
	}

	// A second fire for the same bill replaces the toast rather than
	// stacking a duplicate.
	updated, _ = next.Update(ReminderFiredMsg{Reminder: bill})
	next = updated.(Model)
	if len(next.ActiveNotifications) != 1 {
		t.Fatalf("expected toast replacement, got %d toasts", len(next.ActiveNotifications))
	}
}

func TestReminderFiredWhileBlurredSkipsToast(t *testing.T) {
	m := NewModel()
	m.Focused = false
	bill := testBill("r1", "Electricity", "2026-03-10", "09:00")

	updated, _ := m.Update(ReminderFiredMsg{Reminder: bill})
	next := updated.(Model)
	if len(next.ActiveNotifications) != 0 {
		t.Fatalf("expected no toast while blurred, got %d", len(next.ActiveNotifications))
	}
}

func TestDismissToastMsg(t *testing.T) {
	m := NewModel()
	m.Reminders = []model.Reminder{testBill("r1", "Water", "2026-03-10", "09:00")}
	m.ActiveNotifications = []model.Reminder{m.Reminders[0]}

	updated, _ := m.Update(DismissToastMsg{ID: "r1"})
	next := updated.(Model)
	if len(next.ActiveNotifications) != 0 {
		t.Fatalf("expected toast dismissed, got %d", len(next.ActiveNotifications))
	}
}

func TestSnoozeReminderMsgClearsToastAndNotified(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 2, 0, 0, time.UTC)
	m := NewModel()
	m.now = fixedClock(now)
	bill := testBill("r1", "Rent", "2026-03-10", "09:00")
	bill.Notified = true
	m.Reminders = []model.Reminder{bill}
	m.ActiveNotifications = []model.Reminder{bill}

	updated, _ := m.Update(SnoozeReminderMsg{ID: "r1"})
	next := updated.(Model)
	if len(next.ActiveNotifications) != 0 {
		t.Fatalf("expected toast cleared by snooze")
	}
	got := next.Reminders[0]
	if got.Notified {
		t.Fatalf("expected notified reset by snooze")
	}
	if got.SnoozeUntil == nil || !got.SnoozeUntil.Equal(now.Add(10*time.Minute)) {
		t.Fatalf("unexpected snooze window: %v", got.SnoozeUntil)
	}
}

func TestRescheduleToFutureRearmsBill(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	m := NewModel()
	m.now = fixedClock(now)
	m.loc = time.UTC
	bill := testBill("r1", "Internet", "2026-03-10", "09:00")
	bill.Notified = true
	m.Reminders = []model.Reminder{bill}

	m.rescheduleReminder("r1", "2026-03-12", "09:00")
	got := m.Reminders[0]
	if got.Notified {
		t.Fatalf("expected notified reset after future reschedule")
	}
	if got.DueDate != "2026-03-12" {
		t.Fatalf("expected due date updated, got %q", got.DueDate)
	}
}

func TestMonthNavigation(t *testing.T) {
	m := NewModel()
	m.loc = time.UTC
	m.ViewedMonth = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	m.shiftViewedMonth(-1)
	if m.ViewedMonth.Year() != 2025 || m.ViewedMonth.Month() != time.December {
		t.Fatalf("expected December 2025, got %s", m.ViewedMonth.Format("2006-01"))
	}

	m.shiftViewedMonth(2)
	if m.ViewedMonth.Year() != 2026 || m.ViewedMonth.Month() != time.February {
		t.Fatalf("expected February 2026, got %s", m.ViewedMonth.Format("2006-01"))
	}
	if m.ViewedMonth.Day() != 1 {
		t.Fatalf("expected first of month, got day %d", m.ViewedMonth.Day())
	}
}

func TestPaletteAddTransaction(t *testing.T) {
	m := NewModel()
	m.Palette.Active = true
	m.Palette.Input = "add expense 12.30 groceries weekly shop"
	next := m.executePaletteCommand()

	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
	if len(next.Transactions) != 1 {
		t.Fatalf("expected one transaction, got %d", len(next.Transactions))
	}
	tx := next.Transactions[0]
	if tx.Type != model.TransactionExpense || tx.Category != "groceries" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if !tx.Amount.Equal(decimal.RequireFromString("12.30")) {
		t.Fatalf("unexpected amount: %s", tx.Amount)
	}
	if next.Palette.Active {
		t.Fatalf("expected palette closed after execution")
	}
}

func TestPaletteAddBill(t *testing.T) {
	m := NewModel()
	m.Palette.Active = true
	m.Palette.Input = "add bill Electricity 55.00 2026-04-01 09:00 chime"
	next := m.executePaletteCommand()

	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
	if len(next.Reminders) != 1 {
		t.Fatalf("expected one reminder, got %d", len(next.Reminders))
	}
	rem := next.Reminders[0]
	if rem.BillName != "Electricity" || rem.Sound != model.SoundChime {
		t.Fatalf("unexpected reminder: %+v", rem)
	}
	if rem.Notified {
		t.Fatalf("new bill should not start notified")
	}
}

func TestPaletteShowMonth(t *testing.T) {
	m := NewModel()
	m.loc = time.UTC
	m.Palette.Active = true
	m.Palette.Input = "show month 2025-11"
	next := m.executePaletteCommand()

	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
	if next.ViewedMonth.Year() != 2025 || next.ViewedMonth.Month() != time.November {
		t.Fatalf("expected November 2025, got %s", next.ViewedMonth.Format("2006-01"))
	}
}

func TestPaletteUnknownCommand(t *testing.T) {
	m := NewModel()
	m.Palette.Active = true
	m.Palette.Input = "frobnicate all"
	next := m.executePaletteCommand()

	if !next.Status.IsError {
		t.Fatalf("expected error status for unknown command")
	}
	if !strings.Contains(next.Status.Text, "unsupported command") {
		t.Fatalf("unexpected error text: %q", next.Status.Text)
	}
}

func TestPaletteSnoozeLastWithoutFire(t *testing.T) {
	m := NewModel()
	m.Palette.Active = true
	m.Palette.Input = "snooze last"
	next := m.executePaletteCommand()

	if !next.Status.IsError {
		t.Fatalf("expected error when nothing has fired yet")
	}
}

func TestQuitKeySetsQuitting(t *testing.T) {
	m := NewModel()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	next := updated.(Model)
	if !next.Quitting {
		t.Fatalf("expected quitting model")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestHelpPanelShowsBindings(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	next := updated.(Model)
	if !next.HelpVisible {
		t.Fatal("expected help visible after toggle")
	}
	out := next.View()
	if !strings.Contains(out, "snooze oldest toast") {
		t.Fatalf("expected dashboard bindings in help output:\n%s", out)
	}
}

func TestViewMarksErrorStatus(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(SetStatusMsg{Text: "boom", IsError: true})
	next := updated.(Model)
	if !strings.Contains(next.View(), "error: boom") {
		t.Fatal("expected error prefix on status line")
	}
}

func TestViewIncludesToast(t *testing.T) {
	m := NewModel()
	bill := testBill("r1", "Electricity", "2026-03-10", "09:00")
	m.ActiveNotifications = []model.Reminder{bill}

	out := m.View()
	if !strings.Contains(out, "bill due: Electricity") {
		t.Fatalf("expected toast in view output:\n%s", out)
	}
}
