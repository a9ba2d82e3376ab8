package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billd/internal/commands"
	"billd/internal/model"
	"billd/internal/storage"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command dismissed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	res, err := commands.Run(raw, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if a.Kind == "bill" {
				return m.addReminderFromCommand(a)
			}
			return m.addTransactionFromCommand(a)
		},
		Snooze: func(s commands.SnoozeArgs) (commands.Result, error) {
			target := s.Target
			if strings.EqualFold(target, "last") {
				target = m.LastFiredID
			}
			if target == "" {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no reminder has fired yet"}
			}
			m.snoozeReminder(target)
			if m.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.Status.Text}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			switch s.Subject {
			case "month":
				month, err := time.ParseInLocation(viewedMonthLayout, s.Month, m.loc)
				if err != nil {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid month %q, want yyyy-mm", s.Month)}
				}
				m.ViewedMonth = month
				m.TxCursor = 0
				m.persistState()
				return commands.Result{Message: fmt.Sprintf("viewing %s", month.Format("January 2006"))}, nil
			case "bills":
				m.CurrentView = ViewBills
				return commands.Result{Message: "showing bills"}, nil
			case "transactions":
				m.CurrentView = ViewTransactions
				return commands.Result{Message: "showing transactions"}, nil
			case "dashboard":
				m.CurrentView = ViewDashboard
				return commands.Result{Message: "showing dashboard"}, nil
			default:
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown show subject: %s", s.Subject)}
			}
		},
		Reschedule: func(r commands.RescheduleArgs) (commands.Result, error) {
			target := r.Target
			if strings.EqualFold(target, "last") {
				target = m.LastFiredID
			}
			if target == "" {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no reminder has fired yet"}
			}
			m.rescheduleReminder(target, r.DueDate, r.DueTime)
			if m.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.Status.Text}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m *Model) addTransactionFromCommand(a commands.AddArgs) (commands.Result, error) {
	amount, err := decimal.NewFromString(a.Amount)
	if err != nil {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid amount %q", a.Amount)}
	}
	tx := model.Transaction{
		ID:          uuid.NewString(),
		Type:        model.TransactionType(a.Kind),
		Category:    a.Category,
		Amount:      amount,
		Date:        m.now(),
		Description: a.Description,
		CreatedAt:   m.now(),
	}
	if err := tx.Validate(); err != nil {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
	}
	if m.repo != nil {
		if err := m.repo.CreateTransaction(context.Background(), storage.EncodeTransaction(tx)); err != nil {
			return commands.Result{}, fmt.Errorf("save transaction: %w", err)
		}
	}
	m.Transactions = append([]model.Transaction{tx}, m.Transactions...)
	return commands.Result{Message: fmt.Sprintf("added %s %s in %s", a.Kind, amount.StringFixed(2), a.Category)}, nil
}

func (m *Model) addReminderFromCommand(a commands.AddArgs) (commands.Result, error) {
	amount, err := decimal.NewFromString(a.Amount)
	if err != nil {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid amount %q", a.Amount)}
	}
	sound := model.SoundDefault
	if a.Sound != "" {
		sound = model.Sound(a.Sound)
	}
	rem := model.Reminder{
		ID:        uuid.NewString(),
		BillName:  a.Name,
		Amount:    amount,
		DueDate:   a.DueDate,
		DueTime:   a.DueTime,
		Sound:     sound,
		CreatedAt: m.now(),
	}
	if err := rem.Validate(); err != nil {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
	}
	if m.repo != nil {
		if err := m.repo.CreateReminder(context.Background(), storage.EncodeReminder(rem)); err != nil {
			return commands.Result{}, fmt.Errorf("save reminder: %w", err)
		}
	}
	m.Reminders = append(m.Reminders, rem)
	return commands.Result{Message: fmt.Sprintf("added bill %s %s due %s %s", rem.BillName, amount.StringFixed(2), rem.DueDate, rem.DueTime)}, nil
}
