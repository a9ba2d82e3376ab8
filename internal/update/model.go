package update

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"billd/internal/model"
	"billd/internal/notify"
	"billd/internal/scheduler"
	"billd/internal/storage"
)

type View string

const (
	ViewDashboard    View = "Dashboard"
	ViewTransactions View = "Transactions"
	ViewBills        View = "Bills"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard    string
	Transactions string
	Bills        string
	Help         string
	Quit         string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView View
	ViewedMonth time.Time
	Focused     bool

	Transactions []model.Transaction
	Reminders    []model.Reminder

	// ActiveNotifications holds bills currently shown as in-app
	// toasts. Transient: never persisted, cleared on dismiss or
	// snooze, and only ever contains reminders from the store.
	ActiveNotifications []model.Reminder
	LastFiredID         string

	TxCursor       int
	BillCursor     int
	SelectedBillID string

	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	Scheduler *scheduler.Engine
	router    *notify.Router
	repo      storage.Repository
	loc       *time.Location
	now       func() time.Time

	stateFilePath string

	// Bubble components used for rich TUI controls
	txTable      table.Model
	billList     list.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ReminderFiredMsg struct {
	Reminder model.Reminder
}

type SnoozeReminderMsg struct {
	ID string
}

type DismissToastMsg struct {
	ID string
}

type ReloadDataMsg struct{}

func NewModel() Model {
	now := time.Now()
	m := Model{
		CurrentView: ViewDashboard,
		ViewedMonth: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
		Focused:     true,
		loc:         time.Local,
		now:         time.Now,
		Keys: GlobalKeyMap{
			Dashboard:    "1",
			Transactions: "2",
			Bills:        "3",
			Help:         "?",
			Quit:         "q",
		},
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithRuntime(engine *scheduler.Engine, router *notify.Router, repo storage.Repository, cfg RuntimeConfig) Model {
	m := NewModel()
	m.Scheduler = engine
	m.router = router
	m.repo = repo
	m.stateFilePath = strings.TrimSpace(cfg.StateFilePath)
	if m.stateFilePath != "" {
		if state, err := loadUIState(m.stateFilePath); err == nil {
			if month, ok := state.viewedMonth(m.loc); ok {
				m.ViewedMonth = month
			}
		}
	}
	if m.router != nil {
		m.router.RequestPermission()
	}
	m.reloadData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.billList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.billList.Title = "Bills (list)"
	m.billList.SetShowHelp(false)
	m.billList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Amount", Width: 10},
		{Title: "Category", Width: 20},
	}
	m.txTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	billItems := make([]list.Item, 0, len(m.Reminders))
	for _, rem := range m.Reminders {
		desc := rem.DueDate + " " + rem.DueTime
		billItems = append(billItems, listItem{title: rem.BillName, description: desc})
	}
	m.billList.SetItems(billItems)
	if len(billItems) > 0 && m.BillCursor < len(billItems) {
		m.billList.Select(m.BillCursor)
	}

	monthTxs := m.monthTransactions()
	rows := make([]table.Row, 0, len(monthTxs))
	for _, tx := range monthTxs {
		rows = append(rows, table.Row{
			tx.Date.Format("2006-01-02"),
			strings.ToUpper(string(tx.Type)),
			tx.Amount.StringFixed(2),
			tx.Category,
		})
	}
	m.txTable.SetRows(rows)
	if len(rows) > 0 && m.TxCursor < len(rows) {
		m.txTable.SetCursor(m.TxCursor)
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}
}
