package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"billd/internal/model"
	"billd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Scheduler != nil {
		return waitForReminderCmd(m.Scheduler.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.FocusMsg:
		m.Focused = true
		return m, nil
	case tea.BlurMsg:
		m.Focused = false
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case ReminderFiredMsg:
		m.onReminderFired(typed.Reminder)
		if m.Scheduler != nil {
			return m, waitForReminderCmd(m.Scheduler.C())
		}
		return m, nil
	case SnoozeReminderMsg:
		m.snoozeReminder(typed.ID)
		return m, nil
	case DismissToastMsg:
		m.removeToast(typed.ID)
		return m, nil
	case ReloadDataMsg:
		m.reloadData()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (Model, tea.Cmd) {
	if m.Palette.Active {
		return m.handlePaletteKey(key), nil
	}

	switch key.String() {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.Status = StatusBar{Text: "command mode", IsError: false}
		return m, nil
	case m.Keys.Dashboard:
		m.CurrentView = ViewDashboard
		return m, nil
	case m.Keys.Transactions:
		m.CurrentView = ViewTransactions
		return m, nil
	case m.Keys.Bills:
		m.CurrentView = ViewBills
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "ctrl+c", m.Keys.Quit:
		m.persistState()
		m.Quitting = true
		return m, tea.Quit
	case "h":
		m.shiftViewedMonth(-1)
		return m, nil
	case "l":
		m.shiftViewedMonth(1)
		return m, nil
	case "d":
		if len(m.ActiveNotifications) > 0 {
			m.removeToast(m.ActiveNotifications[0].ID)
		}
		return m, nil
	case "r":
		m.reloadData()
		m.Status = StatusBar{Text: "data reloaded", IsError: false}
		return m, nil
	}

	switch m.CurrentView {
	case ViewDashboard:
		if key.String() == "s" && len(m.ActiveNotifications) > 0 {
			m.snoozeReminder(m.ActiveNotifications[0].ID)
		}
		return m, nil
	case ViewTransactions:
		return m.handleTransactionsKey(key), nil
	case ViewBills:
		return m.handleBillsKey(key), nil
	}
	return m, nil
}

func (m Model) View() string {
	mainPane := ""
	switch m.CurrentView {
	case ViewDashboard:
		mainPane = m.renderDashboardView()
	case ViewTransactions:
		mainPane = m.renderTransactionsView()
	case ViewBills:
		mainPane = m.renderBillsView()
	}

	return views.RenderApp(views.AppData{
		Header:        fmt.Sprintf("billd | %s | %s", m.CurrentView, m.ViewedMonth.Format("January 2006")),
		MainPane:      mainPane,
		SidePane:      m.renderSidePane(),
		StatusLine:    m.Status.Text,
		StatusIsError: m.Status.IsError,
		Toasts:        m.renderToastsView(),
		Footer: fmt.Sprintf("%s dashboard  %s transactions  %s bills  h/l month  / command  %s help  %s quit",
			m.Keys.Dashboard, m.Keys.Transactions, m.Keys.Bills, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewDashboard, ViewTransactions, ViewBills:
		return true
	}
	return false
}

// waitForReminderCmd blocks on the scheduler's output channel and
// converts each fired reminder into a bubbletea message. The Update
// loop re-issues the command after every delivery.
func waitForReminderCmd(ch <-chan model.Reminder) tea.Cmd {
	return func() tea.Msg {
		rem, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderFiredMsg{Reminder: rem}
	}
}
