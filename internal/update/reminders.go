package update

import (
	"context"
	"fmt"

	"billd/internal/model"
	"billd/internal/notify"
	"billd/internal/scheduler"
	"billd/internal/storage"
)

func (m *Model) visibility() notify.Visibility {
	if m.Focused {
		return notify.VisibilityForeground
	}
	return notify.VisibilityBackground
}

// onReminderFired handles one newly-due bill delivered by the
// scheduler: route the cue and OS notification, then surface a toast
// when the app is in the foreground. A toast for the same bill
// replaces the old one instead of stacking.
func (m *Model) onReminderFired(rem model.Reminder) {
	m.LastFiredID = rem.ID

	for i, existing := range m.Reminders {
		if existing.ID == rem.ID {
			m.Reminders[i] = rem
			break
		}
	}

	toast := false
	if m.router != nil {
		toast = m.router.Route(rem, m.visibility())
	} else if m.Focused {
		toast = true
	}
	if toast {
		m.upsertToast(rem)
	}
	m.Status = StatusBar{Text: fmt.Sprintf("bill due: %s (%s)", rem.BillName, rem.Amount.StringFixed(2)), IsError: false}
}

func (m *Model) upsertToast(rem model.Reminder) {
	for i, existing := range m.ActiveNotifications {
		if existing.ID == rem.ID {
			m.ActiveNotifications[i] = rem
			return
		}
	}
	m.ActiveNotifications = append(m.ActiveNotifications, rem)
}

func (m *Model) removeToast(id string) {
	kept := m.ActiveNotifications[:0]
	for _, rem := range m.ActiveNotifications {
		if rem.ID != id {
			kept = append(kept, rem)
		}
	}
	m.ActiveNotifications = kept
}

func (m *Model) snoozeReminder(id string) {
	rem, ok := m.reminderByID(id)
	if !ok {
		m.Status = StatusBar{Text: fmt.Sprintf("snooze failed: unknown bill %s", id), IsError: true}
		return
	}
	snoozed := scheduler.Snooze(rem, m.now())
	if err := m.saveReminder(snoozed); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("snooze failed: %v", err), IsError: true}
		return
	}
	m.removeToast(id)
	m.Status = StatusBar{Text: fmt.Sprintf("snoozed %s for %s", snoozed.BillName, scheduler.SnoozeWindow), IsError: false}
}

// rescheduleReminder applies an edited due date/time to an existing
// bill. Moving the due instant into the future re-arms the bill so it
// can fire again.
func (m *Model) rescheduleReminder(id, dueDate, dueTime string) {
	existing, ok := m.reminderByID(id)
	if !ok {
		m.Status = StatusBar{Text: fmt.Sprintf("reschedule failed: unknown bill %s", id), IsError: true}
		return
	}
	submitted := existing
	if dueDate != "" {
		submitted.DueDate = dueDate
	}
	if dueTime != "" {
		submitted.DueTime = dueTime
	}
	if err := submitted.Validate(); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("reschedule failed: %v", err), IsError: true}
		return
	}
	merged := scheduler.ReconcileEdit(existing, submitted, m.now(), m.loc)
	if err := m.saveReminder(merged); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("reschedule failed: %v", err), IsError: true}
		return
	}
	m.removeToast(id)
	m.Status = StatusBar{Text: fmt.Sprintf("rescheduled %s to %s %s", merged.BillName, merged.DueDate, merged.DueTime), IsError: false}
}

func (m *Model) saveReminder(rem model.Reminder) error {
	for i, existing := range m.Reminders {
		if existing.ID == rem.ID {
			m.Reminders[i] = rem
			break
		}
	}
	if m.repo == nil {
		return nil
	}
	if err := m.repo.UpdateReminder(context.Background(), storage.EncodeReminder(rem)); err != nil {
		return fmt.Errorf("save reminder %s: %w", rem.ID, err)
	}
	return nil
}
