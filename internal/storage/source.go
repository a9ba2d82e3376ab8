package storage

import (
	"context"
	"time"

	"billd/internal/model"
)

// ReminderSource adapts a Repository to the due-detection engine's
// snapshot/commit contract. Rows that no longer decode are dropped
// from the snapshot rather than failing the evaluation loop.
type ReminderSource struct {
	repo Repository
}

func NewReminderSource(repo Repository) *ReminderSource {
	return &ReminderSource{repo: repo}
}

func (s *ReminderSource) Snapshot() ([]model.Reminder, error) {
	rows, err := s.repo.ListReminders(context.Background(), ReminderListFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]model.Reminder, 0, len(rows))
	for _, row := range rows {
		rem, decodeErr := DecodeReminder(row)
		if decodeErr != nil {
			continue
		}
		out = append(out, rem)
	}
	return out, nil
}

// Commit persists the notified flags applied during evaluation. The
// evaluated reminders still carry the due strings and snooze window
// the snapshot was taken with, so each row is re-read and the write is
// skipped when any of those fields moved in the meantime: a snooze or
// reschedule landing mid-tick invalidates the evaluation for that row,
// and the next tick sees the new state instead. Rows deleted mid-tick
// are left alone.
func (s *ReminderSource) Commit(updated []model.Reminder) error {
	ctx := context.Background()
	for _, rem := range updated {
		if !rem.Notified {
			continue
		}
		current, err := s.repo.GetReminder(ctx, rem.ID)
		if err != nil {
			continue
		}
		if current.Notified {
			continue
		}
		if current.DueDate != rem.DueDate || current.DueTime != rem.DueTime {
			continue
		}
		if !sameSnooze(current.SnoozeUntil, rem.SnoozeUntil) {
			continue
		}
		current.Notified = true
		if err := s.repo.UpdateReminder(ctx, current); err != nil {
			return err
		}
	}
	return nil
}

func sameSnooze(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
