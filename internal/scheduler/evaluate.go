package scheduler

import (
	"time"

	"billd/internal/model"
)

// SnoozeWindow is how long a snoozed reminder stays suppressed.
const SnoozeWindow = 10 * time.Minute

// Result is the outcome of one evaluation pass. Updated always has the
// same length and order as the input set; Fired holds the reminders
// that became due on this pass, in input order.
type Result struct {
	Updated []model.Reminder
	Fired   []model.Reminder
}

// Evaluate computes which reminders have newly become due at now. A
// reminder fires iff its due instant has passed, it has not already
// been notified, and it is not inside an active snooze window. Fired
// reminders are returned with Notified set; everything else passes
// through unmodified, including reminders whose due date or time does
// not parse. Evaluate is pure: feeding Updated back in with the same
// now yields an empty Fired list.
func Evaluate(reminders []model.Reminder, now time.Time, loc *time.Location) Result {
	res := Result{Updated: make([]model.Reminder, 0, len(reminders))}
	for _, rem := range reminders {
		due, err := rem.DueInstant(loc)
		if err != nil || rem.Notified || rem.Snoozed(now) || due.After(now) {
			res.Updated = append(res.Updated, rem)
			continue
		}
		rem.Notified = true
		res.Updated = append(res.Updated, rem)
		res.Fired = append(res.Fired, rem)
	}
	return res
}

// Snooze defers rem for SnoozeWindow from now. Notified is cleared so
// the snooze window becomes the sole suppression mechanism: once it
// elapses the reminder is immediately eligible again.
func Snooze(rem model.Reminder, now time.Time) model.Reminder {
	until := now.Add(SnoozeWindow)
	rem.SnoozeUntil = &until
	rem.Notified = false
	return rem
}

// ReconcileEdit applies the submitted due date/time (and any other
// edited fields) while deciding whether alerting must be re-armed. If
// the due moment was changed and the new due instant is strictly in
// the future, Notified and SnoozeUntil are reset so the rescheduled
// bill can fire again. Edits that leave the due moment alone, or that
// keep it in the past, preserve both fields.
func ReconcileEdit(existing, submitted model.Reminder, now time.Time, loc *time.Location) model.Reminder {
	out := submitted
	out.ID = existing.ID
	out.CreatedAt = existing.CreatedAt
	out.Notified = existing.Notified
	out.SnoozeUntil = existing.SnoozeUntil

	if existing.DueDate == submitted.DueDate && existing.DueTime == submitted.DueTime {
		return out
	}
	due, err := out.DueInstant(loc)
	if err != nil || !due.After(now) {
		return out
	}
	out.Notified = false
	out.SnoozeUntil = nil
	return out
}
