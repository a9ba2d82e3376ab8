package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSound   = errors.New("model: invalid notification sound")
	ErrInvalidDueDate = errors.New("model: invalid due date")
	ErrInvalidDueTime = errors.New("model: invalid due time")
)

const (
	DueDateLayout = "2006-01-02"
	DueTimeLayout = "15:04"
)

type Sound string

const (
	SoundDefault Sound = "default"
	SoundBeep    Sound = "beep"
	SoundChime   Sound = "chime"
	SoundVibrate Sound = "vibrate"
	SoundNone    Sound = "none"
)

func (s Sound) IsValid() bool {
	switch s {
	case SoundDefault, SoundBeep, SoundChime, SoundVibrate, SoundNone:
		return true
	default:
		return false
	}
}

// Reminder is a bill due at a single local instant. DueDate and DueTime
// are kept in their submitted string forms so edits can be compared
// textually before the due instant is recomputed.
type Reminder struct {
	ID          string
	BillName    string
	Amount      decimal.Decimal
	DueDate     string
	DueTime     string
	Sound       Sound
	Notified    bool
	SnoozeUntil *time.Time
	CreatedAt   time.Time
}

// DueInstant combines DueDate and DueTime into one instant in loc.
func (r Reminder) DueInstant(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(DueDateLayout, strings.TrimSpace(r.DueDate), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, r.DueDate)
	}
	clock, err := time.Parse(DueTimeLayout, strings.TrimSpace(r.DueTime))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueTime, r.DueTime)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

// Snoozed reports whether the reminder is inside an active snooze
// window at now. A snoozed reminder is suppressed from firing
// regardless of its notified state.
func (r Reminder) Snoozed(now time.Time) bool {
	return r.SnoozeUntil != nil && now.Before(*r.SnoozeUntil)
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: reminder id is required")
	}
	if strings.TrimSpace(r.BillName) == "" {
		return errors.New("model: reminder bill name is required")
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, r.Amount)
	}
	if _, err := time.Parse(DueDateLayout, strings.TrimSpace(r.DueDate)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDueDate, r.DueDate)
	}
	if _, err := time.Parse(DueTimeLayout, strings.TrimSpace(r.DueTime)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDueTime, r.DueTime)
	}
	if !r.Sound.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSound, r.Sound)
	}
	return nil
}
