package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestReminderValidateSuccess(t *testing.T) {
	rem := Reminder{
		ID:       "rem-1",
		BillName: "Electricity",
		Amount:   decimal.NewFromInt(120),
		DueDate:  "2024-03-01",
		DueTime:  "09:00",
		Sound:    SoundDefault,
	}
	if err := rem.Validate(); err != nil {
		t.Fatalf("expected valid reminder, got error: %v", err)
	}
}

func TestReminderValidateInvalidSound(t *testing.T) {
	rem := Reminder{
		ID:       "rem-1",
		BillName: "Electricity",
		DueDate:  "2024-03-01",
		DueTime:  "09:00",
		Sound:    Sound("klaxon"),
	}
	err := rem.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidSound) {
		t.Fatalf("expected ErrInvalidSound, got: %v", err)
	}
}

func TestReminderValidateRejectsNegativeAmount(t *testing.T) {
	rem := Reminder{
		ID:       "rem-1",
		BillName: "Rent",
		Amount:   decimal.NewFromInt(-1),
		DueDate:  "2024-03-01",
		DueTime:  "09:00",
		Sound:    SoundNone,
	}
	if err := rem.Validate(); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got: %v", err)
	}
}

func TestReminderValidateBadDate(t *testing.T) {
	rem := Reminder{
		ID:       "rem-1",
		BillName: "Rent",
		DueDate:  "03/01/2024",
		DueTime:  "09:00",
		Sound:    SoundDefault,
	}
	if err := rem.Validate(); !errors.Is(err, ErrInvalidDueDate) {
		t.Fatalf("expected ErrInvalidDueDate, got: %v", err)
	}
}

func TestSoundIsValid(t *testing.T) {
	valid := []Sound{SoundDefault, SoundBeep, SoundChime, SoundVibrate, SoundNone}
	for _, item := range valid {
		if !item.IsValid() {
			t.Fatalf("expected valid sound: %q", item)
		}
	}
	if Sound("other").IsValid() {
		t.Fatal("expected invalid sound")
	}
}

func TestDueInstantCombinesDateAndTime(t *testing.T) {
	rem := Reminder{DueDate: "2024-03-01", DueTime: "09:30"}
	got, err := rem.DueInstant(time.UTC)
	if err != nil {
		t.Fatalf("due instant: %v", err)
	}
	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDueInstantRejectsMalformedInput(t *testing.T) {
	rem := Reminder{DueDate: "soon", DueTime: "09:30"}
	if _, err := rem.DueInstant(time.UTC); !errors.Is(err, ErrInvalidDueDate) {
		t.Fatalf("expected ErrInvalidDueDate, got: %v", err)
	}
	rem = Reminder{DueDate: "2024-03-01", DueTime: "9 am"}
	if _, err := rem.DueInstant(time.UTC); !errors.Is(err, ErrInvalidDueTime) {
		t.Fatalf("expected ErrInvalidDueTime, got: %v", err)
	}
}

func TestSnoozedWindow(t *testing.T) {
	until := time.Date(2024, 3, 1, 9, 10, 0, 0, time.UTC)
	rem := Reminder{SnoozeUntil: &until}
	if !rem.Snoozed(time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC)) {
		t.Fatal("expected snoozed before window elapses")
	}
	if rem.Snoozed(until) {
		t.Fatal("expected not snoozed once window elapses")
	}
	if (Reminder{}).Snoozed(until) {
		t.Fatal("expected not snoozed without a window")
	}
}
