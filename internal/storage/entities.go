package storage

import "time"

// Rows are stored in their wire form: amounts as decimal strings,
// due date/time in the user-submitted string layouts.

type Transaction struct {
	ID          string
	Type        string
	Category    string
	Amount      string
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

type Reminder struct {
	ID          string
	BillName    string
	Amount      string
	DueDate     string
	DueTime     string
	Sound       string
	Notified    bool
	SnoozeUntil *time.Time
	CreatedAt   time.Time
}

type TransactionListFilter struct {
	Type   string
	Limit  int
	Offset int
}

type ReminderListFilter struct {
	Notified *bool
	Limit    int
	Offset   int
}
