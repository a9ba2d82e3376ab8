package storage

import (
	"fmt"

	"github.com/shopspring/decimal"

	"billd/internal/model"
)

func EncodeTransaction(in model.Transaction) Transaction {
	return Transaction{
		ID:          in.ID,
		Type:        string(in.Type),
		Category:    in.Category,
		Amount:      in.Amount.String(),
		Date:        in.Date,
		Description: in.Description,
		CreatedAt:   in.CreatedAt,
	}
}

func DecodeTransaction(in Transaction) (model.Transaction, error) {
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("storage: transaction %s amount: %w", in.ID, err)
	}
	return model.Transaction{
		ID:          in.ID,
		Type:        model.TransactionType(in.Type),
		Category:    in.Category,
		Amount:      amount,
		Date:        in.Date,
		Description: in.Description,
		CreatedAt:   in.CreatedAt,
	}, nil
}

func EncodeReminder(in model.Reminder) Reminder {
	return Reminder{
		ID:          in.ID,
		BillName:    in.BillName,
		Amount:      in.Amount.String(),
		DueDate:     in.DueDate,
		DueTime:     in.DueTime,
		Sound:       string(in.Sound),
		Notified:    in.Notified,
		SnoozeUntil: in.SnoozeUntil,
		CreatedAt:   in.CreatedAt,
	}
}

func DecodeReminder(in Reminder) (model.Reminder, error) {
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("storage: reminder %s amount: %w", in.ID, err)
	}
	return model.Reminder{
		ID:          in.ID,
		BillName:    in.BillName,
		Amount:      amount,
		DueDate:     in.DueDate,
		DueTime:     in.DueTime,
		Sound:       model.Sound(in.Sound),
		Notified:    in.Notified,
		SnoozeUntil: in.SnoozeUntil,
		CreatedAt:   in.CreatedAt,
	}, nil
}
