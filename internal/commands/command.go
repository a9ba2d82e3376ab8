package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd        Type = "add"
	TypeSnooze     Type = "snooze"
	TypeShow       Type = "show"
	TypeReschedule Type = "reschedule"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs captures "add income|expense <amount> <category> [description]"
// and "add bill <name> <amount> <yyyy-mm-dd> <hh:mm> [sound]".
type AddArgs struct {
	Kind        string
	Amount      string
	Category    string
	Description string

	Name    string
	DueDate string
	DueTime string
	Sound   string
}

// SnoozeArgs captures "snooze <reminder-id|last>".
type SnoozeArgs struct {
	Target string
}

// ShowArgs captures "show month <yyyy-mm>" and "show bills|transactions".
type ShowArgs struct {
	Subject string
	Month   string
}

// RescheduleArgs captures "reschedule <reminder-id> <yyyy-mm-dd> <hh:mm>".
type RescheduleArgs struct {
	Target  string
	DueDate string
	DueTime string
}

type Command struct {
	Type       Type
	Raw        string
	Add        *AddArgs
	Snooze     *SnoozeArgs
	Show       *ShowArgs
	Reschedule *RescheduleArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeSnooze:
		return parseSnooze(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeReschedule:
		return parseReschedule(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires kind, amount and category"}
	}
	kind := strings.ToLower(args[0])
	if kind == "bill" {
		return parseAddBill(raw, args[1:])
	}
	if kind != "income" && kind != "expense" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("add kind must be income, expense or bill, got %s", kind)}
	}
	out := AddArgs{
		Kind:     kind,
		Amount:   args[1],
		Category: args[2],
	}
	if len(args) > 3 {
		out.Description = strings.Join(args[3:], " ")
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseAddBill(raw string, args []string) (Command, error) {
	if len(args) < 4 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add bill requires name, amount, date and time"}
	}
	out := AddArgs{
		Kind:    "bill",
		Name:    args[0],
		Amount:  args[1],
		DueDate: args[2],
		DueTime: args[3],
	}
	if len(args) > 4 {
		out.Sound = strings.ToLower(args[4])
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseSnooze(raw string, args []string) (Command, error) {
	if len(args) < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "snooze requires a reminder id or 'last'"}
	}
	return Command{Type: TypeSnooze, Raw: raw, Snooze: &SnoozeArgs{Target: strings.ToLower(args[0])}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.ToLower(args[0])
	month := ""
	if subject == "month" {
		if len(args) < 2 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show month requires yyyy-mm"}
		}
		month = args[1]
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject, Month: month}}, nil
}

func parseReschedule(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "reschedule requires target, date and time"}
	}
	return Command{Type: TypeReschedule, Raw: raw, Reschedule: &RescheduleArgs{
		Target:  strings.ToLower(args[0]),
		DueDate: args[1],
		DueTime: args[2],
	}}, nil
}
