package commands

import "fmt"

// Result is the palette feedback line for a completed command.
type Result struct {
	Message string
}

// Handlers binds each palette command to the tracker behavior that
// performs it: recording a transaction or bill, snoozing, switching
// what is shown, and rescheduling a bill. A nil binding reports
// handler_missing so partial wiring fails loudly instead of silently
// dropping input.
type Handlers struct {
	Add        func(AddArgs) (Result, error)
	Snooze     func(SnoozeArgs) (Result, error)
	Show       func(ShowArgs) (Result, error)
	Reschedule func(RescheduleArgs) (Result, error)
}

// Run parses one palette line and dispatches it.
func Run(input string, h Handlers) (Result, error) {
	cmd, err := Parse(input)
	if err != nil {
		return Result{}, err
	}
	return Execute(cmd, h)
}

func Execute(cmd Command, h Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		return dispatch(cmd.Type, h.Add, cmd.Add)
	case TypeSnooze:
		return dispatch(cmd.Type, h.Snooze, cmd.Snooze)
	case TypeShow:
		return dispatch(cmd.Type, h.Show, cmd.Show)
	case TypeReschedule:
		return dispatch(cmd.Type, h.Reschedule, cmd.Reschedule)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func dispatch[A any](t Type, fn func(A) (Result, error), args *A) (Result, error) {
	if fn == nil {
		return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s is not wired up", t)}
	}
	if args == nil {
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s arguments missing", t)}
	}
	return fn(*args)
}
