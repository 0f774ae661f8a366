package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	Plan     func(PlanArgs) (Result, error)
	Priority func(PriorityArgs) (Result, error)
	Delete   func(DeleteArgs) (Result, error)
	Snooze   func(SnoozeArgs) (Result, error)
	Show     func(ShowArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypePlan:
		if handlers.Plan == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "plan handler not configured"}
		}
		return handlers.Plan(*cmd.Plan)
	case TypePriority:
		if handlers.Priority == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "priority handler not configured"}
		}
		return handlers.Priority(*cmd.Priority)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delete handler not configured"}
		}
		return handlers.Delete(*cmd.Delete)
	case TypeSnooze:
		if handlers.Snooze == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "snooze handler not configured"}
		}
		return handlers.Snooze(*cmd.Snooze)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
