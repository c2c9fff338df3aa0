package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Day    func(DayArgs) (Result, error)
	Export func(ExportArgs) (Result, error)
	Posted func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeDay:
		if handlers.Day == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "day handler not configured"}
		}
		return handlers.Day(*cmd.Day)
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "export handler not configured"}
		}
		return handlers.Export(*cmd.Export)
	case TypePosted:
		if handlers.Posted == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "posted handler not configured"}
		}
		return handlers.Posted()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
