package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/timesheet/internal/clock"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeDay    Type = "day"
	TypeExport Type = "export"
	TypePosted Type = "posted"
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

type AddArgs struct {
	Start       string
	End         string
	Description string
}

type DayArgs struct {
	Day string
}

type ExportArgs struct {
	From string
	To   string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Day    *DayArgs
	Export *ExportArgs
}

// Parse turns palette input into a typed command.
// Grammar:
//
//	add HH:MM HH:MM description...
//	day dd/mm/yy
//	export dd/mm/yy dd/mm/yy
//	posted
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
	case TypeDay:
		return parseDay(input, args)
	case TypeExport:
		return parseExport(input, args)
	case TypePosted:
		return Command{Type: TypePosted, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires start, end and a description"}
	}
	start, end := args[0], args[1]
	if _, ok := clock.ParseClock(start); !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("add: %q is not a HH:MM time", start)}
	}
	if _, ok := clock.ParseClock(end); !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("add: %q is not a HH:MM time", end)}
	}
	description := strings.TrimSpace(strings.Join(args[2:], " "))
	if description == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a description"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Start: start, End: end, Description: description}}, nil
}

func parseDay(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "day requires a dd/mm/yy date"}
	}
	if !clock.ValidDay(args[0]) {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("day: %q is not a dd/mm/yy date", args[0])}
	}
	return Command{Type: TypeDay, Raw: raw, Day: &DayArgs{Day: args[0]}}, nil
}

func parseExport(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "export requires from and to dates"}
	}
	for _, day := range args {
		if !clock.ValidDay(day) {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("export: %q is not a dd/mm/yy date", day)}
		}
	}
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{From: args[0], To: args[1]}}, nil
}
