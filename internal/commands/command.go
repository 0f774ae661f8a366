package commands

import (
	"fmt"
	"strconv"
	"strings"

	"questlog/internal/model"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypePlan     Type = "plan"
	TypePriority Type = "priority"
	TypeDelete   Type = "delete"
	TypeSnooze   Type = "snooze"
	TypeShow     Type = "show"
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

// AddArgs logs a completed task; "+N" at the end of the input awards points.
type AddArgs struct {
	Name   string
	Points int
}

// PlanArgs creates a planning task; "remind:1hr", "remind:2hr" or
// "remind:45m" at the end of the input attaches a reminder.
type PlanArgs struct {
	Name     string
	Reminder *model.ReminderConfig
}

type PriorityArgs struct {
	Target   string
	Priority model.Priority
}

type DeleteArgs struct {
	Target string
}

type SnoozeArgs struct {
	Target string
}

type ShowArgs struct {
	Subject string
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Plan     *PlanArgs
	Priority *PriorityArgs
	Delete   *DeleteArgs
	Snooze   *SnoozeArgs
	Show     *ShowArgs
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
	case TypePlan:
		return parsePlan(input, args)
	case TypePriority:
		return parsePriority(input, args)
	case TypeDelete:
		return parseDelete(input, args)
	case TypeSnooze:
		return parseSnooze(input, args)
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task name"}
	}
	points := 0
	last := args[len(args)-1]
	if strings.HasPrefix(last, "+") {
		parsed, err := strconv.Atoi(strings.TrimPrefix(last, "+"))
		if err != nil || parsed < 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid points value: %s", last)}
		}
		points = parsed
		args = args[:len(args)-1]
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Name: name, Points: points}}, nil
}

func parsePlan(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "plan requires a task name"}
	}
	var reminder *model.ReminderConfig
	last := strings.ToLower(args[len(args)-1])
	if strings.HasPrefix(last, "remind:") {
		parsed, err := parseReminderSpec(strings.TrimPrefix(last, "remind:"))
		if err != nil {
			return Command{}, err
		}
		reminder = parsed
		args = args[:len(args)-1]
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "plan requires a task name"}
	}
	return Command{Type: TypePlan, Raw: raw, Plan: &PlanArgs{Name: name, Reminder: reminder}}, nil
}

func parseReminderSpec(spec string) (*model.ReminderConfig, error) {
	switch spec {
	case "1hr":
		return &model.ReminderConfig{Enabled: true, Option: model.ReminderOneHour}, nil
	case "2hr":
		return &model.ReminderConfig{Enabled: true, Option: model.ReminderTwoHours}, nil
	}
	if strings.HasSuffix(spec, "m") {
		minutes, err := strconv.Atoi(strings.TrimSuffix(spec, "m"))
		if err == nil && minutes > 0 {
			return &model.ReminderConfig{Enabled: true, Option: model.ReminderCustom, CustomMinutes: minutes}, nil
		}
	}
	return nil, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid reminder spec: %s", spec)}
}

func parsePriority(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "priority requires a target and a level"}
	}
	level := model.Priority(strings.ToLower(args[len(args)-1]))
	if !level.IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid priority: %s", args[len(args)-1])}
	}
	target := strings.TrimSpace(strings.Join(args[:len(args)-1], " "))
	return Command{Type: TypePriority, Raw: raw, Priority: &PriorityArgs{Target: target, Priority: level}}, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires a target"}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{Target: strings.Join(args, " ")}}, nil
}

func parseSnooze(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "snooze requires a target"}
	}
	return Command{Type: TypeSnooze, Raw: raw, Snooze: &SnoozeArgs{Target: strings.Join(args, " ")}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: strings.ToLower(args[0])}}, nil
}
