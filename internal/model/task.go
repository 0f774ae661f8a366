package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrNegativePoints  = errors.New("model: points must not be negative")
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// CompletedTask is a finished activity. It is immutable after creation;
// there is no delete operation for completed tasks.
type CompletedTask struct {
	ID          string
	Name        string
	CompletedAt time.Time
	Points      int
}

func (t CompletedTask) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: completed task id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: completed task name is required")
	}
	if t.CompletedAt.IsZero() {
		return errors.New("model: completed task completed_at is required")
	}
	if t.Points < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePoints, t.Points)
	}
	return nil
}

// PlanningTask is a not-yet-completed item in a priority bucket. Priority
// is mutable; everything else is fixed at creation.
type PlanningTask struct {
	ID        string
	Name      string
	Priority  Priority
	CreatedAt time.Time
	Reminder  *ReminderConfig
}

func (t PlanningTask) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: planning task id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: planning task name is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: planning task created_at is required")
	}
	if t.Reminder != nil {
		return t.Reminder.Validate()
	}
	return nil
}

// Clone returns a copy that shares nothing with the receiver, so callers
// can mutate the copy without touching collections already handed out.
func (t PlanningTask) Clone() PlanningTask {
	out := t
	if t.Reminder != nil {
		reminder := *t.Reminder
		out.Reminder = &reminder
	}
	return out
}
