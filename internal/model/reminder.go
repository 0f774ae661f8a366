package model

import (
	"errors"
	"fmt"
)

var ErrInvalidReminderOption = errors.New("model: invalid reminder option")

type ReminderOption string

const (
	ReminderOneHour  ReminderOption = "1hr"
	ReminderTwoHours ReminderOption = "2hr"
	ReminderCustom   ReminderOption = "custom"
)

func (o ReminderOption) IsValid() bool {
	switch o {
	case ReminderOneHour, ReminderTwoHours, ReminderCustom:
		return true
	default:
		return false
	}
}

// ReminderConfig describes a one-shot alert for a planning task. Timer
// handles never live here; the scheduler keeps its own registry keyed by
// task id, so persisted records stay serializable.
type ReminderConfig struct {
	Enabled       bool
	Option        ReminderOption
	CustomMinutes int
}

func (r ReminderConfig) Validate() error {
	if !r.Enabled {
		return nil
	}
	if !r.Option.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidReminderOption, r.Option)
	}
	if r.CustomMinutes < 0 {
		return errors.New("model: reminder custom_minutes must not be negative")
	}
	return nil
}
