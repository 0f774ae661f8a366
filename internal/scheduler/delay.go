package scheduler

import (
	"time"

	"questlog/internal/model"
)

const defaultCustomMinutes = 30

// DelayFor maps a reminder option to its one-shot delay. Custom falls back
// to 30 minutes when the minute count is unset or non-positive. Unknown
// options compute no delay, so no timer is ever armed for them.
func DelayFor(option model.ReminderOption, customMinutes int) (time.Duration, bool) {
	switch option {
	case model.ReminderOneHour:
		return time.Hour, true
	case model.ReminderTwoHours:
		return 2 * time.Hour, true
	case model.ReminderCustom:
		minutes := customMinutes
		if minutes <= 0 {
			minutes = defaultCustomMinutes
		}
		return time.Duration(minutes) * time.Minute, true
	default:
		return 0, false
	}
}
