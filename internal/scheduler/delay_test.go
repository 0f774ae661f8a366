package scheduler

import (
	"testing"
	"time"

	"questlog/internal/model"
)

func TestDelayFor(t *testing.T) {
	cases := []struct {
		name          string
		option        model.ReminderOption
		customMinutes int
		want          time.Duration
		wantOK        bool
	}{
		{"one hour", model.ReminderOneHour, 0, time.Hour, true},
		{"two hours", model.ReminderTwoHours, 0, 2 * time.Hour, true},
		{"custom 45", model.ReminderCustom, 45, 45 * time.Minute, true},
		{"custom zero falls back", model.ReminderCustom, 0, 30 * time.Minute, true},
		{"custom negative falls back", model.ReminderCustom, -10, 30 * time.Minute, true},
		{"unknown option", model.ReminderOption("3hr"), 0, 0, false},
		{"empty option", model.ReminderOption(""), 0, 0, false},
	}

	for _, tc := range cases {
		got, ok := DelayFor(tc.option, tc.customMinutes)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("%s: DelayFor = %v/%v, want %v/%v", tc.name, got, ok, tc.want, tc.wantOK)
		}
	}
}
