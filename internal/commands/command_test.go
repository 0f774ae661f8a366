package commands

import (
	"errors"
	"testing"

	"questlog/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add morning run +10", TypeAdd},
		{"plan call dentist remind:1hr", TypePlan},
		{"priority p-1 high", TypePriority},
		{"delete p-1", TypeDelete},
		{"snooze p-1", TypeSnooze},
		{"show stats", TypeShow},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddPoints(t *testing.T) {
	cmd, err := Parse("add morning run +10")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Name != "morning run" || cmd.Add.Points != 10 {
		t.Fatalf("unexpected add args: %+v", cmd.Add)
	}

	cmd, err = Parse("add just a walk")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Name != "just a walk" || cmd.Add.Points != 0 {
		t.Fatalf("unexpected add args: %+v", cmd.Add)
	}

	if _, err := Parse("add run +ten"); err == nil {
		t.Fatal("expected error for non-numeric points")
	}
}

func TestParsePlanReminderSpecs(t *testing.T) {
	cmd, err := Parse("plan call dentist remind:2hr")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Plan.Reminder == nil || cmd.Plan.Reminder.Option != model.ReminderTwoHours {
		t.Fatalf("unexpected reminder: %+v", cmd.Plan.Reminder)
	}
	if cmd.Plan.Name != "call dentist" {
		t.Fatalf("unexpected name: %q", cmd.Plan.Name)
	}

	cmd, err = Parse("plan water plants remind:45m")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Plan.Reminder == nil || cmd.Plan.Reminder.Option != model.ReminderCustom || cmd.Plan.Reminder.CustomMinutes != 45 {
		t.Fatalf("unexpected reminder: %+v", cmd.Plan.Reminder)
	}

	cmd, err = Parse("plan no reminder here")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Plan.Reminder != nil {
		t.Fatalf("expected nil reminder, got %+v", cmd.Plan.Reminder)
	}

	if _, err := Parse("plan x remind:eventually"); err == nil {
		t.Fatal("expected error for bad reminder spec")
	}
}

func TestParsePriorityValidatesLevel(t *testing.T) {
	cmd, err := Parse("priority p-1 medium")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Priority.Target != "p-1" || cmd.Priority.Priority != model.PriorityMedium {
		t.Fatalf("unexpected priority args: %+v", cmd.Priority)
	}

	_, err = Parse("priority p-1 urgent")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs +5")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Name != "write docs" || a.Points != 5 {
				t.Fatalf("unexpected args: %+v", a)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("show stats")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
