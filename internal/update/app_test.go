package update

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"questlog/internal/model"
	"questlog/internal/notify"
	"questlog/internal/scheduler"
	"questlog/internal/stats"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel(t *testing.T, rt Runtime) Model {
	t.Helper()
	if rt.Now == nil {
		base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)
		rt.Now = func() time.Time { return base }
	}
	if rt.NewID == nil {
		n := 0
		rt.NewID = func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}
	}
	if rt.Permission == "" {
		rt.Permission = notify.PermissionGranted
	}
	return NewModel(rt)
}

func apply(t *testing.T, m Model, msg interface{}) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func TestAddCompletedTask(t *testing.T) {
	m := testModel(t, Runtime{})
	m = apply(t, m, AddCompletedTaskMsg{Name: "morning run", Points: 10})

	if len(m.State.Completed) != 1 {
		t.Fatalf("completed len = %d, want 1", len(m.State.Completed))
	}
	task := m.State.Completed[0]
	if task.ID != "id-1" || task.Name != "morning run" || task.Points != 10 {
		t.Fatalf("unexpected task: %+v", task)
	}
	if got := stats.PointsToday(m.State.Completed, m.now()); got != 10 {
		t.Fatalf("points today = %d, want 10", got)
	}
	if m.Status.IsError {
		t.Fatalf("unexpected error status: %q", m.Status.Text)
	}
}

func TestAddCompletedTaskRejectsNegativePoints(t *testing.T) {
	m := testModel(t, Runtime{})
	m = apply(t, m, AddCompletedTaskMsg{Name: "oops", Points: -1})
	if len(m.State.Completed) != 0 {
		t.Fatal("invalid task must not be appended")
	}
	if !m.Status.IsError {
		t.Fatal("expected error status")
	}
}

func TestAddPlanningTaskArmsReminder(t *testing.T) {
	engine := scheduler.NewEngine(4)
	m := testModel(t, Runtime{Engine: engine})
	m = apply(t, m, AddPlanningTaskMsg{
		Name:     "call dentist",
		Priority: model.PriorityHigh,
		Reminder: &model.ReminderConfig{Enabled: true, Option: model.ReminderOneHour},
	})

	if len(m.State.Planning) != 1 {
		t.Fatalf("planning len = %d, want 1", len(m.State.Planning))
	}
	task := m.State.Planning[0]
	if task.Reminder == nil || !task.Reminder.Enabled {
		t.Fatalf("reminder should stay enabled: %+v", task.Reminder)
	}
	if !engine.Armed(task.ID) {
		t.Fatal("engine should hold a queued event for the task")
	}
}

func TestAddPlanningTaskDeniedPermissionDisablesReminder(t *testing.T) {
	engine := scheduler.NewEngine(4)
	m := testModel(t, Runtime{Engine: engine, Permission: notify.PermissionDenied})
	m = apply(t, m, AddPlanningTaskMsg{
		Name:     "water plants",
		Reminder: &model.ReminderConfig{Enabled: true, Option: model.ReminderCustom, CustomMinutes: 45},
	})

	if len(m.State.Planning) != 1 {
		t.Fatal("task creation must proceed without notifications")
	}
	task := m.State.Planning[0]
	if task.Reminder == nil || task.Reminder.Enabled {
		t.Fatalf("reminder should be disabled: %+v", task.Reminder)
	}
	if engine.Armed(task.ID) {
		t.Fatal("no timer may be armed when delivery is impossible")
	}
}

func TestUpdatePriority(t *testing.T) {
	m := testModel(t, Runtime{})
	m = apply(t, m, AddPlanningTaskMsg{Name: "taxes"})
	id := m.State.Planning[0].ID

	m = apply(t, m, UpdatePriorityMsg{Target: id, Priority: model.PriorityHigh})
	if m.State.Planning[0].Priority != model.PriorityHigh {
		t.Fatalf("priority = %s, want high", m.State.Planning[0].Priority)
	}

	// Re-applying the same priority is a no-op with the same outcome.
	m = apply(t, m, UpdatePriorityMsg{Target: id, Priority: model.PriorityHigh})
	if m.State.Planning[0].Priority != model.PriorityHigh || m.Status.IsError {
		t.Fatalf("idempotent reapply broke state: %+v %+v", m.State.Planning[0], m.Status)
	}

	m = apply(t, m, UpdatePriorityMsg{Target: "missing", Priority: model.PriorityLow})
	if !m.Status.IsError {
		t.Fatal("expected error for unknown target")
	}
}

func TestUpdatePriorityByName(t *testing.T) {
	m := testModel(t, Runtime{})
	m = apply(t, m, AddPlanningTaskMsg{Name: "Call Dentist"})
	m = apply(t, m, UpdatePriorityMsg{Target: "call dentist", Priority: model.PriorityLow})
	if m.State.Planning[0].Priority != model.PriorityLow {
		t.Fatalf("priority = %s, want low", m.State.Planning[0].Priority)
	}
}

func TestDeleteTaskCancelsReminder(t *testing.T) {
	engine := scheduler.NewEngine(4)
	m := testModel(t, Runtime{Engine: engine})
	m = apply(t, m, AddPlanningTaskMsg{
		Name:     "call dentist",
		Reminder: &model.ReminderConfig{Enabled: true, Option: model.ReminderTwoHours},
	})
	id := m.State.Planning[0].ID
	if !engine.Armed(id) {
		t.Fatal("precondition: timer armed")
	}

	m = apply(t, m, DeleteTaskMsg{Target: id})
	if len(m.State.Planning) != 0 {
		t.Fatal("task should be removed")
	}
	if engine.Armed(id) {
		t.Fatal("deleting the task must cancel its timer")
	}
}

func TestCompleteTaskMovesToLog(t *testing.T) {
	engine := scheduler.NewEngine(4)
	m := testModel(t, Runtime{Engine: engine})
	m = apply(t, m, AddPlanningTaskMsg{
		Name:     "write report",
		Reminder: &model.ReminderConfig{Enabled: true, Option: model.ReminderOneHour},
	})
	id := m.State.Planning[0].ID

	m = apply(t, m, CompleteTaskMsg{Target: id, Points: 5})
	if len(m.State.Planning) != 0 {
		t.Fatal("planning task should be removed")
	}
	if len(m.State.Completed) != 1 || m.State.Completed[0].Name != "write report" || m.State.Completed[0].Points != 5 {
		t.Fatalf("unexpected completed log: %+v", m.State.Completed)
	}
	if engine.Armed(id) {
		t.Fatal("completion must cancel the timer")
	}
}

func TestSnoozeReArmsReminder(t *testing.T) {
	engine := scheduler.NewEngine(4)
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)
	m := testModel(t, Runtime{Engine: engine, Now: func() time.Time { return now }})
	m = apply(t, m, AddPlanningTaskMsg{Name: "call dentist"})
	id := m.State.Planning[0].ID

	m = apply(t, m, SnoozeTaskMsg{Target: id})
	if m.Status.IsError {
		t.Fatalf("snooze failed: %q", m.Status.Text)
	}
	if !engine.Armed(id) {
		t.Fatal("snooze must arm a timer even without an original reminder")
	}
}

func TestNotificationActionMarkComplete(t *testing.T) {
	actions := notify.NewChannelActions(1)
	m := testModel(t, Runtime{Actions: actions})
	m = apply(t, m, AddPlanningTaskMsg{Name: "write report"})
	id := m.State.Planning[0].ID

	m = apply(t, m, NotificationActionMsg{Command: notify.ActionCommand{Action: notify.ActionMarkComplete, TaskID: id}})
	if len(m.State.Planning) != 0 || len(m.State.Completed) != 1 {
		t.Fatalf("mark complete should move the task: planning=%d completed=%d", len(m.State.Planning), len(m.State.Completed))
	}
}

func TestReminderDueSetsStatus(t *testing.T) {
	m := testModel(t, Runtime{})
	ev := scheduler.ReminderEvent{TaskID: "p-1", Name: "call dentist", TriggerAt: m.now()}
	m = apply(t, m, ReminderDueMsg{Event: ev})
	if m.Status.Text != "reminder: call dentist" {
		t.Fatalf("status = %q", m.Status.Text)
	}
}

func TestPaletteAddCommand(t *testing.T) {
	m := testModel(t, Runtime{})
	m.Palette.Active = true
	m.Palette.Input = "/add pay rent +10"
	m = m.executePaletteCommand()

	if len(m.State.Completed) != 1 || m.State.Completed[0].Points != 10 {
		t.Fatalf("palette add failed: %+v", m.State.Completed)
	}
	if m.Palette.Active {
		t.Fatal("palette should close after execution")
	}
	if m.CurrentView != ViewLog {
		t.Fatalf("view = %s, want Log", m.CurrentView)
	}
}

func TestPaletteShowCommand(t *testing.T) {
	m := testModel(t, Runtime{})
	m.Palette.Active = true
	m.Palette.Input = "show stats"
	m = m.executePaletteCommand()
	if m.CurrentView != ViewStats {
		t.Fatalf("view = %s, want Stats", m.CurrentView)
	}

	m.Palette.Active = true
	m.Palette.Input = "show nonsense"
	m = m.executePaletteCommand()
	if !m.Status.IsError {
		t.Fatal("expected error status for unknown view")
	}
}

func TestPaletteKeysRouteThroughInput(t *testing.T) {
	m := testModel(t, Runtime{})
	m.Palette.Active = true
	m.commandInput.Focus()

	m = apply(t, m, keyRunes("ad"))
	if m.Palette.Input != "ad" {
		t.Fatalf("palette input = %q, want %q", m.Palette.Input, "ad")
	}
	if m.commandInput.Value() != "ad" {
		t.Fatalf("command input = %q, want %q", m.commandInput.Value(), "ad")
	}

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Palette.Input != "a" {
		t.Fatalf("backspace should reach the input, got %q", m.Palette.Input)
	}
}

func TestLogInputCapturesBoundKeys(t *testing.T) {
	m := testModel(t, Runtime{})

	// A fresh model focuses the log input; bound keys become text.
	m = apply(t, m, keyRunes("q"))
	if m.Quitting {
		t.Fatal("typing q must not quit while the input is focused")
	}
	m = apply(t, m, keyRunes("2"))
	if m.CurrentView != ViewLog {
		t.Fatalf("typing 2 must not switch views, now on %s", m.CurrentView)
	}
	if m.logInput.Value() != "q2" {
		t.Fatalf("log input = %q, want %q", m.logInput.Value(), "q2")
	}

	// esc blurs the input and frees the bindings again.
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = apply(t, m, keyRunes("2"))
	if m.CurrentView != ViewPlanner {
		t.Fatalf("view = %s, want Planner after blur", m.CurrentView)
	}
}

func TestCtrlCQuitsWhileTyping(t *testing.T) {
	m := testModel(t, Runtime{})
	m = apply(t, m, keyRunes("draft"))
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.Quitting {
		t.Fatal("ctrl+c must quit even mid-typing")
	}
}

func TestPlannerOrderFollowsBuckets(t *testing.T) {
	m := testModel(t, Runtime{})
	m = apply(t, m, AddPlanningTaskMsg{Name: "low one", Priority: model.PriorityLow})
	m = apply(t, m, AddPlanningTaskMsg{Name: "high one", Priority: model.PriorityHigh})
	m = apply(t, m, AddPlanningTaskMsg{Name: "mid one", Priority: model.PriorityMedium})

	ordered := m.plannerOrder()
	want := []string{"high one", "mid one", "low one"}
	for i, name := range want {
		if ordered[i].Name != name {
			t.Fatalf("ordered[%d] = %s, want %s", i, ordered[i].Name, name)
		}
	}
}
