package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"questlog/internal/logging"
	"questlog/internal/model"
	"questlog/internal/notify"
	"questlog/internal/scheduler"
)

func defaultNewID() string {
	return uuid.NewString()
}

// addCompleted validates and appends a completed task, then writes the
// whole collection through to the store.
func (m Model) addCompleted(name string, points int, at time.Time) Model {
	task := model.CompletedTask{
		ID:          m.newID(),
		Name:        strings.TrimSpace(name),
		CompletedAt: at,
		Points:      points,
	}
	if err := task.Validate(); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	m.State.Completed = appendCompleted(m.State.Completed, task)
	m = m.persistCompleted()
	if !m.Status.IsError {
		m.Status = StatusBar{Text: fmt.Sprintf("logged: %s", task.Name), IsError: false}
	}
	return m
}

// addPlanning creates a planning task. A reminder request is gated on the
// notification permission: when delivery is not possible the task is still
// created, with the reminder disabled.
func (m Model) addPlanning(name string, priority model.Priority, reminder *model.ReminderConfig) Model {
	if priority == "" {
		priority = model.PriorityLow
	}
	task := model.PlanningTask{
		ID:        m.newID(),
		Name:      strings.TrimSpace(name),
		Priority:  priority,
		CreatedAt: m.now(),
		Reminder:  reminder,
	}
	if err := task.Validate(); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	note := ""
	if task.Reminder != nil && task.Reminder.Enabled {
		if !m.Permission.Allowed() {
			task.Reminder = &model.ReminderConfig{Enabled: false, Option: task.Reminder.Option, CustomMinutes: task.Reminder.CustomMinutes}
			note = " (reminder off: notifications unavailable)"
		} else if !m.armReminder(task) {
			note = " (reminder not armed)"
		}
	}

	m.State.Planning = appendPlanning(m.State.Planning, task)
	m = m.persistPlanning()
	if !m.Status.IsError {
		m.Status = StatusBar{Text: fmt.Sprintf("planned: %s%s", task.Name, note), IsError: false}
	}
	return m
}

func (m Model) applyPriority(target string, p model.Priority) Model {
	task, ok := resolvePlanning(m.State.Planning, target)
	if !ok {
		m.Status = StatusBar{Text: fmt.Sprintf("no planning task matches %q", target), IsError: true}
		return m
	}
	next, _ := updatePriority(m.State.Planning, task.ID, p)
	m.State.Planning = next
	m = m.persistPlanning()
	if !m.Status.IsError {
		m.Status = StatusBar{Text: fmt.Sprintf("priority %s: %s", p, task.Name), IsError: false}
	}
	return m
}

// deleteTask removes a planning task and cancels any armed reminder before
// the task goes away.
func (m Model) deleteTask(target string) Model {
	task, ok := resolvePlanning(m.State.Planning, target)
	if !ok {
		m.Status = StatusBar{Text: fmt.Sprintf("no planning task matches %q", target), IsError: true}
		return m
	}
	if m.engine != nil {
		m.engine.Cancel(task.ID)
	}
	next, _ := removePlanning(m.State.Planning, task.ID)
	m.State.Planning = next
	m = m.persistPlanning()
	if !m.Status.IsError {
		m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", task.Name), IsError: false}
	}
	return m
}

// completeTask converts a planning task into a completed one: the planning
// entry is removed, its reminder cancelled, and a completed task with the
// same name is logged.
func (m Model) completeTask(target string, points int) Model {
	task, ok := resolvePlanning(m.State.Planning, target)
	if !ok {
		m.Status = StatusBar{Text: fmt.Sprintf("no planning task matches %q", target), IsError: true}
		return m
	}
	if m.engine != nil {
		m.engine.Cancel(task.ID)
	}
	next, _ := removePlanning(m.State.Planning, task.ID)
	m.State.Planning = next
	m = m.persistPlanning()
	if m.Status.IsError {
		return m
	}
	return m.addCompleted(task.Name, points, m.now())
}

// snoozeTask re-arms the task's reminder for a fixed interval from now,
// regardless of its original delay.
func (m Model) snoozeTask(target string) Model {
	task, ok := resolvePlanning(m.State.Planning, target)
	if !ok {
		m.Status = StatusBar{Text: fmt.Sprintf("no planning task matches %q", target), IsError: true}
		return m
	}
	if m.engine == nil {
		m.Status = StatusBar{Text: "reminders are not running", IsError: true}
		return m
	}
	ev := scheduler.ReminderEvent{
		TaskID:    task.ID,
		Name:      task.Name,
		TriggerAt: m.now().Add(notify.SnoozeDelay),
	}
	if err := m.engine.Schedule(ev); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("snooze failed: %v", err), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("snoozed %s for %s", task.Name, notify.SnoozeDelay), IsError: false}
	return m
}

func (m Model) armReminder(task model.PlanningTask) bool {
	if m.engine == nil || task.Reminder == nil || !task.Reminder.Enabled {
		return false
	}
	delay, ok := scheduler.DelayFor(task.Reminder.Option, task.Reminder.CustomMinutes)
	if !ok {
		logging.Warn("unknown reminder option, not arming", "task", task.ID, "option", task.Reminder.Option)
		return false
	}
	ev := scheduler.ReminderEvent{
		TaskID:    task.ID,
		Name:      task.Name,
		TriggerAt: task.CreatedAt.Add(delay),
	}
	if err := m.engine.Schedule(ev); err != nil {
		logging.Error("failed to arm reminder", "task", task.ID, "error", err)
		return false
	}
	return true
}

// deliverReminder pushes the due event to the desktop, if permitted. A
// delivery failure never disturbs app state beyond a log line.
func (m Model) deliverReminder(ev scheduler.ReminderEvent) {
	if !m.Permission.Allowed() {
		return
	}
	n := notify.Notification{
		Title:    "Task reminder",
		Body:     ev.Name,
		TaskID:   ev.TaskID,
		TaskName: ev.Name,
		At:       ev.TriggerAt,
	}
	if err := m.notifier.Send(n); err != nil {
		logging.Warn("notification delivery failed", "task", ev.TaskID, "error", err)
	}
}

func (m Model) persistCompleted() Model {
	if m.store == nil {
		return m
	}
	if err := m.store.SaveCompleted(context.Background(), m.State.Completed); err != nil {
		logging.Error("save completed tasks failed", "error", err)
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("save error: %v", err), IsError: true}
	}
	return m
}

func (m Model) persistPlanning() Model {
	if m.store == nil {
		return m
	}
	if err := m.store.SavePlanning(context.Background(), m.State.Planning); err != nil {
		logging.Error("save planning tasks failed", "error", err)
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("save error: %v", err), IsError: true}
	}
	return m
}
