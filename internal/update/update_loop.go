package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"questlog/internal/notify"
	"questlog/internal/scheduler"
)

func waitForReminderCmd(ch <-chan scheduler.ReminderEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Event: ev}
	}
}

func waitForActionCmd(ch <-chan notify.ActionCommand) tea.Cmd {
	return func() tea.Msg {
		cmd, ok := <-ch
		if !ok {
			return nil
		}
		return NotificationActionMsg{Command: cmd}
	}
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.engine != nil {
		cmds = append(cmds, waitForReminderCmd(m.engine.C()))
	}
	if m.actions != nil {
		cmds = append(cmds, waitForActionCmd(m.actions.Actions()))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			next, cmd := m.handlePaletteKey(typed)
			return next, cmd
		}
		return m.handleGlobalKey(typed)

	case AddCompletedTaskMsg:
		return m.addCompleted(typed.Name, typed.Points, m.now()), nil

	case AddPlanningTaskMsg:
		return m.addPlanning(typed.Name, typed.Priority, typed.Reminder), nil

	case UpdatePriorityMsg:
		return m.applyPriority(typed.Target, typed.Priority), nil

	case DeleteTaskMsg:
		return m.deleteTask(typed.Target), nil

	case CompleteTaskMsg:
		return m.completeTask(typed.Target, typed.Points), nil

	case SnoozeTaskMsg:
		return m.snoozeTask(typed.Target), nil

	case ReminderDueMsg:
		m.deliverReminder(typed.Event)
		m.Status = StatusBar{Text: fmt.Sprintf("reminder: %s", typed.Event.Name), IsError: false}
		if m.engine != nil {
			return m, waitForReminderCmd(m.engine.C())
		}
		return m, nil

	case NotificationActionMsg:
		m = m.applyNotificationAction(typed.Command)
		if m.actions != nil {
			return m, waitForActionCmd(m.actions.Actions())
		}
		return m, nil

	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			m.focusInputForView()
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

// applyNotificationAction routes the typed command a notification produced
// back into the same operations the palette uses.
func (m Model) applyNotificationAction(cmd notify.ActionCommand) Model {
	switch cmd.Action {
	case notify.ActionMarkComplete:
		return m.completeTask(cmd.TaskID, 0)
	case notify.ActionSnooze:
		return m.snoozeTask(cmd.TaskID)
	default:
		m.Status = StatusBar{Text: fmt.Sprintf("unknown notification action: %s", cmd.Action), IsError: true}
		return m
	}
}

func isKnownView(v View) bool {
	switch v {
	case ViewLog, ViewPlanner, ViewStats, ViewHelp:
		return true
	default:
		return false
	}
}
