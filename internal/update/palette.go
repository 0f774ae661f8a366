package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"questlog/internal/commands"
	"questlog/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand(), nil
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m = m.addCompleted(a.Name, a.Points, m.now())
			m.CurrentView = ViewLog
			return commands.Result{Message: m.Status.Text}, nil
		},
		Plan: func(p commands.PlanArgs) (commands.Result, error) {
			m = m.addPlanning(p.Name, "", p.Reminder)
			m.CurrentView = ViewPlanner
			return commands.Result{Message: m.Status.Text}, nil
		},
		Priority: func(p commands.PriorityArgs) (commands.Result, error) {
			m = m.applyPriority(p.Target, p.Priority)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			m = m.deleteTask(d.Target)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Snooze: func(s commands.SnoozeArgs) (commands.Result, error) {
			m = m.snoozeTask(s.Target)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			switch s.Subject {
			case "stats":
				m.CurrentView = ViewStats
			case "log", "tasks":
				m.CurrentView = ViewLog
			case "planner", "plan":
				m.CurrentView = ViewPlanner
			case "help":
				m.CurrentView = ViewHelp
			default:
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view: %s", s.Subject)}
			}
			return commands.Result{Message: fmt.Sprintf("showing %s", s.Subject)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else if !m.Status.IsError {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

// parseQuickAdd reuses the palette grammar for the log view's input line.
func parseQuickAdd(value string) (string, int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", 0, nil
	}
	cmd, err := commands.Parse("add " + value)
	if err != nil {
		return "", 0, err
	}
	return cmd.Add.Name, cmd.Add.Points, nil
}

func parseQuickPlan(value string) (string, *model.ReminderConfig, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil, nil
	}
	cmd, err := commands.Parse("plan " + value)
	if err != nil {
		return "", nil, err
	}
	return cmd.Plan.Name, cmd.Plan.Reminder, nil
}
