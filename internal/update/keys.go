package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"questlog/internal/model"
)

func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Quit:
		if !m.typingInInput() {
			m.Quitting = true
			return m, tea.Quit
		}
	case "/":
		if !m.typingInInput() || m.CurrentView == ViewStats || m.CurrentView == ViewHelp {
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		}
	case m.Keys.Log:
		if !m.typingInInput() {
			m.CurrentView = ViewLog
			m.focusInputForView()
			return m, nil
		}
	case m.Keys.Planner:
		if !m.typingInInput() {
			m.CurrentView = ViewPlanner
			m.focusInputForView()
			return m, nil
		}
	case m.Keys.Stats:
		if !m.typingInInput() {
			m.CurrentView = ViewStats
			m.focusInputForView()
			return m, nil
		}
	case m.Keys.Help:
		if !m.typingInInput() {
			m.CurrentView = ViewHelp
			return m, nil
		}
	case "tab":
		m.CurrentView = nextView(m.CurrentView)
		m.focusInputForView()
		return m, nil
	case "esc":
		m.blurInputs()
		return m, nil
	}

	switch m.CurrentView {
	case ViewLog:
		return m.handleLogKey(msg)
	case ViewPlanner:
		return m.handlePlannerKey(msg)
	}
	return m, nil
}

func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.logInput.Focused() {
		if msg.String() == "i" {
			m.logInput.Focus()
		}
		return m, nil
	}
	if msg.String() == "enter" {
		value := m.logInput.Value()
		m.logInput.SetValue("")
		if name, points, err := parseQuickAdd(value); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		} else if name != "" {
			return m.addCompleted(name, points, m.now()), nil
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.logInput, cmd = m.logInput.Update(msg)
	return m, cmd
}

func (m Model) handlePlannerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.planInput.Focused() {
		if msg.String() == "enter" {
			value := m.planInput.Value()
			m.planInput.SetValue("")
			if name, reminder, err := parseQuickPlan(value); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
			} else if name != "" {
				return m.addPlanning(name, "", reminder), nil
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.planInput, cmd = m.planInput.Update(msg)
		return m, cmd
	}

	ordered := m.plannerOrder()
	switch msg.String() {
	case "i":
		m.planInput.Focus()
	case "j", "down":
		if m.Cursor < len(ordered)-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "p":
		if task, ok := m.selectedPlanning(ordered); ok {
			return m.applyPriority(task.ID, nextPriority(task.Priority)), nil
		}
	case "d":
		if task, ok := m.selectedPlanning(ordered); ok {
			next := m.deleteTask(task.ID)
			if next.Cursor >= len(next.State.Planning) && next.Cursor > 0 {
				next.Cursor--
			}
			return next, nil
		}
	case "s":
		if task, ok := m.selectedPlanning(ordered); ok {
			return m.snoozeTask(task.ID), nil
		}
	case "enter":
		if task, ok := m.selectedPlanning(ordered); ok {
			next := m.completeTask(task.ID, 0)
			if next.Cursor >= len(next.State.Planning) && next.Cursor > 0 {
				next.Cursor--
			}
			return next, nil
		}
	}
	return m, nil
}

// plannerOrder flattens the priority buckets in display order so the cursor
// walks the list exactly as rendered.
func (m Model) plannerOrder() []model.PlanningTask {
	ordered := make([]model.PlanningTask, 0, len(m.State.Planning))
	for _, p := range []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow} {
		for _, task := range m.State.Planning {
			if task.Priority == p {
				ordered = append(ordered, task)
			}
		}
	}
	return ordered
}

func (m Model) selectedPlanning(ordered []model.PlanningTask) (model.PlanningTask, bool) {
	if m.Cursor < 0 || m.Cursor >= len(ordered) {
		return model.PlanningTask{}, false
	}
	return ordered[m.Cursor], true
}

// typingInInput reports whether keystrokes belong to a focused text input.
// A focused input captures bound keys even while still empty, so task
// names can start with them; esc blurs the input to free the bindings.
func (m Model) typingInInput() bool {
	switch m.CurrentView {
	case ViewLog:
		return m.logInput.Focused()
	case ViewPlanner:
		return m.planInput.Focused()
	default:
		return false
	}
}

func (m *Model) focusInputForView() {
	m.blurInputs()
	switch m.CurrentView {
	case ViewLog:
		m.logInput.Focus()
	}
}

func (m *Model) blurInputs() {
	m.logInput.Blur()
	m.planInput.Blur()
	m.commandInput.Blur()
}

func nextView(v View) View {
	switch v {
	case ViewLog:
		return ViewPlanner
	case ViewPlanner:
		return ViewStats
	case ViewStats:
		return ViewHelp
	default:
		return ViewLog
	}
}

func nextPriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityHigh:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityLow
	default:
		return model.PriorityHigh
	}
}
