package update

import (
	"fmt"
	"strings"
	"time"

	"questlog/internal/model"
	"questlog/internal/stats"
	"questlog/internal/views"
)

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	body := ""
	switch m.CurrentView {
	case ViewLog:
		body = m.renderLogView()
	case ViewPlanner:
		body = m.renderPlannerView()
	case ViewStats:
		body = m.renderStatsView()
	case ViewHelp:
		body = m.renderHelpView()
	}

	notification := views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("questlog | streak: %d | points today: %d", stats.Streak(m.State.Completed, m.now()), stats.PointsToday(m.State.Completed, m.now())),
		Tabs:         m.renderTabs(),
		Body:         body,
		StatusLine:   status,
		Notification: notification,
		Footer:       fmt.Sprintf("keys: %s log | %s planner | %s stats | / cmd | %s help | %s quit", m.Keys.Log, m.Keys.Planner, m.Keys.Stats, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 4)
	for _, v := range []View{ViewLog, ViewPlanner, ViewStats, ViewHelp} {
		label := string(v)
		if v == m.CurrentView {
			label = "[" + label + "]"
		}
		tabs = append(tabs, label)
	}
	return strings.Join(tabs, "  ")
}

func (m Model) renderLogView() string {
	now := m.now()
	items := make([]views.LogItemData, 0, len(m.State.Completed))
	// Newest first.
	for i := len(m.State.Completed) - 1; i >= 0; i-- {
		task := m.State.Completed[i]
		when := task.CompletedAt.Format("Jan 02")
		today := sameCalendarDay(task.CompletedAt, now)
		if today {
			when = task.CompletedAt.Format("15:04")
		}
		items = append(items, views.LogItemData{
			ID:     task.ID,
			Name:   task.Name,
			When:   when,
			Points: task.Points,
			Today:  today,
		})
	}
	return views.RenderLogPanel(views.LogPanelData{
		InputView: m.logInput.View(),
		Items:     items,
	})
}

func (m Model) renderPlannerView() string {
	ordered := m.plannerOrder()
	selectedID := ""
	if task, ok := m.selectedPlanning(ordered); ok {
		selectedID = task.ID
	}
	items := make([]views.PlannerItemData, 0, len(ordered))
	for _, task := range ordered {
		items = append(items, views.PlannerItemData{
			ID:           task.ID,
			Name:         task.Name,
			Priority:     string(task.Priority),
			ReminderText: reminderText(task.Reminder),
			Armed:        m.engine != nil && m.engine.Armed(task.ID),
		})
	}
	return views.RenderPlannerPanel(views.PlannerPanelData{
		InputView:  m.planInput.View(),
		Items:      items,
		SelectedID: selectedID,
	})
}

func (m Model) renderStatsView() string {
	now := m.now()
	pointsToday := stats.PointsToday(m.State.Completed, now)
	total := stats.TotalPoints(m.State.Completed)

	badgePoints := total
	if m.BadgeMode == BadgeModeDaily {
		badgePoints = pointsToday
	}
	badge, _ := m.Badges.Tier(badgePoints)

	weekly := stats.WeeklySeries(m.State.Completed, now)
	bars := make([]views.WeeklyBarData, 0, len(weekly))
	for _, p := range weekly {
		bars = append(bars, views.WeeklyBarData{Label: p.Label, Points: p.Points})
	}
	return views.RenderStatsPanel(views.StatsPanelData{
		PointsToday: pointsToday,
		TotalPoints: total,
		Streak:      stats.Streak(m.State.Completed, now),
		Badge:       badge,
		Weekly:      bars,
	})
}

const helpMarkdown = `# questlog

## Log
Type a task and press enter to record it. Append ` + "`+N`" + ` to award points.
While the input is focused every key is text; ` + "`esc`" + ` leaves the input
(freeing ` + "`q`" + `, ` + "`1-3`" + `, ` + "`/`" + ` and ` + "`?`" + `), ` + "`i`" + ` returns to it.

## Planner
` + "`i`" + ` edit, ` + "`j/k`" + ` move, ` + "`p`" + ` cycle priority, ` + "`s`" + ` snooze,
` + "`d`" + ` delete, ` + "`enter`" + ` complete.

## Command palette
Open with ` + "`/`" + `. Commands: add, plan, priority, delete, snooze, show.
Plan reminder suffixes: ` + "`remind:1hr`" + `, ` + "`remind:2hr`" + `, ` + "`remind:45m`" + `.
`

func (m Model) renderHelpView() string {
	return views.RenderMarkdown(helpMarkdown)
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func reminderText(r *model.ReminderConfig) string {
	if r == nil || !r.Enabled {
		return ""
	}
	switch r.Option {
	case model.ReminderOneHour:
		return "1hr"
	case model.ReminderTwoHours:
		return "2hr"
	case model.ReminderCustom:
		return fmt.Sprintf("%dm", r.CustomMinutes)
	default:
		return string(r.Option)
	}
}
