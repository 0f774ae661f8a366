package views

import (
	"fmt"
	"strings"
)

type LogItemData struct {
	ID     string
	Name   string
	When   string
	Points int
	Today  bool
}

type LogPanelData struct {
	InputView string
	Items     []LogItemData
}

type PlannerItemData struct {
	ID           string
	Name         string
	Priority     string
	ReminderText string
	Armed        bool
}

type PlannerPanelData struct {
	InputView  string
	Items      []PlannerItemData
	SelectedID string
}

type WeeklyBarData struct {
	Label  string
	Points int
}

type StatsPanelData struct {
	PointsToday int
	TotalPoints int
	Streak      int
	Badge       string
	Weekly      []WeeklyBarData
}

func RenderLogPanel(data LogPanelData) string {
	var b strings.Builder
	b.WriteString("log:\n")
	b.WriteString(data.InputView + "\n")
	b.WriteString("actions: [enter]add [tab]switch view [/]command\n")
	if len(data.Items) == 0 {
		b.WriteString("(nothing completed yet)")
		return b.String()
	}
	for _, item := range data.Items {
		marker := " "
		if item.Today {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("%s %s", marker, item.Name))
		if item.Points > 0 {
			b.WriteString(fmt.Sprintf(" +%d", item.Points))
		}
		if item.When != "" {
			b.WriteString(fmt.Sprintf(" (%s)", item.When))
		}
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}

func RenderPlannerPanel(data PlannerPanelData) string {
	high := make([]PlannerItemData, 0)
	medium := make([]PlannerItemData, 0)
	low := make([]PlannerItemData, 0)
	for _, item := range data.Items {
		switch item.Priority {
		case "high":
			high = append(high, item)
		case "low":
			low = append(low, item)
		default:
			medium = append(medium, item)
		}
	}

	var b strings.Builder
	b.WriteString("planner:\n")
	b.WriteString(data.InputView + "\n")
	b.WriteString("actions: [j/k]move [p]priority [d]delete [enter]complete\n")
	renderPlannerSection(&b, "High", high, data.SelectedID)
	renderPlannerSection(&b, "Medium", medium, data.SelectedID)
	renderPlannerSection(&b, "Low", low, data.SelectedID)
	return strings.TrimSpace(b.String())
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("points today: %d\n", data.PointsToday))
	b.WriteString(fmt.Sprintf("total points: %d\n", data.TotalPoints))
	b.WriteString(fmt.Sprintf("streak: %d day(s)\n", data.Streak))
	if data.Badge != "" {
		b.WriteString(fmt.Sprintf("badge: %s\n", data.Badge))
	}
	if len(data.Weekly) > 0 {
		b.WriteString("\nlast 7 days:\n")
		b.WriteString(renderWeeklyBars(data.Weekly))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

const barWidth = 24

func renderWeeklyBars(points []WeeklyBarData) string {
	max := 0
	for _, p := range points {
		if p.Points > max {
			max = p.Points
		}
	}

	var b strings.Builder
	for _, p := range points {
		width := 0
		if max > 0 {
			width = p.Points * barWidth / max
		}
		if p.Points > 0 && width == 0 {
			width = 1
		}
		b.WriteString(fmt.Sprintf("%-3s %s %d\n", p.Label, strings.Repeat("█", width), p.Points))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderPlannerSection(b *strings.Builder, title string, items []PlannerItemData, selectedID string) {
	b.WriteString(fmt.Sprintf("\n%s:\n", title))
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, item := range items {
		cursor := " "
		if selectedID == item.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s", cursor, item.Name))
		if item.ReminderText != "" {
			bell := "bell:off"
			if item.Armed {
				bell = "bell:on"
			}
			b.WriteString(fmt.Sprintf(" [%s %s]", bell, item.ReminderText))
		}
		b.WriteString("\n")
	}
}
