package summary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"questlog/internal/model"
	"questlog/internal/stats"
)

// Build renders the plain-text daily summary: today's points and streak,
// then the open planning tasks grouped by priority bucket. The badge table
// is applied to all-time points when allTimeBadge is set and to today's
// points otherwise, so the tier basis always matches the table.
func Build(completed []model.CompletedTask, planning []model.PlanningTask, badges stats.BadgeTable, allTimeBadge bool, now time.Time) string {
	var b strings.Builder

	b.WriteString("Daily summary\n")
	b.WriteString(now.Format("Mon, 02 Jan 2006"))
	b.WriteString("\n\n")

	points := stats.PointsToday(completed, now)
	b.WriteString(fmt.Sprintf("Points today: %d\n", points))
	b.WriteString(fmt.Sprintf("Tasks done today: %d\n", len(stats.TasksToday(completed, now))))
	b.WriteString(fmt.Sprintf("Streak: %d day(s)\n", stats.Streak(completed, now)))
	badgePoints := points
	if allTimeBadge {
		badgePoints = stats.TotalPoints(completed)
	}
	if name, ok := badges.Tier(badgePoints); ok {
		b.WriteString(fmt.Sprintf("Badge: %s\n", name))
	}

	b.WriteString("\nPlanned\n")
	if len(planning) == 0 {
		b.WriteString("- nothing planned\n")
	} else {
		for _, bucket := range []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow} {
			tasks := tasksWithPriority(planning, bucket)
			if len(tasks) == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("%s:\n", bucketLabel(bucket)))
			for _, task := range tasks {
				b.WriteString("- ")
				b.WriteString(task.Name)
				if task.Reminder != nil && task.Reminder.Enabled {
					b.WriteString(" (reminder set)")
				}
				b.WriteByte('\n')
			}
		}
	}

	return strings.TrimSpace(b.String())
}

func bucketLabel(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "High"
	case model.PriorityMedium:
		return "Medium"
	case model.PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}

func tasksWithPriority(planning []model.PlanningTask, p model.Priority) []model.PlanningTask {
	var out []model.PlanningTask
	for _, task := range planning {
		if task.Priority == p {
			out = append(out, task)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
