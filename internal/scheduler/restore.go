package scheduler

import (
	"time"

	"questlog/internal/model"
)

// RestorePlan describes what re-arming stored planning tasks would do.
// Armed events still have time left; Missed lists tasks whose delay fully
// elapsed while the app was not running. Missed reminders are dropped, not
// fired retroactively.
type RestorePlan struct {
	Armed  []ReminderEvent
	Missed []string
}

// BuildRestorePlan walks the loaded planning tasks and computes, from each
// enabled reminder's creation time and delay, whether a timer should be
// re-armed for the remaining interval. Stored timer state never survives a
// restart, so "enabled" always means "needs re-arming" here.
func BuildRestorePlan(tasks []model.PlanningTask, now time.Time) RestorePlan {
	plan := RestorePlan{
		Armed:  make([]ReminderEvent, 0),
		Missed: make([]string, 0),
	}
	for _, task := range tasks {
		if task.Reminder == nil || !task.Reminder.Enabled {
			continue
		}
		delay, ok := DelayFor(task.Reminder.Option, task.Reminder.CustomMinutes)
		if !ok {
			continue
		}
		trigger := task.CreatedAt.Add(delay)
		if trigger.After(now) {
			plan.Armed = append(plan.Armed, ReminderEvent{
				TaskID:    task.ID,
				Name:      task.Name,
				TriggerAt: trigger,
			})
			continue
		}
		plan.Missed = append(plan.Missed, task.ID)
	}
	return plan
}

// Restore applies a restore plan to the engine.
func Restore(engine *Engine, plan RestorePlan) error {
	for _, ev := range plan.Armed {
		if err := engine.Schedule(ev); err != nil {
			return err
		}
	}
	return nil
}
