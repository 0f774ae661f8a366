package stats

import (
	"time"

	"questlog/internal/model"
)

// All functions here are pure: collections in, aggregates out, with the
// current moment injected so results are reproducible in tests. Day
// boundaries follow the local calendar day of the supplied time.

type WeeklyPoint struct {
	Label  string
	Points int
}

func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TasksOn returns the completed tasks whose timestamp falls on the same
// calendar day as the given moment.
func TasksOn(tasks []model.CompletedTask, day time.Time) []model.CompletedTask {
	out := make([]model.CompletedTask, 0)
	for _, task := range tasks {
		if sameDay(task.CompletedAt.In(day.Location()), day) {
			out = append(out, task)
		}
	}
	return out
}

func TasksToday(tasks []model.CompletedTask, now time.Time) []model.CompletedTask {
	return TasksOn(tasks, now)
}

// TasksBefore returns tasks completed strictly before today's local midnight.
func TasksBefore(tasks []model.CompletedTask, now time.Time) []model.CompletedTask {
	midnight := dayStart(now)
	out := make([]model.CompletedTask, 0)
	for _, task := range tasks {
		if task.CompletedAt.In(now.Location()).Before(midnight) {
			out = append(out, task)
		}
	}
	return out
}

func PointsToday(tasks []model.CompletedTask, now time.Time) int {
	total := 0
	for _, task := range TasksToday(tasks, now) {
		total += task.Points
	}
	return total
}

func TotalPoints(tasks []model.CompletedTask) int {
	total := 0
	for _, task := range tasks {
		total += task.Points
	}
	return total
}

// Streak counts consecutive calendar days with at least one completed
// task, walking backward from today and stopping at the first empty day.
func Streak(tasks []model.CompletedTask, now time.Time) int {
	streak := 0
	day := now
	for {
		if len(TasksOn(tasks, day)) == 0 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// WeeklySeries produces point totals for the trailing seven calendar days,
// oldest first and inclusive of today, each labeled with the short weekday.
func WeeklySeries(tasks []model.CompletedTask, now time.Time) []WeeklyPoint {
	out := make([]WeeklyPoint, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		points := 0
		for _, task := range TasksOn(tasks, day) {
			points += task.Points
		}
		out = append(out, WeeklyPoint{Label: day.Format("Mon"), Points: points})
	}
	return out
}
