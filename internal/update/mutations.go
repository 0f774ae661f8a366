package update

import (
	"strings"

	"questlog/internal/model"
)

func appendCompleted(tasks []model.CompletedTask, task model.CompletedTask) []model.CompletedTask {
	out := make([]model.CompletedTask, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, task)
}

func appendPlanning(tasks []model.PlanningTask, task model.PlanningTask) []model.PlanningTask {
	out := make([]model.PlanningTask, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, task)
}

func updatePriority(tasks []model.PlanningTask, id string, p model.Priority) ([]model.PlanningTask, bool) {
	out := make([]model.PlanningTask, 0, len(tasks))
	found := false
	for _, task := range tasks {
		next := task.Clone()
		if task.ID == id {
			next.Priority = p
			found = true
		}
		out = append(out, next)
	}
	return out, found
}

func removePlanning(tasks []model.PlanningTask, id string) ([]model.PlanningTask, bool) {
	out := make([]model.PlanningTask, 0, len(tasks))
	removed := false
	for _, task := range tasks {
		if task.ID == id {
			removed = true
			continue
		}
		out = append(out, task)
	}
	return out, removed
}

// resolvePlanning matches a palette target against the planning list, by ID
// first and then by case-insensitive name.
func resolvePlanning(tasks []model.PlanningTask, target string) (model.PlanningTask, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return model.PlanningTask{}, false
	}
	for _, task := range tasks {
		if task.ID == target {
			return task, true
		}
	}
	for _, task := range tasks {
		if strings.EqualFold(task.Name, target) {
			return task, true
		}
	}
	return model.PlanningTask{}, false
}
