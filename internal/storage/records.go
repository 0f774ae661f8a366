package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"questlog/internal/model"
)

const recordTimeLayout = time.RFC3339Nano

// Wire shapes for the persisted JSON arrays. Dates travel as ISO-8601
// strings; reminder timer handles are never part of the records.
type completedRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	Points    *int   `json:"points,omitempty"`
}

type reminderRecord struct {
	Enabled       bool   `json:"enabled"`
	Option        string `json:"option"`
	CustomMinutes int    `json:"customMinutes,omitempty"`
}

type planningRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Priority  string          `json:"priority"`
	CreatedAt string          `json:"createdAt"`
	Reminder  *reminderRecord `json:"reminder,omitempty"`
}

func encodeCompleted(tasks []model.CompletedTask) ([]byte, error) {
	records := make([]completedRecord, 0, len(tasks))
	for _, task := range tasks {
		rec := completedRecord{
			ID:        task.ID,
			Name:      task.Name,
			Timestamp: task.CompletedAt.Format(recordTimeLayout),
		}
		if task.Points > 0 {
			points := task.Points
			rec.Points = &points
		}
		records = append(records, rec)
	}
	return json.Marshal(records)
}

func decodeCompleted(raw []byte) ([]model.CompletedTask, error) {
	var records []completedRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("unmarshal completed tasks: %w", err)
	}
	out := make([]model.CompletedTask, 0, len(records))
	for _, rec := range records {
		completedAt, err := time.Parse(recordTimeLayout, rec.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp for %q: %w", rec.ID, err)
		}
		task := model.CompletedTask{
			ID:          rec.ID,
			Name:        rec.Name,
			CompletedAt: completedAt,
		}
		if rec.Points != nil {
			task.Points = *rec.Points
		}
		out = append(out, task)
	}
	return out, nil
}

func encodePlanning(tasks []model.PlanningTask) ([]byte, error) {
	records := make([]planningRecord, 0, len(tasks))
	for _, task := range tasks {
		rec := planningRecord{
			ID:        task.ID,
			Name:      task.Name,
			Priority:  string(task.Priority),
			CreatedAt: task.CreatedAt.Format(recordTimeLayout),
		}
		if task.Reminder != nil {
			rec.Reminder = &reminderRecord{
				Enabled:       task.Reminder.Enabled,
				Option:        string(task.Reminder.Option),
				CustomMinutes: task.Reminder.CustomMinutes,
			}
		}
		records = append(records, rec)
	}
	return json.Marshal(records)
}

func decodePlanning(raw []byte) ([]model.PlanningTask, error) {
	var records []planningRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("unmarshal planning tasks: %w", err)
	}
	out := make([]model.PlanningTask, 0, len(records))
	for _, rec := range records {
		createdAt, err := time.Parse(recordTimeLayout, rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for %q: %w", rec.ID, err)
		}
		task := model.PlanningTask{
			ID:        rec.ID,
			Name:      rec.Name,
			Priority:  model.Priority(rec.Priority),
			CreatedAt: createdAt,
		}
		if rec.Reminder != nil {
			task.Reminder = &model.ReminderConfig{
				Enabled:       rec.Reminder.Enabled,
				Option:        model.ReminderOption(rec.Reminder.Option),
				CustomMinutes: rec.Reminder.CustomMinutes,
			}
		}
		out = append(out, task)
	}
	return out, nil
}
