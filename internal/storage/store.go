package storage

import (
	"context"

	"questlog/internal/model"
)

// Record keys. The two collections are persisted independently as JSON
// arrays under these keys.
const (
	KeyCompleted = "tasks"
	KeyPlanning  = "planningTasks"
)

type Store interface {
	LoadCompleted(ctx context.Context) ([]model.CompletedTask, error)
	SaveCompleted(ctx context.Context, tasks []model.CompletedTask) error
	LoadPlanning(ctx context.Context) ([]model.PlanningTask, error)
	SavePlanning(ctx context.Context, tasks []model.PlanningTask) error
	Close() error
}
