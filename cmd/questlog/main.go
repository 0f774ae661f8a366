package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"questlog/internal/logging"
	"questlog/internal/notify"
	"questlog/internal/scheduler"
	"questlog/internal/stats"
	"questlog/internal/storage"
	"questlog/internal/summary"
	"questlog/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "questlog failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	update.LoadDotenv()
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	if err := logging.Init(logging.Config{Debug: cfg.Debug, Dir: cfg.LogDir}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	completed, err := store.LoadCompleted(ctx)
	if err != nil {
		return fmt.Errorf("load completed tasks: %w", err)
	}
	planning, err := store.LoadPlanning(ctx)
	if err != nil {
		return fmt.Errorf("load planning tasks: %w", err)
	}

	var authorizer notify.Authorizer = notify.ExecAuthorizer{}
	if !cfg.DesktopNotifications {
		authorizer = notify.StaticAuthorizer{Result: notify.PermissionDenied}
	}
	permission := authorizer.Request()

	actions := notify.NewChannelActions(cfg.ActionBuffer)

	var notifier notify.Notifier = notify.NoopNotifier{}
	if permission.Allowed() {
		notifier = notify.ExecNotifier{Actions: actions}
	}
	logging.Info("notification permission resolved", "permission", permission)

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	plan := scheduler.BuildRestorePlan(planning, time.Now())
	if err := scheduler.Restore(engine, plan); err != nil {
		return fmt.Errorf("restore reminders: %w", err)
	}
	if len(plan.Missed) > 0 {
		logging.Info("dropped reminders that elapsed while stopped", "count", len(plan.Missed))
	}

	badges := stats.TotalBadges
	if cfg.BadgeMode == update.BadgeModeDaily {
		badges = stats.DailyBadges
	}

	m := update.NewModel(update.Runtime{
		Store:      store,
		Engine:     engine,
		Notifier:   notifier,
		Actions:    actions,
		Permission: permission,
		Badges:     badges,
		BadgeMode:  cfg.BadgeMode,
	}).WithState(completed, planning)

	var cronSched *summary.Scheduler
	if cfg.SummaryEnabled {
		cronSched = summary.NewScheduler(time.Local)
		_, err := cronSched.ScheduleDaily(cfg.SummaryTime, func() {
			ctx := context.Background()
			done, loadErr := store.LoadCompleted(ctx)
			if loadErr != nil {
				logging.Error("daily summary load failed", "error", loadErr)
				return
			}
			open, loadErr := store.LoadPlanning(ctx)
			if loadErr != nil {
				logging.Error("daily summary load failed", "error", loadErr)
				return
			}
			text := summary.Build(done, open, badges, cfg.BadgeMode == update.BadgeModeTotal, time.Now())
			if sendErr := notifier.Send(notify.Notification{Title: "Daily summary", Body: text, At: time.Now()}); sendErr != nil {
				logging.Warn("daily summary delivery failed", "error", sendErr)
			}
		})
		if err != nil {
			return fmt.Errorf("schedule daily summary: %w", err)
		}
		cronSched.Start()
		defer cronSched.Stop()
	}

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
