package update

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"questlog/internal/model"
	"questlog/internal/notify"
	"questlog/internal/scheduler"
	"questlog/internal/stats"
	"questlog/internal/storage"
)

type View string

const (
	ViewLog     View = "Log"
	ViewPlanner View = "Planner"
	ViewStats   View = "Stats"
	ViewHelp    View = "Help"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Log     string
	Planner string
	Stats   string
	Help    string
	Quit    string
}

// AppState holds the two persisted collections. Mutations never edit in
// place; every operation derives a new slice and the old one is discarded.
type AppState struct {
	Completed []model.CompletedTask
	Planning  []model.PlanningTask
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView View
	State       AppState
	Status      StatusBar
	Keys        GlobalKeyMap
	Palette     CommandPaletteState
	Permission  notify.Permission
	Badges      stats.BadgeTable
	BadgeMode   BadgeMode
	Cursor      int
	Quitting    bool
	LastError   error

	store    storage.Store
	engine   *scheduler.Engine
	notifier notify.Notifier
	actions  notify.ActionSource
	newID    func() string
	now      func() time.Time

	logInput     textinput.Model
	planInput    textinput.Model
	commandInput textinput.Model
}

type AddCompletedTaskMsg struct {
	Name   string
	Points int
}

type AddPlanningTaskMsg struct {
	Name     string
	Priority model.Priority
	Reminder *model.ReminderConfig
}

type UpdatePriorityMsg struct {
	Target   string
	Priority model.Priority
}

type DeleteTaskMsg struct {
	Target string
}

type CompleteTaskMsg struct {
	Target string
	Points int
}

type SnoozeTaskMsg struct {
	Target string
}

type ReminderDueMsg struct {
	Event scheduler.ReminderEvent
}

type NotificationActionMsg struct {
	Command notify.ActionCommand
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type Runtime struct {
	Store      storage.Store
	Engine     *scheduler.Engine
	Notifier   notify.Notifier
	Actions    notify.ActionSource
	Permission notify.Permission
	Badges     stats.BadgeTable
	BadgeMode  BadgeMode
	NewID      func() string
	Now        func() time.Time
}

func NewModel(rt Runtime) Model {
	m := Model{
		CurrentView: ViewLog,
		State: AppState{
			Completed: make([]model.CompletedTask, 0),
			Planning:  make([]model.PlanningTask, 0),
		},
		Keys: GlobalKeyMap{
			Log:     "1",
			Planner: "2",
			Stats:   "3",
			Help:    "?",
			Quit:    "q",
		},
		Permission: rt.Permission,
		Badges:     rt.Badges,
		BadgeMode:  rt.BadgeMode,
		store:      rt.Store,
		engine:     rt.Engine,
		notifier:   rt.Notifier,
		actions:    rt.Actions,
		newID:      rt.NewID,
		now:        rt.Now,
	}
	if m.notifier == nil {
		m.notifier = notify.NoopNotifier{}
	}
	if m.newID == nil {
		m.newID = defaultNewID
	}
	if m.now == nil {
		m.now = time.Now
	}
	if len(m.Badges) == 0 {
		m.Badges = stats.TotalBadges
	}
	if m.BadgeMode == "" {
		m.BadgeMode = BadgeModeTotal
	}

	m.logInput = textinput.New()
	m.logInput.Placeholder = "what did you finish? (+points optional)"
	m.logInput.CharLimit = 120
	m.logInput.Focus()

	m.planInput = textinput.New()
	m.planInput.Placeholder = "what are you planning? (remind:1hr optional)"
	m.planInput.CharLimit = 120

	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "command"
	m.commandInput.CharLimit = 160

	return m
}

// WithState seeds the collections, typically from the store at startup.
func (m Model) WithState(completed []model.CompletedTask, planning []model.PlanningTask) Model {
	m.State.Completed = completed
	m.State.Planning = planning
	return m
}
