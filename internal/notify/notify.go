package notify

import "time"

type Permission string

const (
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
	PermissionUnsupported Permission = "unsupported"
)

// Allowed reports whether notifications may be delivered. Denied and
// unsupported are treated identically by callers: the reminder is disabled
// and the enclosing operation proceeds.
func (p Permission) Allowed() bool {
	return p == PermissionGranted
}

// Authorizer answers whether the platform can deliver notifications.
type Authorizer interface {
	Request() Permission
}

// StaticAuthorizer returns a fixed answer; used in tests and for the
// config switch that disables desktop notifications outright.
type StaticAuthorizer struct {
	Result Permission
}

func (a StaticAuthorizer) Request() Permission { return a.Result }

// Notification is a fire-and-forget delivery request. TaskID and TaskName
// ride along as correlation data for action round-trips.
type Notification struct {
	Title    string
	Body     string
	TaskID   string
	TaskName string
	At       time.Time
}

type Notifier interface {
	Send(Notification) error
}

type NoopNotifier struct{}

func (NoopNotifier) Send(Notification) error { return nil }

// Action identifies what the user chose on a delivered notification.
type Action string

const (
	ActionMarkComplete Action = "mark_complete"
	ActionSnooze       Action = "snooze"
)

// SnoozeDelay is the fixed re-arm interval for a snoozed reminder.
const SnoozeDelay = 15 * time.Minute

// ActionCommand is the typed command flowing from the notification
// surface back into the update loop; there is no stringly-typed event bus.
type ActionCommand struct {
	Action Action
	TaskID string
	Name   string
}

// ActionSource exposes the command channel the update loop consumes.
type ActionSource interface {
	Actions() <-chan ActionCommand
}

// ActionDispatcher is the producer side: delivery code pushes the action
// the user chose on a notification through it.
type ActionDispatcher interface {
	Dispatch(ActionCommand) bool
}

// ChannelActions is a buffered ActionSource fed by the UI layer (and by
// tests) when the user reacts to a reminder.
type ChannelActions struct {
	ch chan ActionCommand
}

func NewChannelActions(buffer int) *ChannelActions {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelActions{ch: make(chan ActionCommand, buffer)}
}

func (c *ChannelActions) Actions() <-chan ActionCommand { return c.ch }

// Dispatch queues a command without blocking; a full buffer drops the
// command, mirroring the non-blocking emit of the reminder engine.
func (c *ChannelActions) Dispatch(cmd ActionCommand) bool {
	select {
	case c.ch <- cmd:
		return true
	default:
		return false
	}
}
