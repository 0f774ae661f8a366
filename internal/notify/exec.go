package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"questlog/internal/logging"
)

// Platform title/body limits before the notification daemon truncates for
// us unpredictably.
const (
	linuxTitleLimit  = 40
	linuxBodyLimit   = 90
	darwinTitleLimit = 60
	darwinBodyLimit  = 80
)

// ExecAuthorizer probes for a usable notification command. There is no
// distinct "denied" on these platforms; a missing binary reads as
// unsupported, which callers treat the same way.
type ExecAuthorizer struct{}

func (ExecAuthorizer) Request() Permission {
	switch runtime.GOOS {
	case "linux":
		if _, err := exec.LookPath("notify-send"); err != nil {
			return PermissionUnsupported
		}
		return PermissionGranted
	case "darwin":
		if _, err := exec.LookPath("osascript"); err != nil {
			return PermissionUnsupported
		}
		return PermissionGranted
	default:
		return PermissionUnsupported
	}
}

// Action keys printed by notify-send when a notification button is
// clicked.
const (
	actionKeyComplete = "complete"
	actionKeySnooze   = "snooze"
)

// ExecNotifier shells out to the platform notification command. With a
// dispatcher set, Linux notifications carry mark-complete and snooze
// buttons and the clicked choice is forwarded to it. macOS banners via
// osascript cannot carry buttons, so delivery there stays fire-and-forget.
type ExecNotifier struct {
	Actions ActionDispatcher
}

func (e ExecNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		title := Truncate(n.Title, linuxTitleLimit)
		body := Truncate(n.Body, linuxBodyLimit)
		if e.Actions == nil || n.TaskID == "" {
			return exec.Command("notify-send", title, body).Run()
		}
		cmd := exec.Command("notify-send",
			"--action", actionKeyComplete+"=Mark complete",
			"--action", actionKeySnooze+"=Snooze 15 min",
			title, body)
		// notify-send blocks until the notification is acted on or
		// dismissed, then prints the chosen action key.
		go func() {
			out, err := cmd.Output()
			if err != nil {
				logging.Warn("notification action wait failed", "task", n.TaskID, "error", err)
				return
			}
			if action, ok := parseActionChoice(string(out), n); ok {
				e.Actions.Dispatch(action)
			}
		}()
		return nil
	case "darwin":
		title := Truncate(n.Title, darwinTitleLimit)
		body := Truncate(n.Body, darwinBodyLimit)
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

// parseActionChoice maps notify-send's printed action key to the typed
// command for the task the notification was about. Dismissal prints
// nothing and produces no command.
func parseActionChoice(out string, n Notification) (ActionCommand, bool) {
	switch strings.TrimSpace(out) {
	case actionKeyComplete:
		return ActionCommand{Action: ActionMarkComplete, TaskID: n.TaskID, Name: n.TaskName}, true
	case actionKeySnooze:
		return ActionCommand{Action: ActionSnooze, TaskID: n.TaskID, Name: n.TaskName}, true
	default:
		return ActionCommand{}, false
	}
}

// Truncate cuts s to at most max runes, ending with an ellipsis when
// anything was removed.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
