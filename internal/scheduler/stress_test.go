package scheduler

import (
	"fmt"
	"testing"
	"time"
)

func TestEngineHandlesManyTasks(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping stress test in short mode")
	}

	engine := NewEngine(256)
	engine.Start()
	defer engine.Stop()

	const count = 100
	base := time.Now().Add(30 * time.Millisecond)
	for i := 0; i < count; i++ {
		ev := ReminderEvent{
			TaskID:    fmt.Sprintf("task-%03d", i),
			TriggerAt: base.Add(time.Duration(i) * time.Millisecond),
		}
		if err := engine.Schedule(ev); err != nil {
			t.Fatalf("schedule %d: %v", i, err)
		}
	}

	seen := make(map[string]bool, count)
	deadline := time.After(5 * time.Second)
	for len(seen) < count {
		select {
		case ev := <-engine.C():
			if seen[ev.TaskID] {
				t.Fatalf("duplicate event for %s", ev.TaskID)
			}
			seen[ev.TaskID] = true
		case <-deadline:
			t.Fatalf("timed out, received %d of %d events", len(seen), count)
		}
	}
	if engine.Dropped() != 0 {
		t.Fatalf("expected no drops with a large buffer, got %d", engine.Dropped())
	}
}
