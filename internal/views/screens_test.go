package views

import (
	"strings"
	"testing"
)

func TestRenderPlannerPanelBucketOrder(t *testing.T) {
	out := RenderPlannerPanel(PlannerPanelData{
		Items: []PlannerItemData{
			{ID: "p-1", Name: "taxes", Priority: "low"},
			{ID: "p-2", Name: "call dentist", Priority: "high", ReminderText: "in 1hr", Armed: true},
			{ID: "p-3", Name: "water plants", Priority: "medium"},
		},
		SelectedID: "p-2",
	})

	high := strings.Index(out, "High:")
	medium := strings.Index(out, "Medium:")
	low := strings.Index(out, "Low:")
	if high < 0 || medium < 0 || low < 0 || high > medium || medium > low {
		t.Fatalf("bucket order wrong in:\n%s", out)
	}
	if !strings.Contains(out, "> call dentist [bell:on in 1hr]") {
		t.Fatalf("missing selected reminder line in:\n%s", out)
	}
}

func TestRenderLogPanelTodayMarker(t *testing.T) {
	out := RenderLogPanel(LogPanelData{
		Items: []LogItemData{
			{ID: "c-1", Name: "run", Points: 10, When: "08:00", Today: true},
			{ID: "c-2", Name: "read", When: "yesterday"},
		},
	})
	if !strings.Contains(out, "* run +10 (08:00)") {
		t.Fatalf("missing today line in:\n%s", out)
	}
	if !strings.Contains(out, "  read (yesterday)") && !strings.Contains(out, " read (yesterday)") {
		t.Fatalf("missing non-today line in:\n%s", out)
	}

	empty := RenderLogPanel(LogPanelData{})
	if !strings.Contains(empty, "nothing completed yet") {
		t.Fatalf("missing empty marker in:\n%s", empty)
	}
}

func TestRenderWeeklyBarsScaled(t *testing.T) {
	out := renderWeeklyBars([]WeeklyBarData{
		{Label: "Mon", Points: 24},
		{Label: "Tue", Points: 1},
		{Label: "Wed", Points: 0},
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 bar lines, got %d:\n%s", len(lines), out)
	}
	if strings.Count(lines[0], "█") != barWidth {
		t.Fatalf("max bar should be full width:\n%s", out)
	}
	if strings.Count(lines[1], "█") != 1 {
		t.Fatalf("non-zero bar should be at least one cell:\n%s", out)
	}
	if strings.Contains(lines[2], "█") {
		t.Fatalf("zero bar should be empty:\n%s", out)
	}
}

func TestRenderStatsPanel(t *testing.T) {
	out := RenderStatsPanel(StatsPanelData{
		PointsToday: 15,
		TotalPoints: 230,
		Streak:      3,
		Badge:       "Silver",
		Weekly:      []WeeklyBarData{{Label: "Fri", Points: 15}},
	})
	for _, want := range []string{"points today: 15", "total points: 230", "streak: 3 day(s)", "badge: Silver", "Fri"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}
