package dashboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	caldto "taskflows/internal/modules/calendar/dto"
	goaldto "taskflows/internal/modules/goals/dto"
	storedto "taskflows/internal/modules/store/dto"
)

func TestBar(t *testing.T) {
	t.Parallel()
	cases := map[int]int{0: 0, 50: 10, 100: 20, 150: 20, -5: 0}
	for percent, filled := range cases {
		bar := Bar(percent)
		if got := strings.Count(bar, "#"); got != filled {
			t.Fatalf("Bar(%d) filled %d cells, want %d", percent, got, filled)
		}
		if w := lipgloss.Width(bar); w != barWidth+2 {
			t.Fatalf("Bar(%d) has width %d", percent, w)
		}
	}
}

func TestRenderShowsSections(t *testing.T) {
	t.Parallel()
	out := Render(Snapshot{
		Stats: storedto.StatsOutput{TotalTasks: 4, CompletedTasks: 1, Productivity: 25},
		Goals: []goaldto.GoalOutput{{Title: "Ship v1", Current: 1, Target: 2, Percent: 50, Deadline: "Today"}},
	}, 100)
	for _, want := range []string{"Productivity", "25%", "Ship v1", "nothing scheduled", "no activity yet"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderKeepsRowsOnOneLineWhenNarrow(t *testing.T) {
	t.Parallel()
	out := Render(Snapshot{
		Goals:    []goaldto.GoalOutput{{Title: "Complete project tasks", Current: 4, Target: 6, Percent: 66, Deadline: "Today"}},
		Upcoming: []caldto.EventOutput{
			{Title: "Team Standup", Date: "2026-04-10", Time: "10:00 AM"},
			{Title: "A very long planning session title that cannot fit in one pane row", Date: "2026-04-11", Time: "2:00 PM"},
		},
	}, 0)

	rows := map[string]string{
		"Complete project tasks": "Today",
		"Team Standup":           "2026-04-10 10:00 AM",
		"A very long":            "2026-04-11 2:00 PM",
	}
	lines := strings.Split(out, "\n")
	for head, with := range rows {
		found := false
		for _, line := range lines {
			if strings.Contains(line, head) && strings.Contains(line, with) {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %q and %q on one line:\n%s", head, with, out)
		}
	}
	if strings.Contains(out, "one pane row") {
		t.Fatalf("expected long title to be cut:\n%s", out)
	}
	if !strings.Contains(out, "4/6") {
		t.Fatalf("expected goal progress:\n%s", out)
	}
}
