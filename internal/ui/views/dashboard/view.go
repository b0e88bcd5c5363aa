package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	caldto "taskflows/internal/modules/calendar/dto"
	goaldto "taskflows/internal/modules/goals/dto"
	storedto "taskflows/internal/modules/store/dto"
	"taskflows/internal/ui/theme"
)

const (
	barWidth     = 20
	minPaneWidth = 44
	panePadding  = 2
)

// Snapshot is everything the dashboard shows, loaded in one pass.
type Snapshot struct {
	Stats    storedto.StatsOutput
	Goals    []goaldto.GoalOutput
	Upcoming []caldto.EventOutput
	Activity []storedto.ActivityOutput
}

func Render(s Snapshot, width int) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Tasks", fmt.Sprintf("%d/%d done", s.Stats.CompletedTasks, s.Stats.TotalTasks)),
		card("Productivity", fmt.Sprintf("%d%%", s.Stats.Productivity)),
		card("Notes", fmt.Sprintf("%d + %d quick", s.Stats.TotalNotes, s.Stats.TotalQuickNotes)),
		card("Documents", fmt.Sprintf("%d", s.Stats.TotalDocuments)),
		card("Events", fmt.Sprintf("%d", s.Stats.TotalEvents)),
	)

	paneWidth := max(width/2-2, minPaneWidth)
	inner := paneWidth - panePadding
	left := theme.Pane.Width(paneWidth).Render(goalsPane(s.Goals, inner) + "\n\n" + upcomingPane(s.Upcoming, inner))
	right := theme.Pane.Width(paneWidth).Render(activityPane(s.Activity, inner))
	return lipgloss.JoinVertical(lipgloss.Left, cards, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
}

// fit cuts line to w cells so a pane never wraps a row.
func fit(line string, w int) string {
	return lipgloss.NewStyle().MaxWidth(w).Render(line)
}

func card(label, value string) string {
	return theme.Card.Render(theme.Muted.Render(label) + "\n" + theme.Hot.Render(value))
}

func goalsPane(goals []goaldto.GoalOutput, w int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Goals") + "\n")
	if len(goals) == 0 {
		sb.WriteString(theme.Muted.Render("no goals"))
		return sb.String()
	}
	for _, g := range goals {
		sb.WriteString(fit(g.Title+"  "+theme.Muted.Render(g.Deadline), w) + "\n")
		sb.WriteString(fit(fmt.Sprintf("%s %d/%d", Bar(g.Percent), g.Current, g.Target), w) + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func upcomingPane(events []caldto.EventOutput, w int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Upcoming") + "\n")
	if len(events) == 0 {
		sb.WriteString(theme.Muted.Render("nothing scheduled"))
		return sb.String()
	}
	for _, e := range events {
		sb.WriteString(fit(fmt.Sprintf("%s %s  %s", e.Date, e.Time, e.Title), w) + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func activityPane(entries []storedto.ActivityOutput, w int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Recent Activity") + "\n")
	if len(entries) == 0 {
		sb.WriteString(theme.Muted.Render("no activity yet"))
		return sb.String()
	}
	for _, a := range entries {
		sb.WriteString(fit(fmt.Sprintf("%s %s %s", theme.Muted.Render(a.Timestamp.Format("Jan 02 15:04")), a.Type, a.Title), w) + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Bar draws a fixed-width progress bar for percent in [0, 100].
func Bar(percent int) string {
	percent = max(0, min(percent, 100))
	filled := percent * barWidth / 100
	return "[" + theme.Done.Render(strings.Repeat("#", filled)) + theme.Pending.Render(strings.Repeat(".", barWidth-filled)) + "]"
}
