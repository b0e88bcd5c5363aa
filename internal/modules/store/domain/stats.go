package domain

import "math"

type Stats struct {
	TotalTasks      int
	CompletedTasks  int
	TotalNotes      int
	TotalDocuments  int
	TotalQuickNotes int
	TotalEvents     int
	Productivity    int
}

// ComputeStats derives counts from doc; Productivity is 0 when there are no tasks.
func ComputeStats(doc Document) Stats {
	completed := 0
	for _, t := range doc.Tasks {
		if t.Completed {
			completed++
		}
	}
	stats := Stats{
		TotalTasks:      len(doc.Tasks),
		CompletedTasks:  completed,
		TotalNotes:      len(doc.Notes),
		TotalDocuments:  len(doc.Documents),
		TotalQuickNotes: len(doc.QuickNotes),
		TotalEvents:     len(doc.Events),
	}
	if stats.TotalTasks > 0 {
		stats.Productivity = roundPercent(completed, stats.TotalTasks)
	}
	return stats
}

func roundPercent(part, whole int) int {
	return int(math.Round(float64(part) * 100 / float64(whole)))
}
