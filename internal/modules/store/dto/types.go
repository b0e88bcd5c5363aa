package dto

import "time"

type ActivityInput struct {
	Type      string
	Title     string
	Timestamp time.Time
}

type ActivityOutput struct {
	ID        string
	Type      string
	Title     string
	Timestamp time.Time
}

type StatsOutput struct {
	TotalTasks      int
	CompletedTasks  int
	TotalNotes      int
	TotalDocuments  int
	TotalQuickNotes int
	TotalEvents     int
	Productivity    int
}
