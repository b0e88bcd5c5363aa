package dto

import "time"

type AddInput struct {
	Title    string
	Priority string
	Category string
	DueDate  string
}

type TaskOutput struct {
	ID        string
	Title     string
	Completed bool
	Priority  string
	Category  string
	DueDate   string
	CreatedAt time.Time
}

type ListInput struct {
	Filter string
}

type BreakdownOutput struct {
	Total      int
	Completed  int
	Pending    int
	ByPriority map[string]int
	ByCategory map[string]int
}
