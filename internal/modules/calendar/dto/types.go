package dto

type AddInput struct {
	Title     string
	Date      string
	Time      string
	Location  string
	Attendees []string
	Color     string
}

type EventOutput struct {
	ID        string
	Title     string
	Date      string
	Time      string
	Location  string
	Attendees []string
	Type      string
	Color     string
}

type MonthInput struct {
	Year  int
	Month int
}

type DayCell struct {
	Day    int
	Date   string
	Events []EventOutput
}

// MonthOutput is a calendar grid: Offset blank cells precede day 1 when weeks start on Sunday.
type MonthOutput struct {
	Year   int
	Month  int
	Offset int
	Days   []DayCell
}
