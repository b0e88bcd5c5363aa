package domain

import (
	"fmt"
	"time"
)

const (
	// MaxActivityEntries bounds the activity log; older entries are evicted.
	MaxActivityEntries = 50
	DateLayout         = "2006-01-02"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("unsupported priority %q", string(p))
	}
}

type ActivityType string

const (
	ActivityCreated     ActivityType = "created"
	ActivityUpdated     ActivityType = "updated"
	ActivityCompleted   ActivityType = "completed"
	ActivityUncompleted ActivityType = "uncompleted"
	ActivityDeleted     ActivityType = "deleted"
)

type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Priority  Priority  `json:"priority"`
	Category  string    `json:"category"`
	DueDate   string    `json:"dueDate,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type QuickNote struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// EditorDocument is a rich-text document; Content is opaque markup.
type EditorDocument struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"lastModified"`
}

type Event struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Location  string   `json:"location,omitempty"`
	Attendees []string `json:"attendees"`
	Type      string   `json:"type,omitempty"`
	Color     string   `json:"color,omitempty"`
}

type Goal struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Current  int    `json:"current"`
	Target   int    `json:"target"`
	Deadline string `json:"deadline"`
}

// ClampProgress bounds current to [0, Target].
func (g Goal) ClampProgress(current int) int {
	if current < 0 {
		return 0
	}
	if current > g.Target {
		return g.Target
	}
	return current
}

func (g Goal) Percent() int {
	if g.Target <= 0 {
		return 0
	}
	return roundPercent(g.Current, g.Target)
}

type ActivityEntry struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Title     string       `json:"title"`
	Timestamp time.Time    `json:"timestamp"`
}

// Document is the single persisted record every view reads and replaces.
type Document struct {
	Tasks       []Task           `json:"tasks"`
	Notes       []Note           `json:"notes"`
	Documents   []EditorDocument `json:"documents"`
	QuickNotes  []QuickNote      `json:"quickNotes"`
	Events      []Event          `json:"events"`
	Goals       []Goal           `json:"goals"`
	ActivityLog []ActivityEntry  `json:"activityLog"`
}

// Normalize replaces nil collections with empty ones so every key is persisted.
func (d Document) Normalize() Document {
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
	if d.Notes == nil {
		d.Notes = []Note{}
	}
	if d.Documents == nil {
		d.Documents = []EditorDocument{}
	}
	if d.QuickNotes == nil {
		d.QuickNotes = []QuickNote{}
	}
	if d.Events == nil {
		d.Events = []Event{}
	}
	if d.Goals == nil {
		d.Goals = []Goal{}
	}
	if d.ActivityLog == nil {
		d.ActivityLog = []ActivityEntry{}
	}
	return d
}

// PrependActivity puts entry first and evicts everything past MaxActivityEntries.
func (d *Document) PrependActivity(entry ActivityEntry) {
	log := make([]ActivityEntry, 0, min(len(d.ActivityLog)+1, MaxActivityEntries))
	log = append(log, entry)
	for _, existing := range d.ActivityLog {
		if len(log) == MaxActivityEntries {
			break
		}
		log = append(log, existing)
	}
	d.ActivityLog = log
}

// DefaultDocument is the seeded document used when storage is empty or unreadable.
func DefaultDocument(now time.Time) Document {
	return Document{
		Tasks:       []Task{},
		Notes:       []Note{},
		Documents:   []EditorDocument{},
		QuickNotes:  []QuickNote{},
		Events:      DefaultEvents(now),
		Goals:       DefaultGoals(),
		ActivityLog: []ActivityEntry{},
	}
}

func DefaultEvents(now time.Time) []Event {
	return []Event{
		{ID: "1", Title: "Team Standup", Date: now.Format(DateLayout), Time: "10:00 AM", Type: "meeting"},
		{ID: "2", Title: "Client Review", Date: now.Add(24 * time.Hour).Format(DateLayout), Time: "2:00 PM", Type: "meeting"},
	}
}

func DefaultGoals() []Goal {
	return []Goal{
		{ID: "1", Title: "Complete project tasks", Current: 4, Target: 6, Deadline: "Today"},
		{ID: "2", Title: "Review documents", Current: 2, Target: 3, Deadline: "Today"},
		{ID: "3", Title: "Team meetings", Current: 1, Target: 2, Deadline: "Today"},
	}
}
