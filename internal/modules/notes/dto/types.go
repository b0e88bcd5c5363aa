package dto

import "time"

type CreateInput struct {
	Title   string
	Content string
	Tags    []string
}

// UpdateInput changes only the fields that are non-nil.
type UpdateInput struct {
	ID      string
	Title   *string
	Content *string
	Tags    *[]string
}

type NoteOutput struct {
	ID        string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type QuickNoteOutput struct {
	ID        string
	Content   string
	CreatedAt time.Time
}
