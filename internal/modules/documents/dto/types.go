package dto

import "time"

type SaveInput struct {
	ID      string
	Title   string
	Content string
}

type DocumentOutput struct {
	ID           string
	Title        string
	Content      string
	LastModified time.Time
	Size         int
}

type ExportOutput struct {
	FileName string
	Content  string
}

type ImportInput struct {
	FileName string
	Raw      string
}
