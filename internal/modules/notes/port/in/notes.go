package in

import (
	"context"

	"taskflows/internal/modules/notes/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.NoteOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.NoteOutput, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string) ([]dto.NoteOutput, error)
	Tags(ctx context.Context) ([]string, error)

	AddQuick(ctx context.Context, content string) (dto.QuickNoteOutput, error)
	DeleteQuick(ctx context.Context, id string) error
	ListQuick(ctx context.Context) ([]dto.QuickNoteOutput, error)
}
