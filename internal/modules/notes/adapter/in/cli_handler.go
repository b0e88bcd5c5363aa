package in

import (
	"context"
	"strings"

	notedto "taskflows/internal/modules/notes/dto"
	notein "taskflows/internal/modules/notes/port/in"
)

type CLIHandler struct {
	usecase notein.Usecase
}

func NewCLIHandler(usecase notein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, title, content string, tags []string) (notedto.NoteOutput, error) {
	return h.usecase.Create(ctx, notedto.CreateInput{Title: title, Content: content, Tags: tags})
}

// Update treats empty title or content as "unchanged"; tags are replaced only when setTags is true.
func (h CLIHandler) Update(ctx context.Context, id, title, content string, tags []string, setTags bool) (notedto.NoteOutput, error) {
	input := notedto.UpdateInput{ID: id}
	if strings.TrimSpace(title) != "" {
		input.Title = &title
	}
	if strings.TrimSpace(content) != "" {
		input.Content = &content
	}
	if setTags {
		input.Tags = &tags
	}
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Search(ctx context.Context, term string) ([]notedto.NoteOutput, error) {
	return h.usecase.Search(ctx, term)
}

func (h CLIHandler) Tags(ctx context.Context) ([]string, error) {
	return h.usecase.Tags(ctx)
}

func (h CLIHandler) AddQuick(ctx context.Context, content string) (notedto.QuickNoteOutput, error) {
	return h.usecase.AddQuick(ctx, content)
}

func (h CLIHandler) DeleteQuick(ctx context.Context, id string) error {
	return h.usecase.DeleteQuick(ctx, id)
}

func (h CLIHandler) ListQuick(ctx context.Context) ([]notedto.QuickNoteOutput, error) {
	return h.usecase.ListQuick(ctx)
}
