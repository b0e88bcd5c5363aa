package usecase

import (
	"context"
	"fmt"
	"strings"

	notedto "taskflows/internal/modules/notes/dto"
	notein "taskflows/internal/modules/notes/port/in"
	storedomain "taskflows/internal/modules/store/domain"
	storedto "taskflows/internal/modules/store/dto"
	storein "taskflows/internal/modules/store/port/in"
	"taskflows/internal/platform/clock"
	apperrors "taskflows/internal/platform/errors"
	"taskflows/internal/platform/id"
)

const quickNoteActivityTitle = "Added quick note"

type Interactor struct {
	store storein.Usecase
	clock clock.Clock
	idGen id.Generator
}

func NewInteractor(store storein.Usecase, clock clock.Clock, idGen id.Generator) notein.Usecase {
	return &Interactor{store: store, clock: clock, idGen: idGen}
}

func (i *Interactor) Create(ctx context.Context, input notedto.CreateInput) (notedto.NoteOutput, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return notedto.NoteOutput{}, fmt.Errorf("%w: note title and content are required", apperrors.ErrInvalidInput)
	}
	now := i.clock.Now()
	note := storedomain.Note{
		ID:        i.idGen.New(),
		Title:     title,
		Content:   input.Content,
		Tags:      NormalizeTags(input.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	doc := i.store.Read(ctx)
	doc.Notes = append([]storedomain.Note{note}, doc.Notes...)
	i.store.Write(ctx, doc)
	i.log(ctx, storedomain.ActivityCreated, note.Title)
	return toNoteOutput(note), nil
}

func (i *Interactor) Update(ctx context.Context, input notedto.UpdateInput) (notedto.NoteOutput, error) {
	doc := i.store.Read(ctx)
	idx := -1
	for n := range doc.Notes {
		if doc.Notes[n].ID == input.ID {
			idx = n
			break
		}
	}
	if idx < 0 {
		return notedto.NoteOutput{}, fmt.Errorf("note %q: %w", input.ID, apperrors.ErrNotFound)
	}
	note := doc.Notes[idx]
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return notedto.NoteOutput{}, fmt.Errorf("%w: note title cannot be empty", apperrors.ErrInvalidInput)
		}
		note.Title = title
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return notedto.NoteOutput{}, fmt.Errorf("%w: note content cannot be empty", apperrors.ErrInvalidInput)
		}
		note.Content = *input.Content
	}
	if input.Tags != nil {
		note.Tags = NormalizeTags(*input.Tags)
	}
	note.UpdatedAt = i.clock.Now()
	if note.UpdatedAt.Before(note.CreatedAt) {
		note.UpdatedAt = note.CreatedAt
	}
	doc.Notes[idx] = note
	i.store.Write(ctx, doc)
	i.log(ctx, storedomain.ActivityUpdated, note.Title)
	return toNoteOutput(note), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	doc := i.store.Read(ctx)
	kept := make([]storedomain.Note, 0, len(doc.Notes))
	title := ""
	for _, note := range doc.Notes {
		if note.ID == id {
			title = note.Title
			continue
		}
		kept = append(kept, note)
	}
	if len(kept) == len(doc.Notes) {
		return fmt.Errorf("note %q: %w", id, apperrors.ErrNotFound)
	}
	doc.Notes = kept
	i.store.Write(ctx, doc)
	i.log(ctx, storedomain.ActivityDeleted, title)
	return nil
}

// Search matches term case-insensitively against title, content and tags.
func (i *Interactor) Search(ctx context.Context, term string) ([]notedto.NoteOutput, error) {
	needle := strings.ToLower(strings.TrimSpace(term))
	notes := i.store.Read(ctx).Notes
	out := make([]notedto.NoteOutput, 0, len(notes))
	for _, note := range notes {
		if needle == "" || matches(note, needle) {
			out = append(out, toNoteOutput(note))
		}
	}
	return out, nil
}

func (i *Interactor) Tags(ctx context.Context) ([]string, error) {
	var all []string
	for _, note := range i.store.Read(ctx).Notes {
		all = append(all, note.Tags...)
	}
	return NormalizeTags(all), nil
}

func (i *Interactor) AddQuick(ctx context.Context, content string) (notedto.QuickNoteOutput, error) {
	if strings.TrimSpace(content) == "" {
		return notedto.QuickNoteOutput{}, fmt.Errorf("%w: quick note content is required", apperrors.ErrInvalidInput)
	}
	note := storedomain.QuickNote{ID: i.idGen.New(), Content: content, CreatedAt: i.clock.Now()}
	doc := i.store.Read(ctx)
	doc.QuickNotes = append([]storedomain.QuickNote{note}, doc.QuickNotes...)
	i.store.Write(ctx, doc)
	i.log(ctx, storedomain.ActivityCreated, quickNoteActivityTitle)
	return toQuickOutput(note), nil
}

func (i *Interactor) DeleteQuick(ctx context.Context, id string) error {
	doc := i.store.Read(ctx)
	kept := make([]storedomain.QuickNote, 0, len(doc.QuickNotes))
	for _, note := range doc.QuickNotes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	if len(kept) == len(doc.QuickNotes) {
		return fmt.Errorf("quick note %q: %w", id, apperrors.ErrNotFound)
	}
	doc.QuickNotes = kept
	i.store.Write(ctx, doc)
	return nil
}

func (i *Interactor) ListQuick(ctx context.Context) ([]notedto.QuickNoteOutput, error) {
	notes := i.store.Read(ctx).QuickNotes
	out := make([]notedto.QuickNoteOutput, 0, len(notes))
	for _, note := range notes {
		out = append(out, toQuickOutput(note))
	}
	return out, nil
}

func (i *Interactor) log(ctx context.Context, kind storedomain.ActivityType, title string) {
	i.store.AppendActivity(ctx, storedto.ActivityInput{Type: string(kind), Title: title, Timestamp: i.clock.Now()})
}

// NormalizeTags trims tags, drops empties and keeps the first occurrence of each.
func NormalizeTags(tags []string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func matches(note storedomain.Note, needle string) bool {
	if strings.Contains(strings.ToLower(note.Title), needle) || strings.Contains(strings.ToLower(note.Content), needle) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func toNoteOutput(note storedomain.Note) notedto.NoteOutput {
	return notedto.NoteOutput{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      append([]string(nil), note.Tags...),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func toQuickOutput(note storedomain.QuickNote) notedto.QuickNoteOutput {
	return notedto.QuickNoteOutput{ID: note.ID, Content: note.Content, CreatedAt: note.CreatedAt}
}
