package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	docdto "taskflows/internal/modules/documents/dto"
	docin "taskflows/internal/modules/documents/port/in"
	storedomain "taskflows/internal/modules/store/domain"
	storein "taskflows/internal/modules/store/port/in"
	"taskflows/internal/platform/clock"
	apperrors "taskflows/internal/platform/errors"
	"taskflows/internal/platform/id"
	"taskflows/internal/platform/markdown"
	"taskflows/internal/platform/slug"
)

const UntitledTitle = "Untitled Document"

type Interactor struct {
	store storein.Usecase
	clock clock.Clock
	idGen id.Generator
}

func NewInteractor(store storein.Usecase, clock clock.Clock, idGen id.Generator) docin.Usecase {
	return &Interactor{store: store, clock: clock, idGen: idGen}
}

func (i *Interactor) Create(ctx context.Context, title string) (docdto.DocumentOutput, error) {
	return i.insert(ctx, title, "")
}

func (i *Interactor) Save(ctx context.Context, input docdto.SaveInput) (docdto.DocumentOutput, error) {
	doc := i.store.Read(ctx)
	idx := indexOf(doc.Documents, input.ID)
	if idx < 0 {
		return docdto.DocumentOutput{}, fmt.Errorf("document %q: %w", input.ID, apperrors.ErrNotFound)
	}
	current := doc.Documents[idx]
	if title := strings.TrimSpace(input.Title); title != "" {
		current.Title = title
	}
	current.Content = input.Content
	current.LastModified = i.clock.Now()
	doc.Documents[idx] = current
	i.store.Write(ctx, doc)
	return toOutput(current), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	doc := i.store.Read(ctx)
	idx := indexOf(doc.Documents, id)
	if idx < 0 {
		return fmt.Errorf("document %q: %w", id, apperrors.ErrNotFound)
	}
	doc.Documents = append(doc.Documents[:idx:idx], doc.Documents[idx+1:]...)
	i.store.Write(ctx, doc)
	return nil
}

func (i *Interactor) Get(ctx context.Context, id string) (docdto.DocumentOutput, error) {
	doc := i.store.Read(ctx)
	idx := indexOf(doc.Documents, id)
	if idx < 0 {
		return docdto.DocumentOutput{}, fmt.Errorf("document %q: %w", id, apperrors.ErrNotFound)
	}
	return toOutput(doc.Documents[idx]), nil
}

func (i *Interactor) List(ctx context.Context) ([]docdto.DocumentOutput, error) {
	docs := i.store.Read(ctx).Documents
	out := make([]docdto.DocumentOutput, 0, len(docs))
	for _, d := range docs {
		out = append(out, toOutput(d))
	}
	return out, nil
}

// Export renders a document as markdown with a YAML frontmatter header.
func (i *Interactor) Export(ctx context.Context, id string) (docdto.ExportOutput, error) {
	d, err := i.Get(ctx, id)
	if err != nil {
		return docdto.ExportOutput{}, err
	}
	meta := map[string]any{
		"id":            d.ID,
		"title":         d.Title,
		"last_modified": d.LastModified.Format(time.RFC3339),
	}
	rendered, err := markdown.RenderFrontmatter(meta, d.Content)
	if err != nil {
		return docdto.ExportOutput{}, err
	}
	return docdto.ExportOutput{FileName: slug.Make(d.Title) + ".md", Content: rendered}, nil
}

// Import stores a markdown file as a new document. The title comes from the
// frontmatter when present, otherwise from the file name.
func (i *Interactor) Import(ctx context.Context, input docdto.ImportInput) (docdto.DocumentOutput, error) {
	meta, body, err := markdown.SplitFrontmatter(input.Raw)
	if err != nil {
		return docdto.DocumentOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	title, _ := meta["title"].(string)
	if strings.TrimSpace(title) == "" {
		base := filepath.Base(input.FileName)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return i.insert(ctx, title, body)
}

func (i *Interactor) insert(ctx context.Context, title, content string) (docdto.DocumentOutput, error) {
	title = strings.TrimSpace(title)
	if title == "" || title == "." {
		title = UntitledTitle
	}
	created := storedomain.EditorDocument{
		ID:           i.idGen.New(),
		Title:        title,
		Content:      content,
		LastModified: i.clock.Now(),
	}
	doc := i.store.Read(ctx)
	doc.Documents = append(doc.Documents, created)
	i.store.Write(ctx, doc)
	return toOutput(created), nil
}

func indexOf(docs []storedomain.EditorDocument, id string) int {
	for idx, d := range docs {
		if d.ID == id {
			return idx
		}
	}
	return -1
}

func toOutput(d storedomain.EditorDocument) docdto.DocumentOutput {
	return docdto.DocumentOutput{
		ID:           d.ID,
		Title:        d.Title,
		Content:      d.Content,
		LastModified: d.LastModified,
		Size:         len(d.Content),
	}
}
