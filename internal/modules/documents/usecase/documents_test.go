package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	docdto "taskflows/internal/modules/documents/dto"
	"taskflows/internal/modules/documents/usecase"
	"taskflows/internal/modules/store/storetest"
	"taskflows/internal/platform/clock"
	apperrors "taskflows/internal/platform/errors"
)

var now = time.Date(2026, 6, 15, 14, 0, 0, 0, time.UTC)

func TestCreateSaveDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storetest.New(now)
	uc := usecase.NewInteractor(store, clock.Fixed{At: now}, &storetest.SeqID{Prefix: "doc"})

	untitled, err := uc.Create(ctx, "  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if untitled.Title != usecase.UntitledTitle || untitled.Content != "" {
		t.Fatalf("expected untitled empty document, got %+v", untitled)
	}
	second, err := uc.Create(ctx, "Meeting minutes")
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	saved, err := uc.Save(ctx, docdto.SaveInput{ID: untitled.ID, Title: "Plan", Content: "<h1>Plan</h1>"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Title != "Plan" || saved.Size != len("<h1>Plan</h1>") {
		t.Fatalf("unexpected saved document %+v", saved)
	}
	kept, err := uc.Save(ctx, docdto.SaveInput{ID: second.ID, Content: "notes"})
	if err != nil {
		t.Fatalf("save keeping title: %v", err)
	}
	if kept.Title != "Meeting minutes" {
		t.Fatalf("expected blank title to keep the old one, got %q", kept.Title)
	}

	list, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != untitled.ID {
		t.Fatalf("expected documents in creation order, got %+v", list)
	}
	if err := uc.Delete(ctx, untitled.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, untitled.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected deleted document to be gone, got %v", err)
	}
	if _, err := uc.Save(ctx, docdto.SaveInput{ID: "missing"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found on save, got %v", err)
	}
	if store.Stats(ctx).TotalDocuments != 1 {
		t.Fatalf("expected one document left")
	}
}

func TestExportThenImportRoundTripsTitleAndBody(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := usecase.NewInteractor(storetest.New(now), clock.Fixed{At: now}, &storetest.SeqID{Prefix: "doc"})

	created, err := uc.Create(ctx, "Quarterly Review: Q2")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.Save(ctx, docdto.SaveInput{ID: created.ID, Content: "## Wins\n\n- shipped\n"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	exported, err := uc.Export(ctx, created.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if exported.FileName != "quarterly-review-q2.md" {
		t.Fatalf("unexpected file name %q", exported.FileName)
	}
	if !strings.HasPrefix(exported.Content, "---\n") || !strings.Contains(exported.Content, "Quarterly Review: Q2") {
		t.Fatalf("expected frontmatter header, got %q", exported.Content)
	}

	imported, err := uc.Import(ctx, docdto.ImportInput{FileName: "ignored.md", Raw: exported.Content})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported.Title != "Quarterly Review: Q2" || imported.Content != "## Wins\n\n- shipped\n" {
		t.Fatalf("unexpected imported document %+v", imported)
	}
}

func TestImportWithoutFrontmatterUsesFileName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := usecase.NewInteractor(storetest.New(now), clock.Fixed{At: now}, &storetest.SeqID{Prefix: "doc"})

	imported, err := uc.Import(ctx, docdto.ImportInput{FileName: "/tmp/drafts/ideas.md", Raw: "plain body"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported.Title != "ideas" || imported.Content != "plain body" {
		t.Fatalf("unexpected imported document %+v", imported)
	}
	if _, err := uc.Import(ctx, docdto.ImportInput{FileName: "x.md", Raw: "---\ntitle: x\nno closing"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for broken frontmatter, got %v", err)
	}
}
