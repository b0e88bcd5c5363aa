package usecase

import (
	"context"
	"fmt"
	"strings"

	goaldto "taskflows/internal/modules/goals/dto"
	goalin "taskflows/internal/modules/goals/port/in"
	storedomain "taskflows/internal/modules/store/domain"
	storein "taskflows/internal/modules/store/port/in"
	apperrors "taskflows/internal/platform/errors"
	"taskflows/internal/platform/id"
)

const NoDeadline = "No deadline"

type Interactor struct {
	store storein.Usecase
	idGen id.Generator
}

func NewInteractor(store storein.Usecase, idGen id.Generator) goalin.Usecase {
	return &Interactor{store: store, idGen: idGen}
}

func (i *Interactor) Add(ctx context.Context, input goaldto.AddInput) (goaldto.GoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return goaldto.GoalOutput{}, fmt.Errorf("%w: goal title is required", apperrors.ErrInvalidInput)
	}
	if input.Target < 1 {
		return goaldto.GoalOutput{}, fmt.Errorf("%w: goal target must be at least 1", apperrors.ErrInvalidInput)
	}
	deadline := strings.TrimSpace(input.Deadline)
	if deadline == "" {
		deadline = NoDeadline
	}
	goal := storedomain.Goal{ID: i.idGen.New(), Title: title, Target: input.Target, Deadline: deadline}
	doc := i.store.Read(ctx)
	doc.Goals = append(doc.Goals, goal)
	i.store.Write(ctx, doc)
	return toOutput(goal), nil
}

// UpdateProgress stores current clamped to [0, target].
func (i *Interactor) UpdateProgress(ctx context.Context, input goaldto.ProgressInput) (goaldto.GoalOutput, error) {
	doc := i.store.Read(ctx)
	for idx := range doc.Goals {
		if doc.Goals[idx].ID != input.ID {
			continue
		}
		doc.Goals[idx].Current = doc.Goals[idx].ClampProgress(input.Current)
		i.store.Write(ctx, doc)
		return toOutput(doc.Goals[idx]), nil
	}
	return goaldto.GoalOutput{}, fmt.Errorf("goal %q: %w", input.ID, apperrors.ErrNotFound)
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	doc := i.store.Read(ctx)
	kept := make([]storedomain.Goal, 0, len(doc.Goals))
	for _, goal := range doc.Goals {
		if goal.ID != id {
			kept = append(kept, goal)
		}
	}
	if len(kept) == len(doc.Goals) {
		return fmt.Errorf("goal %q: %w", id, apperrors.ErrNotFound)
	}
	doc.Goals = kept
	i.store.Write(ctx, doc)
	return nil
}

func (i *Interactor) List(ctx context.Context) ([]goaldto.GoalOutput, error) {
	goals := i.store.Read(ctx).Goals
	out := make([]goaldto.GoalOutput, 0, len(goals))
	for _, goal := range goals {
		out = append(out, toOutput(goal))
	}
	return out, nil
}

func toOutput(goal storedomain.Goal) goaldto.GoalOutput {
	return goaldto.GoalOutput{
		ID:       goal.ID,
		Title:    goal.Title,
		Current:  goal.Current,
		Target:   goal.Target,
		Deadline: goal.Deadline,
		Percent:  goal.Percent(),
	}
}
