package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goaldto "taskflows/internal/modules/goals/dto"
	"taskflows/internal/modules/goals/usecase"
	"taskflows/internal/modules/store/storetest"
	apperrors "taskflows/internal/platform/errors"
)

var now = time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)

func TestAddValidatesAndDefaultsDeadline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := usecase.NewInteractor(storetest.New(now), &storetest.SeqID{Prefix: "goal"})

	goal, err := uc.Add(ctx, goaldto.AddInput{Title: "Read books", Target: 12})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if goal.Current != 0 || goal.Deadline != usecase.NoDeadline || goal.Percent != 0 {
		t.Fatalf("unexpected goal %+v", goal)
	}
	goals, _ := uc.List(ctx)
	if len(goals) != 4 || goals[3].ID != goal.ID {
		t.Fatalf("expected goal appended after seeded goals, got %+v", goals)
	}
	if goals[0].Percent != 67 {
		t.Fatalf("expected seeded 4/6 to be 67%%, got %d", goals[0].Percent)
	}

	for _, input := range []goaldto.AddInput{{Title: " ", Target: 3}, {Title: "x", Target: 0}, {Title: "x", Target: -2}} {
		if _, err := uc.Add(ctx, input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", input, err)
		}
	}
}

func TestUpdateProgressClamps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := usecase.NewInteractor(storetest.New(now), &storetest.SeqID{Prefix: "goal"})
	goal, err := uc.Add(ctx, goaldto.AddInput{Title: "Ship", Target: 4})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}

	cases := []struct {
		current int
		want    int
		percent int
	}{
		{current: 3, want: 3, percent: 75},
		{current: 9, want: 4, percent: 100},
		{current: -1, want: 0, percent: 0},
	}
	for _, tc := range cases {
		updated, err := uc.UpdateProgress(ctx, goaldto.ProgressInput{ID: goal.ID, Current: tc.current})
		if err != nil {
			t.Fatalf("update progress %d: %v", tc.current, err)
		}
		if updated.Current != tc.want || updated.Percent != tc.percent {
			t.Fatalf("progress %d: got %d (%d%%), want %d (%d%%)", tc.current, updated.Current, updated.Percent, tc.want, tc.percent)
		}
	}

	goals, _ := uc.List(ctx)
	if goals[3].Current != 0 {
		t.Fatalf("expected persisted clamped value 0, got %d", goals[3].Current)
	}
	if _, err := uc.UpdateProgress(ctx, goaldto.ProgressInput{ID: "missing", Current: 1}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := usecase.NewInteractor(storetest.New(now), &storetest.SeqID{Prefix: "goal"})

	if err := uc.Delete(ctx, "2"); err != nil {
		t.Fatalf("delete seeded goal: %v", err)
	}
	goals, _ := uc.List(ctx)
	if len(goals) != 2 || goals[0].ID != "1" || goals[1].ID != "3" {
		t.Fatalf("unexpected goals after delete %+v", goals)
	}
	if err := uc.Delete(ctx, "2"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
