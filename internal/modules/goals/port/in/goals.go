package in

import (
	"context"

	"taskflows/internal/modules/goals/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.GoalOutput, error)
	UpdateProgress(ctx context.Context, input dto.ProgressInput) (dto.GoalOutput, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]dto.GoalOutput, error)
}
