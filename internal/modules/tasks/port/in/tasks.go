package in

import (
	"context"

	"taskflows/internal/modules/tasks/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.TaskOutput, error)
	Toggle(ctx context.Context, id string) (dto.TaskOutput, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, input dto.ListInput) ([]dto.TaskOutput, error)
	Breakdown(ctx context.Context) (dto.BreakdownOutput, error)
}
