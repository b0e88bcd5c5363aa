package in

import (
	"context"

	"taskflows/internal/modules/calendar/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.EventOutput, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]dto.EventOutput, error)
	Day(ctx context.Context, date string) ([]dto.EventOutput, error)
	Month(ctx context.Context, input dto.MonthInput) (dto.MonthOutput, error)
	Upcoming(ctx context.Context, limit int) ([]dto.EventOutput, error)
}
