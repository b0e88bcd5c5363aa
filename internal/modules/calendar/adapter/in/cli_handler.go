package in

import (
	"context"

	caldto "taskflows/internal/modules/calendar/dto"
	calin "taskflows/internal/modules/calendar/port/in"
)

type CLIHandler struct {
	usecase calin.Usecase
}

func NewCLIHandler(usecase calin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input caldto.AddInput) (caldto.EventOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) List(ctx context.Context) ([]caldto.EventOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Day(ctx context.Context, date string) ([]caldto.EventOutput, error) {
	return h.usecase.Day(ctx, date)
}

func (h CLIHandler) Month(ctx context.Context, year, month int) (caldto.MonthOutput, error) {
	return h.usecase.Month(ctx, caldto.MonthInput{Year: year, Month: month})
}

func (h CLIHandler) Upcoming(ctx context.Context, limit int) ([]caldto.EventOutput, error) {
	return h.usecase.Upcoming(ctx, limit)
}
