package in

import (
	"context"

	taskdto "taskflows/internal/modules/tasks/dto"
	taskin "taskflows/internal/modules/tasks/port/in"
)

type CLIHandler struct {
	usecase taskin.Usecase
}

func NewCLIHandler(usecase taskin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, title, priority, category, dueDate string) (taskdto.TaskOutput, error) {
	return h.usecase.Add(ctx, taskdto.AddInput{Title: title, Priority: priority, Category: category, DueDate: dueDate})
}

func (h CLIHandler) Toggle(ctx context.Context, id string) (taskdto.TaskOutput, error) {
	return h.usecase.Toggle(ctx, id)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) List(ctx context.Context, filter string) ([]taskdto.TaskOutput, error) {
	return h.usecase.List(ctx, taskdto.ListInput{Filter: filter})
}

func (h CLIHandler) Breakdown(ctx context.Context) (taskdto.BreakdownOutput, error) {
	return h.usecase.Breakdown(ctx)
}
