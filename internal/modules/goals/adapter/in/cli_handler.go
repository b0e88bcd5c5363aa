package in

import (
	"context"

	goaldto "taskflows/internal/modules/goals/dto"
	goalin "taskflows/internal/modules/goals/port/in"
)

type CLIHandler struct {
	usecase goalin.Usecase
}

func NewCLIHandler(usecase goalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, title string, target int, deadline string) (goaldto.GoalOutput, error) {
	return h.usecase.Add(ctx, goaldto.AddInput{Title: title, Target: target, Deadline: deadline})
}

func (h CLIHandler) Progress(ctx context.Context, id string, current int) (goaldto.GoalOutput, error) {
	return h.usecase.UpdateProgress(ctx, goaldto.ProgressInput{ID: id, Current: current})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) List(ctx context.Context) ([]goaldto.GoalOutput, error) {
	return h.usecase.List(ctx)
}
