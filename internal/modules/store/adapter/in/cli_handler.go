package in

import (
	"context"

	storedto "taskflows/internal/modules/store/dto"
	storein "taskflows/internal/modules/store/port/in"
)

type CLIHandler struct {
	usecase storein.Usecase
}

func NewCLIHandler(usecase storein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Stats(ctx context.Context) storedto.StatsOutput {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) RecentActivity(ctx context.Context, limit int) []storedto.ActivityOutput {
	return h.usecase.RecentActivity(ctx, limit)
}
