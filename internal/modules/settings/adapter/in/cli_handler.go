package in

import (
	"context"

	settingsdto "taskflows/internal/modules/settings/dto"
	settingsin "taskflows/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context) (settingsdto.ExportOutput, error) {
	return h.usecase.Export(ctx)
}

func (h CLIHandler) ClearAll(ctx context.Context) error {
	return h.usecase.ClearAll(ctx)
}
