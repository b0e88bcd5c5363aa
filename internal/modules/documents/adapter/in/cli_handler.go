package in

import (
	"context"

	docdto "taskflows/internal/modules/documents/dto"
	docin "taskflows/internal/modules/documents/port/in"
)

type CLIHandler struct {
	usecase docin.Usecase
}

func NewCLIHandler(usecase docin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, title string) (docdto.DocumentOutput, error) {
	return h.usecase.Create(ctx, title)
}

func (h CLIHandler) Save(ctx context.Context, id, title, content string) (docdto.DocumentOutput, error) {
	return h.usecase.Save(ctx, docdto.SaveInput{ID: id, Title: title, Content: content})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Get(ctx context.Context, id string) (docdto.DocumentOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) List(ctx context.Context) ([]docdto.DocumentOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Export(ctx context.Context, id string) (docdto.ExportOutput, error) {
	return h.usecase.Export(ctx, id)
}

func (h CLIHandler) Import(ctx context.Context, fileName, raw string) (docdto.DocumentOutput, error) {
	return h.usecase.Import(ctx, docdto.ImportInput{FileName: fileName, Raw: raw})
}
