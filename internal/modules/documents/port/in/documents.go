package in

import (
	"context"

	"taskflows/internal/modules/documents/dto"
)

type Usecase interface {
	Create(ctx context.Context, title string) (dto.DocumentOutput, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.DocumentOutput, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.DocumentOutput, error)
	List(ctx context.Context) ([]dto.DocumentOutput, error)
	Export(ctx context.Context, id string) (dto.ExportOutput, error)
	Import(ctx context.Context, input dto.ImportInput) (dto.DocumentOutput, error)
}
