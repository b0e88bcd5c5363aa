package in

import (
	"context"

	"taskflows/internal/modules/settings/dto"
)

type Usecase interface {
	Export(ctx context.Context) (dto.ExportOutput, error)
	ClearAll(ctx context.Context) error
}
