package in

import (
	"context"

	"taskflows/internal/modules/store/domain"
	"taskflows/internal/modules/store/dto"
)

// Usecase is the contract every view consumes: read the whole document,
// replace it, log an activity, and query derived stats. None of these fail;
// storage problems are logged and degrade to the seeded document.
type Usecase interface {
	Read(ctx context.Context) domain.Document
	Write(ctx context.Context, doc domain.Document)
	AppendActivity(ctx context.Context, input dto.ActivityInput)
	Stats(ctx context.Context) dto.StatsOutput
	RecentActivity(ctx context.Context, limit int) []dto.ActivityOutput
	Reset(ctx context.Context)
}
