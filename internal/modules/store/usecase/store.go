package usecase

import (
	"context"
	"strings"

	"taskflows/internal/modules/store/domain"
	storedto "taskflows/internal/modules/store/dto"
	storein "taskflows/internal/modules/store/port/in"
	"taskflows/internal/modules/store/service"
)

type Interactor struct {
	svc *service.StoreService
}

func NewInteractor(svc *service.StoreService) storein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Read(ctx context.Context) domain.Document {
	return i.svc.Read(ctx)
}

func (i *Interactor) Write(ctx context.Context, doc domain.Document) {
	i.svc.Write(ctx, doc)
}

func (i *Interactor) AppendActivity(ctx context.Context, input storedto.ActivityInput) {
	i.svc.AppendActivity(ctx, domain.ActivityEntry{
		Type:      domain.ActivityType(strings.TrimSpace(input.Type)),
		Title:     input.Title,
		Timestamp: input.Timestamp,
	})
}

func (i *Interactor) Stats(ctx context.Context) storedto.StatsOutput {
	stats := i.svc.Stats(ctx)
	return storedto.StatsOutput{
		TotalTasks:      stats.TotalTasks,
		CompletedTasks:  stats.CompletedTasks,
		TotalNotes:      stats.TotalNotes,
		TotalDocuments:  stats.TotalDocuments,
		TotalQuickNotes: stats.TotalQuickNotes,
		TotalEvents:     stats.TotalEvents,
		Productivity:    stats.Productivity,
	}
}

func (i *Interactor) RecentActivity(ctx context.Context, limit int) []storedto.ActivityOutput {
	log := i.svc.Read(ctx).ActivityLog
	if limit > 0 && len(log) > limit {
		log = log[:limit]
	}
	out := make([]storedto.ActivityOutput, 0, len(log))
	for _, entry := range log {
		out = append(out, storedto.ActivityOutput{
			ID:        entry.ID,
			Type:      string(entry.Type),
			Title:     entry.Title,
			Timestamp: entry.Timestamp,
		})
	}
	return out
}

func (i *Interactor) Reset(ctx context.Context) {
	i.svc.Reset(ctx)
}
