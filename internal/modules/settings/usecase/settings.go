package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	settingsdto "taskflows/internal/modules/settings/dto"
	settingsin "taskflows/internal/modules/settings/port/in"
	storedomain "taskflows/internal/modules/store/domain"
	storein "taskflows/internal/modules/store/port/in"
	"taskflows/internal/platform/clock"
)

const (
	ExportFileName = "taskflows-data.json"
	ExportVersion  = "1.0"
)

type snapshot struct {
	Data       storedomain.Document `json:"data"`
	ExportDate time.Time            `json:"exportDate"`
	Version    string               `json:"version"`
}

type Interactor struct {
	store storein.Usecase
	clock clock.Clock
}

func NewInteractor(store storein.Usecase, clock clock.Clock) settingsin.Usecase {
	return &Interactor{store: store, clock: clock}
}

func (i *Interactor) Export(ctx context.Context) (settingsdto.ExportOutput, error) {
	snap := snapshot{
		Data:       i.store.Read(ctx).Normalize(),
		ExportDate: i.clock.Now(),
		Version:    ExportVersion,
	}
	content, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return settingsdto.ExportOutput{}, fmt.Errorf("marshal export: %w", err)
	}
	return settingsdto.ExportOutput{FileName: ExportFileName, Content: content, Size: len(content)}, nil
}

// ClearAll replaces every collection with the seeded defaults.
func (i *Interactor) ClearAll(ctx context.Context) error {
	i.store.Reset(ctx)
	return nil
}
