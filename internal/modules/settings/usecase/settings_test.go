package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"taskflows/internal/modules/settings/usecase"
	storedomain "taskflows/internal/modules/store/domain"
	storedto "taskflows/internal/modules/store/dto"
	"taskflows/internal/modules/store/storetest"
	"taskflows/internal/platform/clock"
)

var now = time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)

func TestExportShape(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storetest.New(now)
	store.AppendActivity(ctx, storedto.ActivityInput{Type: "created", Title: "Created task: A"})
	uc := usecase.NewInteractor(store, clock.Fixed{At: now})

	out, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.FileName != "taskflows-data.json" || out.Size != len(out.Content) {
		t.Fatalf("unexpected export metadata %+v", out)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(out.Content, &raw); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if len(raw) != 3 {
		t.Fatalf("expected data, exportDate and version keys, got %d", len(raw))
	}
	var version string
	if err := json.Unmarshal(raw["version"], &version); err != nil || version != "1.0" {
		t.Fatalf("unexpected version %s err=%v", raw["version"], err)
	}
	var exportDate time.Time
	if err := json.Unmarshal(raw["exportDate"], &exportDate); err != nil || !exportDate.Equal(now) {
		t.Fatalf("unexpected exportDate %s err=%v", raw["exportDate"], err)
	}
	var data storedomain.Document
	if err := json.Unmarshal(raw["data"], &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(data.Events) != 2 || len(data.Goals) != 3 || len(data.ActivityLog) != 1 || data.Tasks == nil {
		t.Fatalf("unexpected exported data %+v", data)
	}
	if out.Content[0] != '{' || out.Content[1] != '\n' {
		t.Fatalf("expected indented json, got %q", out.Content[:2])
	}
}

func TestClearAllRestoresDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storetest.New(now)
	doc := store.Read(ctx)
	doc.Goals = nil
	doc.Tasks = []storedomain.Task{{ID: "t1", Title: "A", Priority: storedomain.PriorityLow}}
	store.Write(ctx, doc)

	if err := usecase.NewInteractor(store, clock.Fixed{At: now}).ClearAll(ctx); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	after := store.Read(ctx)
	if len(after.Tasks) != 0 || len(after.Goals) != 3 || len(after.Events) != 2 {
		t.Fatalf("expected defaults after clear, got %+v", after)
	}
}
