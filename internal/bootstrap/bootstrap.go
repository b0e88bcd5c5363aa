package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	calinadapter "taskflows/internal/modules/calendar/adapter/in"
	calusecase "taskflows/internal/modules/calendar/usecase"
	docinadapter "taskflows/internal/modules/documents/adapter/in"
	docusecase "taskflows/internal/modules/documents/usecase"
	goalinadapter "taskflows/internal/modules/goals/adapter/in"
	goalusecase "taskflows/internal/modules/goals/usecase"
	noteinadapter "taskflows/internal/modules/notes/adapter/in"
	noteusecase "taskflows/internal/modules/notes/usecase"
	settingsinadapter "taskflows/internal/modules/settings/adapter/in"
	settingsusecase "taskflows/internal/modules/settings/usecase"
	storeinadapter "taskflows/internal/modules/store/adapter/in"
	storeoutadapter "taskflows/internal/modules/store/adapter/out"
	storeout "taskflows/internal/modules/store/port/out"
	storeservice "taskflows/internal/modules/store/service"
	storeusecase "taskflows/internal/modules/store/usecase"
	taskinadapter "taskflows/internal/modules/tasks/adapter/in"
	taskusecase "taskflows/internal/modules/tasks/usecase"
	"taskflows/internal/platform/clock"
	"taskflows/internal/platform/config"
	"taskflows/internal/platform/id"
	"taskflows/internal/platform/logging"
	uiapp "taskflows/internal/ui/app"
)

type App struct {
	StoreCLI    storeinadapter.CLIHandler
	TaskCLI     taskinadapter.CLIHandler
	NoteCLI     noteinadapter.CLIHandler
	DocumentCLI docinadapter.CLIHandler
	CalendarCLI calinadapter.CLIHandler
	GoalCLI     goalinadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler

	logger *zap.Logger
	closer func() error
}

func New(cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}

	kv, closer, err := newKeyValueStore(cfg, clk)
	if err != nil {
		return nil, err
	}
	logger.Debug("store backend ready", zap.String("backend", cfg.Backend), zap.String("data_dir", cfg.DataDir))

	storeUC := storeusecase.NewInteractor(storeservice.NewStoreService(clk, ids, kv, cfg.StorageKey, logger))

	return &App{
		StoreCLI:    storeinadapter.NewCLIHandler(storeUC),
		TaskCLI:     taskinadapter.NewCLIHandler(taskusecase.NewInteractor(storeUC, clk, ids)),
		NoteCLI:     noteinadapter.NewCLIHandler(noteusecase.NewInteractor(storeUC, clk, ids)),
		DocumentCLI: docinadapter.NewCLIHandler(docusecase.NewInteractor(storeUC, clk, ids)),
		CalendarCLI: calinadapter.NewCLIHandler(calusecase.NewInteractor(storeUC, clk, ids)),
		GoalCLI:     goalinadapter.NewCLIHandler(goalusecase.NewInteractor(storeUC, ids)),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsusecase.NewInteractor(storeUC, clk)),
		logger:      logger,
		closer:      closer,
	}, nil
}

func newKeyValueStore(cfg config.Config, clk clock.Clock) (storeout.KeyValueStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case config.BackendMemory:
		return storeoutadapter.NewMemoryKeyValueStore(), noop, nil
	case config.BackendSQLite:
		kv, err := storeoutadapter.NewSQLiteKeyValueStore(cfg.DBPath, clk)
		if err != nil {
			return nil, nil, fmt.Errorf("new sqlite store: %w", err)
		}
		return kv, kv.Close, nil
	case config.BackendFile:
		kv, err := storeoutadapter.NewFileKeyValueStore(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("new file store: %w", err)
		}
		return kv, noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// Close releases the backend and flushes the logger.
func (a *App) Close() error {
	err := a.closer()
	_ = a.logger.Sync()
	return err
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(uiapp.Ports{
		Store:    app.StoreCLI,
		Tasks:    app.TaskCLI,
		Quick:    app.NoteCLI,
		Goals:    app.GoalCLI,
		Calendar: app.CalendarCLI,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
