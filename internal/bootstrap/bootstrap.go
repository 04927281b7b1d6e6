package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	economyinadapter "chorely/internal/modules/economy/adapter/in"
	economyoutadapter "chorely/internal/modules/economy/adapter/out"
	economyout "chorely/internal/modules/economy/port/out"
	economyservice "chorely/internal/modules/economy/service"
	economyusecase "chorely/internal/modules/economy/usecase"
	reportinadapter "chorely/internal/modules/report/adapter/in"
	reportoutadapter "chorely/internal/modules/report/adapter/out"
	reportusecase "chorely/internal/modules/report/usecase"
	timerinadapter "chorely/internal/modules/timer/adapter/in"
	timeroutadapter "chorely/internal/modules/timer/adapter/out"
	timerservice "chorely/internal/modules/timer/service"
	timerusecase "chorely/internal/modules/timer/usecase"
	"chorely/internal/platform/clock"
	"chorely/internal/platform/config"
	"chorely/internal/platform/id"
	"chorely/internal/platform/logging"
	"chorely/internal/platform/tx"
	uiapp "chorely/internal/ui/app"
)

type App struct {
	Config     config.Config
	Logger     *slog.Logger
	EconomyCLI economyinadapter.CLIHandler
	TimerCLI   timerinadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler

	closers []io.Closer
}

// New wires every module against the configured store. logOut receives log
// lines; pass nil to drop them.
func New(cfg config.Config, logOut io.Writer) (*App, error) {
	logger := logging.Discard()
	if logOut != nil {
		logger = logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	}
	clk := clock.SystemClock{Location: cfg.Location}
	ids := id.UUID{}

	store, txm, closers, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", "kind", cfg.Store, "data_dir", cfg.DataDir)

	ledger := economyservice.NewLedger(clk, ids, store, txm, logger.With("module", "economy"), cfg.Location)
	economyUC := economyusecase.NewInteractor(ledger)

	timerUC := timerusecase.NewInteractor(
		timerservice.NewTimerService(clk, ids),
		economyUC,
		timeroutadapter.NewFileActiveTimerStore(cfg.TimerPath),
	)

	reportUC := reportusecase.NewInteractor(economyUC, reportoutadapter.NewMarkdownJournal(), clk, cfg.Location)

	return &App{
		Config:     cfg,
		Logger:     logger,
		EconomyCLI: economyinadapter.NewCLIHandler(economyUC),
		TimerCLI:   timerinadapter.NewCLIHandler(timerUC),
		ReportCLI:  reportinadapter.NewCLIHandler(reportUC),
		closers:    closers,
	}, nil
}

func openStore(cfg config.Config) (economyout.KeyValueStore, tx.Manager, []io.Closer, error) {
	switch cfg.Store {
	case config.StoreFile:
		return economyoutadapter.NewFileStore(cfg.StateDir), tx.NoopManager{}, nil, nil
	case config.StoreSQLite, "":
		db, err := economyoutadapter.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("new sqlite store: %w", err)
		}
		return db, db, []io.Closer{db}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported store %q", cfg.Store)
	}
}

// Close releases the store.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.EconomyCLI, app.TimerCLI, app.ReportCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
