// Package wire provides dependency injection for the gridboard application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/gridboard/internal/adapters/cli"
	"github.com/example/gridboard/internal/adapters/filesystem"
	"github.com/example/gridboard/internal/adapters/identity"
	logadapter "github.com/example/gridboard/internal/adapters/logging"
	"github.com/example/gridboard/internal/adapters/sqlite"
	"github.com/example/gridboard/internal/app"
	"github.com/example/gridboard/internal/config"
	"github.com/example/gridboard/internal/db"
	"github.com/example/gridboard/internal/logging"
	"github.com/example/gridboard/internal/ports/primary"
	"github.com/example/gridboard/internal/ports/secondary"
)

// Options are set by the CLI root before the first service is requested.
type Options struct {
	ConfigDir string // defaults to ~/.gridboard
	Verbose   bool
}

var (
	opts Options

	cfg             *config.Config
	logger          *zap.Logger
	boardService    primary.BoardService
	transferService primary.TransferService
	activityService primary.ActivityService // nil for the file backend
	exportFiles     *filesystem.ExportFiles
	initErr         error
	once            sync.Once
)

// Configure sets the options used by Init. Calls after Init have no effect.
func Configure(o Options) {
	opts = o
}

// Init initializes all services and returns the first error encountered.
func Init() error {
	once.Do(initServices)
	return initErr
}

// Config returns the loaded configuration.
func Config() *config.Config {
	mustInit()
	return cfg
}

// Logger returns the process logger.
func Logger() *zap.Logger {
	mustInit()
	return logger
}

// BoardService returns the singleton BoardService instance.
func BoardService() primary.BoardService {
	mustInit()
	return boardService
}

// TransferService returns the singleton TransferService instance.
func TransferService() primary.TransferService {
	mustInit()
	return transferService
}

// ActivityService returns the singleton ActivityService instance.
// It returns nil when the storage backend keeps no activity table.
func ActivityService() primary.ActivityService {
	mustInit()
	return activityService
}

// Shutdown flushes the logger and closes the database.
func Shutdown() {
	if logger != nil {
		_ = logger.Sync()
	}
	_ = db.Close()
}

func mustInit() {
	if err := Init(); err != nil {
		fmt.Fprintf(os.Stderr, "gridboard: %v\n", err)
		os.Exit(1)
	}
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	initErr = buildServices(context.Background())
}

func buildServices(ctx context.Context) error {
	dir := opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = config.DefaultDir(); err != nil {
			return err
		}
	}

	var err error
	cfg, err = config.LoadConfig(dir)
	if err != nil {
		return err
	}

	logger, err = logging.New(cfg.Logging.Level, opts.Verbose)
	if err != nil {
		return err
	}

	// Create the persistence port and audit writer for the configured backend
	var (
		store     secondary.StateStore
		logWriter secondary.LogWriter
	)
	switch cfg.Storage.Backend {
	case config.BackendFile:
		store, err = filesystem.NewStateFile(cfg.Storage.DataDir)
		if err != nil {
			return err
		}
		logWriter = logadapter.NewLogWriterAdapter(logger)
	default:
		db.SetDataDir(cfg.Storage.DataDir)
		database, err := db.GetDB()
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		activityRepo := sqlite.NewActivityRepository(database)
		store = sqlite.NewStateRepository(database)
		logWriter = sqlite.NewLogWriterAdapter(activityRepo)
		activityService = app.NewActivityService(activityRepo)
	}
	logger.Debug("storage ready",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("data_dir", cfg.Storage.DataDir),
		zap.String("key", cfg.Storage.Key))

	// Create effect executor with injected adapters
	executor := app.NewEffectExecutor(store, cfg.Storage.Key, logWriter, logger)

	// Create services (primary ports implementation)
	board, err := app.NewBoardService(ctx, store, cfg.Storage.Key, identity.NewUUIDGenerator(), executor, logger)
	if err != nil {
		return err
	}
	boardService = board
	transferService = app.NewTransferService(board, store, cfg.Storage.Key, app.SystemClock{}, logger)
	exportFiles = filesystem.NewExportFiles(cfg.Export.Dir)
	return nil
}

// BoardAdapter returns a new BoardAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func BoardAdapter() *cliadapter.BoardAdapter {
	return BoardAdapterWithOutput(os.Stdout)
}

// BoardAdapterWithOutput returns a new BoardAdapter writing to the given output.
func BoardAdapterWithOutput(out io.Writer) *cliadapter.BoardAdapter {
	mustInit()
	return cliadapter.NewBoardAdapter(boardService, out)
}

// TransferAdapter returns a new TransferAdapter writing to stdout.
func TransferAdapter() *cliadapter.TransferAdapter {
	return TransferAdapterWithOutput(os.Stdout)
}

// TransferAdapterWithOutput returns a new TransferAdapter writing to the given output.
func TransferAdapterWithOutput(out io.Writer) *cliadapter.TransferAdapter {
	mustInit()
	return cliadapter.NewTransferAdapter(transferService, exportFiles, out)
}

// TransferAdapterForDir returns a TransferAdapter exporting into dir instead of the configured export dir.
func TransferAdapterForDir(dir string) *cliadapter.TransferAdapter {
	mustInit()
	if dir == "" {
		return cliadapter.NewTransferAdapter(transferService, exportFiles, os.Stdout)
	}
	return cliadapter.NewTransferAdapter(transferService, filesystem.NewExportFiles(dir), os.Stdout)
}

// ActivityAdapter returns a new ActivityAdapter writing to stdout, or nil
// when the storage backend keeps no activity table.
func ActivityAdapter() *cliadapter.ActivityAdapter {
	mustInit()
	if activityService == nil {
		return nil
	}
	return cliadapter.NewActivityAdapter(activityService, os.Stdout)
}
