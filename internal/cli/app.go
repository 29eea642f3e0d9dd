package cli

import (
	"fmt"

	"github.com/harun/engram/internal/config"
	"github.com/harun/engram/internal/logger"
	"github.com/harun/engram/pkg/blob"
	"github.com/harun/engram/pkg/memory"
)

// app bundles the wired-up collaborators a command needs: config, logger,
// blob backend and the memory store on top of it.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	blob    blob.Store
	store   *memory.Store
	closers []func() error
}

// newApp loads configuration and wires the storage stack. Commands that
// print to stdout pass console=false so log lines stay out of their output.
func newApp(console bool) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:     cfg.Logging.Level,
		File:      cfg.Logging.File,
		Console:   console,
		Pretty:    console,
		Redaction: cfg.Logging.Redaction,
	})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}
	a.closers = append(a.closers, log.Close)

	switch cfg.Storage.Backend {
	case "sqlite":
		s, err := blob.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		a.blob = s
		a.closers = append(a.closers, s.Close)
	default:
		s, err := blob.NewFileStore(cfg.Storage.Path)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		a.blob = s
	}

	store, err := memory.New(memory.Config{
		Blob:       a.blob,
		Context:    memory.StaticContext{Host: cfg.Context.Source, URL: cfg.Context.URL},
		Key:        cfg.Memory.BlobKey,
		MaxRecords: cfg.Memory.MaxRecords,
		Logger:     log.GetZerolog(),
	})
	if err != nil {
		a.close()
		return nil, err
	}
	a.store = store
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn().Err(err).Msg("Cleanup failed")
		}
	}
}
