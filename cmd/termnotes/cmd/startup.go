package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"termnotes/internal/adapters/filesystem"
	"termnotes/internal/adapters/sqlite"
	"termnotes/internal/application"
	"termnotes/internal/application/commands"
	"termnotes/internal/config"
)

// startup is the loaded store plus what must be released on exit
type startup struct {
	Store *application.Store
	// Startup is shown as the first status line when set
	Startup *commands.Status

	catalog *sqlite.Catalog
}

// Close releases the backup catalog
func (s *startup) Close() error {
	if s.catalog == nil {
		return nil
	}
	return s.catalog.Close()
}

// openStore builds the store and loads the primary file, applying the
// corrupt-data policy
func openStore(cfg *config.Config, logger *slog.Logger) (*startup, error) {
	res := &startup{}
	opts := []application.StoreOption{application.WithLogger(logger)}

	if cfg.Catalog {
		catalog, err := sqlite.OpenCatalog(cfg.DataDir)
		if err != nil {
			// Backups still work without the catalog
			logger.Warn("backup catalog unavailable", "error", err)
		} else {
			res.catalog = catalog
			opts = append(opts, application.WithCatalog(catalog))
		}
	}

	store := application.NewStore(
		filesystem.NewRepository(cfg.DataDir),
		filesystem.NewExporter(cfg.ExportDir),
		opts...,
	)
	res.Store = store

	err := store.Load()
	switch {
	case err == nil:
		return res, nil

	case errors.Is(err, application.ErrCorruptData) && cfg.OnCorrupt == config.CorruptEmpty:
		saved, perr := store.PreserveCorrupt()
		if perr != nil {
			res.Close()
			return nil, fmt.Errorf("%w; could not preserve it: %v", err, perr)
		}
		res.Startup = &commands.Status{
			Text:  fmt.Sprintf("Error: %v. Starting empty; the unreadable file was kept as %s", err, saved),
			Level: commands.LevelError,
		}
		return res, nil

	case errors.Is(err, application.ErrCorruptData):
		res.Close()
		return nil, fmt.Errorf("%w (start with --on-corrupt empty to set it aside)", err)

	default:
		res.Close()
		return nil, err
	}
}
