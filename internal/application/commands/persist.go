package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"termnotes/internal/domain"
)

// SaveCommand writes the snapshot, optionally quitting afterwards
type SaveCommand struct {
	ThenQuit bool
}

// Execute runs the save command
func (c *SaveCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	if err := env.Store.Save(); err != nil {
		return nil, err
	}
	if c.ThenQuit {
		env.Session.RequestQuit()
	}
	return &Result{Message: "Data saved successfully"}, nil
}

// BackupCommand writes a timestamped copy of the snapshot
type BackupCommand struct{}

// Execute runs the backup command
func (c *BackupCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	path, err := env.Store.Backup()
	if err != nil {
		return nil, err
	}
	return &Result{Message: fmt.Sprintf("Backup created: %s", filepath.Base(path))}, nil
}

// BackupsCommand reports what the backup catalog knows
type BackupsCommand struct{}

// Execute runs the backups command
func (c *BackupsCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	n, latest, err := env.Store.BackupSummary()
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return &Result{Message: "No backups yet"}, nil
	}
	return &Result{Message: fmt.Sprintf("%d backup(s), latest %s (%s, %d notes, %d todos)",
		n,
		filepath.Base(latest.Path),
		time.Unix(latest.CreatedAt, 0).Format("2006-01-02 15:04"),
		latest.Notes,
		latest.Todos,
	)}, nil
}

// ExportCommand renders the snapshot to Markdown or CSV
type ExportCommand struct {
	Format domain.ExportFormat
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, env *Env) (*Result, error) {
	path, err := env.Store.Export(c.Format)
	if err != nil {
		return nil, err
	}
	return &Result{Message: fmt.Sprintf("Exported to: %s", path)}, nil
}
