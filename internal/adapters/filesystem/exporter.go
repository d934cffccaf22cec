package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"termnotes/internal/adapters/export"
	"termnotes/internal/domain"
)

// ExportBaseName is the file name, without extension, of export files
const ExportBaseName = "terminal_notes_export"

// Exporter implements ports.Exporter by writing rendered files to a directory
type Exporter struct {
	dir string
}

// NewExporter creates an exporter writing into dir
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: expandHome(dir)}
}

// Export renders snap and writes it to terminal_notes_export.<ext>
func (e *Exporter) Export(snap *domain.Snapshot, format domain.ExportFormat) (string, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case domain.FormatMarkdown:
		data = export.Markdown(snap)
	case domain.FormatCSV:
		data, err = export.CSV(snap)
	default:
		return "", fmt.Errorf("unsupported export format %d", int(format))
	}
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(e.dir, ExportBaseName+"."+format.Extension())
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
