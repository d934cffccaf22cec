package domain

// ExportFormat selects the textual rendering used by export
type ExportFormat int

const (
	FormatMarkdown ExportFormat = iota
	FormatCSV
)

func (f ExportFormat) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	default:
		return "markdown"
	}
}

// Extension returns the file extension, without the dot
func (f ExportFormat) Extension() string {
	switch f {
	case FormatCSV:
		return "csv"
	default:
		return "md"
	}
}

// BackupRecord describes one backup file written by the store
type BackupRecord struct {
	Path      string
	CreatedAt int64 // unix seconds
	Notes     int
	Todos     int
}
