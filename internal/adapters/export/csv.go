package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"termnotes/internal/domain"
)

// CSVHeader is the unified column set shared by notes and todos. Columns
// that do not apply to a kind are left empty.
var CSVHeader = []string{"kind", "id", "title", "body", "created", "completed", "severity", "due", "tags"}

// CSV renders every note and todo as one row of a single table
func CSV(snap *domain.Snapshot) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	if err := w.Write(CSVHeader); err != nil {
		return nil, err
	}
	for _, n := range snap.Notes {
		row := []string{
			domain.KindNote.String(),
			n.ID.String(),
			n.Title,
			n.Body,
			n.CreatedAt.Format(timeLayout),
			"", "", "",
			n.Tags.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write note %s: %w", n.ID, err)
		}
	}
	for _, t := range snap.Todos {
		due := ""
		if t.Due != nil {
			due = t.Due.String()
		}
		row := []string{
			domain.KindTodo.String(),
			t.ID.String(),
			t.Title,
			t.Body,
			t.CreatedAt.Format(timeLayout),
			strconv.FormatBool(t.Completed),
			t.Severity.String(),
			due,
			t.Tags.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write todo %s: %w", t.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
