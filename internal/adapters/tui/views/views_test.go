package views

import (
	"strings"
	"testing"
	"time"

	"termnotes/internal/domain"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name                string
		cursor, total, size int
		wantStart, wantEnd  int
	}{
		{name: "fits", cursor: 2, total: 5, size: 10, wantStart: 0, wantEnd: 5},
		{name: "empty", cursor: -1, total: 0, size: 10, wantStart: 0, wantEnd: 0},
		{name: "top", cursor: 0, total: 50, size: 10, wantStart: 0, wantEnd: 10},
		{name: "middle", cursor: 25, total: 50, size: 10, wantStart: 20, wantEnd: 30},
		{name: "bottom", cursor: 49, total: 50, size: 10, wantStart: 40, wantEnd: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.cursor, tt.total, tt.size)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Window(%d, %d, %d) = [%d, %d), expected [%d, %d)",
					tt.cursor, tt.total, tt.size, start, end, tt.wantStart, tt.wantEnd)
			}
			if tt.total > 0 && (tt.cursor < start || tt.cursor >= end) {
				t.Errorf("cursor %d outside window", tt.cursor)
			}
		})
	}
}

func TestRenderTodos_Indicators(t *testing.T) {
	today := domain.Date{Year: 2026, Month: time.October, Day: 18}
	past := domain.Date{Year: 2026, Month: time.October, Day: 1}
	todos := []domain.Todo{
		{ID: 1, Title: "Pay rent", Severity: domain.SeverityCritical, Due: &past},
		{ID: 2, Title: "Water plants", Completed: true, Severity: domain.SeverityLow, Due: &past},
	}

	out := RenderTodos(todos, ListState{Selected: 0, Rows: 10, IsMarked: func(id domain.ID) bool { return id == 2 }}, today)

	lines := strings.Split(out, "\n")
	var rent, plants string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Pay rent"):
			rent = l
		case strings.Contains(l, "Water plants"):
			plants = l
		}
	}
	if !strings.Contains(rent, "OVERDUE") || !strings.Contains(rent, "critical") || !strings.Contains(rent, "[ ]") {
		t.Errorf("unexpected row for open overdue todo: %q", rent)
	}
	if strings.Contains(plants, "OVERDUE") {
		t.Errorf("completed todo must not be overdue: %q", plants)
	}
	if !strings.Contains(plants, "[x]") || !strings.Contains(plants, "* ") {
		t.Errorf("expected done and marked indicators: %q", plants)
	}
}

func TestRenderNotes_Preview(t *testing.T) {
	notes := []domain.Note{
		{ID: 1, Title: "Groceries", Body: "milk\neggs"},
		{ID: 2, Title: "Empty"},
	}

	out := RenderNotes(notes, ListState{Selected: 1, Rows: 10})

	if !strings.Contains(out, "Groceries") || !strings.Contains(out, "milk") {
		t.Errorf("expected title and first body line:\n%s", out)
	}
	if strings.Contains(out, "eggs") {
		t.Errorf("preview should only show the first line:\n%s", out)
	}
}

func TestRenderNotes_Empty(t *testing.T) {
	out := RenderNotes(nil, ListState{Selected: -1, Rows: 10})
	if !strings.Contains(out, ":nn") {
		t.Errorf("expected hint for empty list:\n%s", out)
	}
}

func TestPreview_Truncates(t *testing.T) {
	long := strings.Repeat("é", previewWidth+5)
	got := []rune(preview(long))
	if len(got) != previewWidth {
		t.Errorf("expected %d runes, got %d", previewWidth, len(got))
	}
}

func TestRenderLists_Tags(t *testing.T) {
	notes := []domain.Note{{ID: 1, Title: "Ideas", Tags: domain.Tags{"work", "q4"}}}
	todos := []domain.Todo{
		{ID: 2, Title: "Plan", Body: "agenda first", Tags: domain.Tags{"home"}},
		{ID: 3, Title: "Bare"},
	}
	today := domain.Date{Year: 2026, Month: time.October, Day: 18}

	out := RenderNotes(notes, ListState{Selected: 0, Rows: 10})
	if !strings.Contains(out, "Ideas [work, q4]") {
		t.Errorf("expected note tags after the title:\n%s", out)
	}

	out = RenderTodos(todos, ListState{Selected: 0, Rows: 10}, today)
	if !strings.Contains(out, "Plan [home]") {
		t.Errorf("expected todo tags after the title:\n%s", out)
	}
	if !strings.Contains(out, "agenda first") {
		t.Errorf("expected todo body preview:\n%s", out)
	}
	if strings.Contains(out, "Bare [") {
		t.Errorf("untagged todo should render no brackets:\n%s", out)
	}
}
