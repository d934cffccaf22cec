package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input   string
		want    Severity
		wantErr bool
	}{
		{input: "low", want: SeverityLow},
		{input: "HIGH", want: SeverityHigh},
		{input: " critical ", want: SeverityCritical},
		{input: "info", want: SeverityInfo},
		{input: "urgent", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityInfo < SeverityLow && SeverityLow < SeverityMedium &&
		SeverityMedium < SeverityHigh && SeverityHigh < SeverityCritical) {
		t.Error("severities are not ordered from least to most urgent")
	}
}

func TestDateBefore(t *testing.T) {
	d := Date{Year: 2026, Month: time.March, Day: 10}

	if !d.Before(Date{Year: 2026, Month: time.March, Day: 11}) {
		t.Error("expected earlier day to be before")
	}
	if d.Before(d) {
		t.Error("a date is not before itself")
	}
	if !d.Before(Date{Year: 2027, Month: time.January, Day: 1}) {
		t.Error("expected earlier year to be before")
	}
	if d.Before(Date{Year: 2026, Month: time.February, Day: 28}) {
		t.Error("later month reported as before")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-18")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.String() != "2026-10-18" {
		t.Errorf("expected 2026-10-18, got %s", d)
	}

	for _, bad := range []string{"18/10/2026", "2026-13-01", "tomorrow"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestTodoIsOverdue(t *testing.T) {
	today := Date{Year: 2026, Month: time.October, Day: 18}
	yesterday := Date{Year: 2026, Month: time.October, Day: 17}

	todo := NewTodo(1, time.Now())
	if todo.IsOverdue(today) {
		t.Error("todo without due date cannot be overdue")
	}

	todo.Due = &yesterday
	if !todo.IsOverdue(today) {
		t.Error("expected open todo past due to be overdue")
	}

	todo.Completed = true
	if todo.IsOverdue(today) {
		t.Error("completed todo cannot be overdue")
	}

	todo.Completed = false
	todo.Due = &today
	if todo.IsOverdue(today) {
		t.Error("todo due today is not overdue")
	}
}

func TestTodoJSONShape(t *testing.T) {
	due := Date{Year: 2026, Month: time.December, Day: 1}
	todo := Todo{ID: 7, Title: "Ship", Severity: SeverityHigh, Due: &due,
		CreatedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}

	data, err := json.Marshal(todo)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"id":7,"title":"Ship","body":"","completed":false,"severity":"high","due":"2026-12-01","created_at":"2026-10-18T09:00:00Z"}`
	if string(data) != want {
		t.Errorf("unexpected JSON:\n got %s\nwant %s", data, want)
	}

	var back Todo
	if err := json.Unmarshal([]byte(`{"id":3,"severity":"bogus"}`), &back); err == nil {
		t.Error("expected error decoding unknown severity")
	}
	if err := json.Unmarshal([]byte(`{"id":3,"priority":1}`), &back); err == nil {
		t.Error("expected error decoding unknown field")
	}
}

func TestTodoDecodeDefaults(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Severity
	}{
		{name: "missing severity", json: `{"id":4,"title":"t"}`, want: DefaultSeverity},
		{name: "null severity", json: `{"id":4,"severity":null}`, want: DefaultSeverity},
		{name: "explicit info", json: `{"id":4,"severity":"info"}`, want: SeverityInfo},
		{name: "explicit critical", json: `{"id":4,"severity":"critical"}`, want: SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var todo Todo
			if err := json.Unmarshal([]byte(tt.json), &todo); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if todo.Severity != tt.want {
				t.Errorf("expected severity %v, got %v", tt.want, todo.Severity)
			}
			if todo.ID != 4 {
				t.Errorf("expected id 4, got %d", todo.ID)
			}
		})
	}
}

func TestTodoDecodeInSnapshot(t *testing.T) {
	var s Snapshot
	data := `{"next_id":3,"notes":[],"todos":[{"id":1,"body":"details","tags":["work"]},{"id":2,"severity":"low"}]}`
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s.Todos[0].Severity != SeverityMedium || s.Todos[1].Severity != SeverityLow {
		t.Errorf("unexpected severities %v, %v", s.Todos[0].Severity, s.Todos[1].Severity)
	}
	if s.Todos[0].Body != "details" || !s.Todos[0].Tags.Has("work") {
		t.Errorf("body and tags not decoded: %+v", s.Todos[0])
	}
}

func TestTags(t *testing.T) {
	var tags Tags

	tags, added := tags.Add("work")
	if !added || tags.String() != "work" {
		t.Fatalf("expected work to be added, got %q", tags)
	}
	tags, added = tags.Add("home")
	if !added || tags.String() != "work, home" {
		t.Fatalf("expected insertion order, got %q", tags)
	}
	tags, added = tags.Add("work")
	if added || len(tags) != 2 {
		t.Errorf("duplicate tag was added: %q", tags)
	}

	tags, removed := tags.Remove("missing")
	if removed || len(tags) != 2 {
		t.Errorf("removing an absent tag changed %q", tags)
	}
	tags, removed = tags.Remove("work")
	if !removed || tags.String() != "home" {
		t.Errorf("expected only home left, got %q", tags)
	}
	tags, _ = tags.Remove("home")
	if tags != nil {
		t.Errorf("expected nil after removing the last tag, got %#v", tags)
	}
}

func TestTagsAddDoesNotAlias(t *testing.T) {
	base := make(Tags, 1, 4)
	base[0] = "a"

	x, _ := base.Add("x")
	y, _ := base.Add("y")
	if x[1] != "x" || y[1] != "y" {
		t.Errorf("adds share storage: %q %q", x, y)
	}
}

func TestTagsOmittedWhenEmpty(t *testing.T) {
	data, err := json.Marshal(Note{ID: 1, Tags: Tags{}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"id":1,"title":"","body":"","created_at":"0001-01-01T00:00:00Z"}`
	if string(data) != want {
		t.Errorf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}

func TestSnapshotNormalize(t *testing.T) {
	s := &Snapshot{
		NextID: 2,
		Notes:  []Note{{ID: 5}},
		Todos:  nil,
	}
	s.Normalize()

	if s.NextID != 6 {
		t.Errorf("expected NextID 6, got %d", s.NextID)
	}
	if s.Todos == nil {
		t.Error("expected empty todo slice, got nil")
	}
}

func TestSnapshotValidate(t *testing.T) {
	dup := &Snapshot{Notes: []Note{{ID: 1}}, Todos: []Todo{{ID: 1}}}
	if err := dup.Validate(); err == nil {
		t.Error("expected duplicate id to be rejected")
	}

	zero := &Snapshot{Notes: []Note{{ID: 0}}}
	if err := zero.Validate(); err == nil {
		t.Error("expected missing id to be rejected")
	}

	ok := &Snapshot{Notes: []Note{{ID: 1}}, Todos: []Todo{{ID: 2}}}
	if err := ok.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	due := Date{Year: 2026, Month: time.May, Day: 4}
	s := &Snapshot{
		NextID: 3,
		Notes:  []Note{{ID: 1, Title: "a", Tags: Tags{"n"}}},
		Todos:  []Todo{{ID: 2, Due: &due, Tags: Tags{"t"}}},
	}

	c := s.Clone()
	c.Notes[0].Title = "b"
	c.Notes[0].Tags[0] = "changed"
	c.Todos[0].Due.Day = 5
	c.Todos[0].Tags[0] = "changed"

	if s.Notes[0].Title != "a" {
		t.Error("clone shares note storage")
	}
	if s.Todos[0].Due.Day != 4 {
		t.Error("clone shares due date")
	}
	if s.Notes[0].Tags[0] != "n" || s.Todos[0].Tags[0] != "t" {
		t.Error("clone shares tags")
	}

	empty := (&Snapshot{}).Clone()
	if empty.Notes == nil || empty.Todos == nil {
		t.Error("clone of an empty snapshot should have non-nil slices")
	}
}
