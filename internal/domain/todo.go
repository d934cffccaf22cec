package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Severity ranks todos. Values are ordered from least to most urgent.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// DefaultSeverity is assigned to newly created todos
const DefaultSeverity = SeverityMedium

var severityNames = []string{"info", "low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < SeverityInfo || s > SeverityCritical {
		return "unknown"
	}
	return severityNames[s]
}

// ParseSeverity accepts a severity name, case-insensitively
func ParseSeverity(s string) (Severity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q (want one of %s)", s, strings.Join(severityNames, ", "))
}

// MarshalText implements encoding.TextMarshaler
func (s Severity) MarshalText() ([]byte, error) {
	if s < SeverityInfo || s > SeverityCritical {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Todo is a checklist entry
type Todo struct {
	ID        ID        `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Completed bool      `json:"completed"`
	Severity  Severity  `json:"severity"`
	Due       *Date     `json:"due"`
	Tags      Tags      `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalJSON decodes a todo, treating a missing severity as
// DefaultSeverity. Unknown fields are rejected.
func (t *Todo) UnmarshalJSON(data []byte) error {
	type plain Todo
	v := plain{Severity: DefaultSeverity}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*t = Todo(v)
	return nil
}

// Clone returns a copy that shares no memory with t
func (t Todo) Clone() Todo {
	if t.Due != nil {
		d := *t.Due
		t.Due = &d
	}
	t.Tags = slices.Clone(t.Tags)
	return t
}

// NewTodo returns an open todo with default title and severity
func NewTodo(id ID, now time.Time) Todo {
	return Todo{
		ID:        id,
		Title:     fmt.Sprintf("Todo %d", id),
		Severity:  DefaultSeverity,
		CreatedAt: Timestamp(now),
	}
}

// IsOverdue reports whether the todo is still open past its due date
func (t Todo) IsOverdue(today Date) bool {
	return !t.Completed && t.Due != nil && t.Due.Before(today)
}
