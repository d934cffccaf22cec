package domain

import (
	"fmt"
	"slices"
	"time"
)

// Note is a free-form text entry
type Note struct {
	ID        ID        `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      Tags      `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a copy that shares no memory with n
func (n Note) Clone() Note {
	n.Tags = slices.Clone(n.Tags)
	return n
}

// NewNote returns a note with the default placeholder title
func NewNote(id ID, now time.Time) Note {
	return Note{
		ID:        id,
		Title:     fmt.Sprintf("Note %d", id),
		CreatedAt: Timestamp(now),
	}
}

// Timestamp normalizes t to UTC with second precision so that a value
// survives a JSON round trip unchanged.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
