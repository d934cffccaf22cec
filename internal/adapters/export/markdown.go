// Package export renders snapshots as Markdown and CSV documents.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"termnotes/internal/domain"
)

const timeLayout = time.RFC3339

// Markdown renders notes and todos as two headed sections, one block per
// entity with every field.
func Markdown(snap *domain.Snapshot) []byte {
	var b bytes.Buffer

	b.WriteString("# Notes\n\n")
	if len(snap.Notes) == 0 {
		b.WriteString("_No notes._\n\n")
	}
	for _, n := range snap.Notes {
		fmt.Fprintf(&b, "## %s\n\n", oneLine(n.Title))
		fmt.Fprintf(&b, "- ID: %s\n", n.ID)
		writeTags(&b, n.Tags)
		fmt.Fprintf(&b, "- Created: %s\n\n", n.CreatedAt.Format(timeLayout))
		writeBody(&b, n.Body)
		b.WriteString("---\n\n")
	}

	b.WriteString("# Todos\n\n")
	if len(snap.Todos) == 0 {
		b.WriteString("_No todos._\n\n")
	}
	for _, t := range snap.Todos {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		fmt.Fprintf(&b, "## %s %s\n\n", box, oneLine(t.Title))
		fmt.Fprintf(&b, "- ID: %s\n", t.ID)
		fmt.Fprintf(&b, "- Severity: %s\n", t.Severity)
		if t.Due != nil {
			fmt.Fprintf(&b, "- Due: %s\n", t.Due)
		} else {
			b.WriteString("- Due: none\n")
		}
		writeTags(&b, t.Tags)
		fmt.Fprintf(&b, "- Created: %s\n\n", t.CreatedAt.Format(timeLayout))
		writeBody(&b, t.Body)
		b.WriteString("---\n\n")
	}

	return b.Bytes()
}

func writeTags(b *bytes.Buffer, tags domain.Tags) {
	if len(tags) > 0 {
		fmt.Fprintf(b, "- Tags: %s\n", tags)
	}
}

func writeBody(b *bytes.Buffer, body string) {
	if body == "" {
		return
	}
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

// oneLine keeps titles from breaking the heading syntax
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
