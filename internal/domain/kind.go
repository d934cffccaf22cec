package domain

import "strconv"

// ID identifies a note or todo. IDs come from a single counter shared by
// both collections and are never handed out twice.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Kind distinguishes the two managed entity types
type Kind int

const (
	KindUnknown Kind = iota
	KindNote
	KindTodo
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindTodo:
		return "todo"
	default:
		return "unknown"
	}
}

// Plural returns the lowercase plural form used in status messages
func (k Kind) Plural() string {
	switch k {
	case KindNote:
		return "notes"
	case KindTodo:
		return "todos"
	default:
		return "items"
	}
}

// Section is the collection currently in focus
type Section int

const (
	SectionNone Section = iota
	SectionNotes
	SectionTodos
)

func (s Section) String() string {
	switch s {
	case SectionNotes:
		return "Notes"
	case SectionTodos:
		return "Todos"
	default:
		return "None"
	}
}

// Kind returns the entity kind listed by the section
func (s Section) Kind() Kind {
	switch s {
	case SectionNotes:
		return KindNote
	case SectionTodos:
		return KindTodo
	default:
		return KindUnknown
	}
}

// SectionFor returns the section that lists entities of kind k
func SectionFor(k Kind) Section {
	switch k {
	case KindNote:
		return SectionNotes
	case KindTodo:
		return SectionTodos
	default:
		return SectionNone
	}
}

// Field names the editable text of an entity
type Field int

const (
	FieldTitle Field = iota
	FieldBody
)

func (f Field) String() string {
	if f == FieldBody {
		return "body"
	}
	return "title"
}
