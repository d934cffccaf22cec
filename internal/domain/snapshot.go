package domain

// Snapshot is the full persisted state of both collections
type Snapshot struct {
	NextID ID     `json:"next_id"`
	Notes  []Note `json:"notes"`
	Todos  []Todo `json:"todos"`
}

// NewSnapshot returns an empty snapshot whose first ID is 1
func NewSnapshot() *Snapshot {
	return &Snapshot{
		NextID: 1,
		Notes:  []Note{},
		Todos:  []Todo{},
	}
}

// Clone returns a deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		NextID: s.NextID,
		Notes:  CloneNotes(s.Notes),
		Todos:  CloneTodos(s.Todos),
	}
}

// CloneNotes deep-copies notes; the result is never nil
func CloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}

// CloneTodos deep-copies todos; the result is never nil
func CloneTodos(todos []Todo) []Todo {
	out := make([]Todo, len(todos))
	for i, t := range todos {
		out[i] = t.Clone()
	}
	return out
}

// Normalize repairs a decoded snapshot: nil slices become empty and
// NextID is raised above every ID in use so that IDs are never reissued.
func (s *Snapshot) Normalize() {
	if s.Notes == nil {
		s.Notes = []Note{}
	}
	if s.Todos == nil {
		s.Todos = []Todo{}
	}
	highest := ID(0)
	for _, n := range s.Notes {
		highest = max(highest, n.ID)
	}
	for _, t := range s.Todos {
		highest = max(highest, t.ID)
	}
	if s.NextID <= highest {
		s.NextID = highest + 1
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
}

// Validate checks the collection invariants of a decoded snapshot
func (s *Snapshot) Validate() error {
	seen := make(map[ID]Kind, len(s.Notes)+len(s.Todos))
	for _, n := range s.Notes {
		if n.ID == 0 {
			return &InvariantError{Kind: KindNote, Reason: "note without id"}
		}
		if _, dup := seen[n.ID]; dup {
			return &InvariantError{ID: n.ID, Kind: KindNote, Reason: "duplicate id"}
		}
		seen[n.ID] = KindNote
	}
	for _, t := range s.Todos {
		if t.ID == 0 {
			return &InvariantError{Kind: KindTodo, Reason: "todo without id"}
		}
		if _, dup := seen[t.ID]; dup {
			return &InvariantError{ID: t.ID, Kind: KindTodo, Reason: "duplicate id"}
		}
		seen[t.ID] = KindTodo
	}
	return nil
}

// InvariantError reports a snapshot that breaks the collection invariants
type InvariantError struct {
	ID     ID
	Kind   Kind
	Reason string
}

func (e *InvariantError) Error() string {
	if e.ID == 0 {
		return e.Kind.String() + ": " + e.Reason
	}
	return e.Kind.String() + " " + e.ID.String() + ": " + e.Reason
}

// DecodeError reports persisted content that is not a valid snapshot
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return "decode " + e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
