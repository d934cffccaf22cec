package domain

import (
	"slices"
	"strings"
)

// Tags is an ordered set of labels on a note or todo
type Tags []string

// Has reports whether tag is present
func (t Tags) Has(tag string) bool {
	return slices.Contains(t, tag)
}

// Add appends tag unless it is already present. The second result reports
// whether anything changed.
func (t Tags) Add(tag string) (Tags, bool) {
	if t.Has(tag) {
		return t, false
	}
	return append(slices.Clip(t), tag), true
}

// Remove drops tag. The second result reports whether it was present.
func (t Tags) Remove(tag string) (Tags, bool) {
	i := slices.Index(t, tag)
	if i < 0 {
		return t, false
	}
	out := slices.Delete(slices.Clone(t), i, i+1)
	if len(out) == 0 {
		return nil, true
	}
	return out, true
}

func (t Tags) String() string {
	return strings.Join(t, ", ")
}
