package skills

import (
	"sort"
)

// SortedSet is a string set whose contents are read back in lexicographic order.
// The ordering exists so that extracted records are deterministic; it carries no meaning.
type SortedSet struct {
	items map[string]struct{}
}

// NewSortedSet creates a set holding the given items.
func NewSortedSet(items ...string) *SortedSet {
	s := &SortedSet{items: make(map[string]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item. Empty strings are ignored.
func (s *SortedSet) Add(item string) {
	if item == "" {
		return
	}
	s.items[item] = struct{}{}
}

// Contains reports whether item is in the set.
func (s *SortedSet) Contains(item string) bool {
	_, ok := s.items[item]
	return ok
}

// Len returns the number of items.
func (s *SortedSet) Len() int {
	return len(s.items)
}

// Sorted returns the items in lexicographic order. The result is never nil.
func (s *SortedSet) Sorted() []string {
	out := make([]string, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// Dedupe returns items deduplicated and sorted.
func Dedupe(items []string) []string {
	return NewSortedSet(items...).Sorted()
}
