package resolver

import (
	"sort"

	"github.com/goliatone/go-leadform/pkg/program"
)

// IDSet is an allow-list of numeric program identifiers.
type IDSet map[int64]struct{}

// NewIDSet builds a set from identifiers.
func NewIDSet(ids ...int64) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the program identifier is numeric and listed.
// Non-numeric identifiers are never members.
func (s IDSet) Contains(id program.ID) bool {
	if len(s) == 0 {
		return false
	}
	value, ok := id.Int()
	if !ok {
		return false
	}
	_, listed := s[value]
	return listed
}

// Sorted returns the members in ascending order.
func (s IDSet) Sorted() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
