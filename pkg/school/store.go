package school

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrSchoolNotFound is returned when no entry matches a slug.
	ErrSchoolNotFound = errors.New("school: not found")
	// ErrFlowNotFound is returned when a school has no config for a flow.
	ErrFlowNotFound = errors.New("school: flow not found")
	// ErrDuplicateSchool is returned when a slug or school id is registered twice.
	ErrDuplicateSchool = errors.New("school: duplicate school")
)

// Store indexes school entries by slug and school id. Entries are treated as
// immutable once registered.
type Store struct {
	mu      sync.RWMutex
	entries map[Slug]Entry
	byID    map[int]Slug
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[Slug]Entry),
		byID:    make(map[int]Slug),
	}
}

// Register adds an entry. Registering a slug twice, or reusing a school id
// under a different slug, fails.
func (s *Store) Register(entry Entry) error {
	if entry.Slug == "" {
		return errors.New("school: entry slug is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[entry.Slug]; exists {
		return fmt.Errorf("%w: slug %q", ErrDuplicateSchool, entry.Slug)
	}
	for _, fc := range entry.Configs {
		if fc.Config == nil || fc.Config.SchoolID == 0 {
			continue
		}
		if owner, ok := s.byID[fc.Config.SchoolID]; ok && owner != entry.Slug {
			return fmt.Errorf("%w: id %d already used by %q", ErrDuplicateSchool, fc.Config.SchoolID, owner)
		}
	}

	s.entries[entry.Slug] = entry
	for _, fc := range entry.Configs {
		if fc.Config != nil && fc.Config.SchoolID != 0 {
			s.byID[fc.Config.SchoolID] = entry.Slug
		}
	}
	return nil
}

// Entry returns the entry registered under slug.
func (s *Store) Entry(slug Slug) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[slug]
	return entry, ok
}

// Config returns the configuration for a school and flow. An empty flow
// selects the base full form.
func (s *Store) Config(slug Slug, flow Flow) (*Config, error) {
	entry, ok := s.Entry(slug)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchoolNotFound, slug)
	}
	if flow == "" {
		flow = FlowBaseFullForm
	}
	cfg, ok := entry.Config(flow)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no %q config", ErrFlowNotFound, slug, flow)
	}
	return cfg, nil
}

// BySchoolID returns the entry owning a numeric school id.
func (s *Store) BySchoolID(id int) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	s.mu.RLock()
	slug, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return Entry{}, false
	}
	return s.Entry(slug)
}

// Slugs returns the registered slugs sorted alphabetically.
func (s *Store) Slugs() []Slug {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Slug, 0, len(s.entries))
	for slug := range s.entries {
		out = append(out, slug)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Empty reports whether the store holds any entries.
func (s *Store) Empty() bool {
	if s == nil {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries) == 0
}
