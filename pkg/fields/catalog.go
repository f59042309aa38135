package fields

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-leadform/internal/labels"
	"github.com/goliatone/go-leadform/pkg/model"
)

// Builder constructs a descriptor from per call overrides.
type Builder func(options ...Option) model.Field

// Entry describes one catalog builder. Name is the key the built descriptor
// carries and DisplayName is the human readable builder name, both stated
// explicitly instead of being derived from the builder itself.
type Entry struct {
	Tag         string
	Name        model.FieldName
	DisplayName string
	Group       bool
	PII         bool
	Build       Builder
}

// Catalog is a fixed registry of builders keyed by type tag. It has no
// mutators; the default instance is shared and safe for concurrent use.
type Catalog struct {
	entries map[string]Entry
	tags    []string
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
)

// Default returns the built-in catalog.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = newCatalog(builtins())
	})
	return defaultCatalog
}

func newCatalog(entries []Entry) *Catalog {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, entry := range entries {
		if entry.DisplayName == "" {
			entry.DisplayName = labels.Humanize(entry.Tag)
		}
		// The built descriptor is the source of truth for name/PII/group.
		sample := entry.Build()
		entry.Name = sample.Name
		entry.PII = sample.PII
		entry.Group = sample.IsGroup()
		c.entries[entry.Tag] = entry
		c.tags = append(c.tags, entry.Tag)
	}
	sort.Strings(c.tags)
	return c
}

// Lookup retrieves a builder entry by tag.
func (c *Catalog) Lookup(tag string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	entry, ok := c.entries[tag]
	return entry, ok
}

// Build constructs the descriptor registered under tag.
func (c *Catalog) Build(tag string, options ...Option) (model.Field, error) {
	entry, ok := c.Lookup(tag)
	if !ok {
		return model.Field{}, fmt.Errorf("fields: builder %q not found", tag)
	}
	return entry.Build(options...), nil
}

// Tags returns the sorted list of registered tags.
func (c *Catalog) Tags() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.tags...)
}

// Entries returns every entry sorted by tag.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, len(c.tags))
	for _, tag := range c.tags {
		out = append(out, c.entries[tag])
	}
	return out
}

func builtins() []Entry {
	return []Entry{
		{Tag: "firstName", Build: FirstName},
		{Tag: "lastName", Build: LastName},
		{Tag: "address", Build: Address},
		{Tag: "city", Build: City},
		{Tag: "state", Build: State},
		{Tag: "stateAbbr", Build: StateAbbr},
		{Tag: "zip", Build: Zip, DisplayName: "Zip Code"},
		{Tag: "country", Build: Country},
		{Tag: "phone", Build: Phone, DisplayName: "Phone Number"},
		{Tag: "email", Build: Email},
		{Tag: "gradYearSelect", Build: GradYearSelect},
		{Tag: "campusSelect", Build: CampusSelect},
		{Tag: "startTerm", Build: StartTerm},
		{Tag: "startDateSelect", Build: StartDateSelect},
		{Tag: "educationLevel", Build: EducationLevel},
		{Tag: "educationLevelSelect", Build: EducationLevelSelect},
		{Tag: "gpa", Build: GPA},
		{Tag: "gpaSelect", Build: GPASelect},
		{Tag: "yearsWorked", Build: YearsWorked},
		{Tag: "yearsWorkedSelect", Build: YearsWorkedSelect},
		{Tag: "startDate", Build: StartDate},
		{Tag: "militaryExp", Build: MilitaryExp},
		{Tag: "militaryExpStandard", Build: MilitaryExpStandard},
		{Tag: "hasRn", Build: HasRN},
		{Tag: "hasRnStandard", Build: HasRNStandard},
		{Tag: "rnDegreeInterest", Build: RNDegreeInterest},
		{Tag: "rnProgramTrack", Build: RNProgramTrack},
		{Tag: "assocDegree", Build: AssocDegree},
		{Tag: "bsw", Build: BSW},
		{Tag: "hasBsn", Build: HasBSN},
		{Tag: "genericRadioOption", Build: GenericRadioOption},
		{Tag: "levelOfEducationRadioOption", Build: LevelOfEducationRadioOption},
		{Tag: "leadShareOptIn", Build: LeadShareOptIn},
		{Tag: "militaryFieldGroup", Build: func(options ...Option) model.Field {
			return MilitaryFieldGroup(resolveProps(options).DefaultValue)
		}},
		{Tag: "rnQuestion", Build: func(options ...Option) model.Field {
			return RNQuestion(resolveProps(options).Label)
		}},
		{Tag: "hasAssocDegree", Build: func(options ...Option) model.Field {
			if label := resolveProps(options).Label; label != "" {
				return HasAssocDegreeWithLabel(label)
			}
			return HasAssocDegree()
		}},
		{Tag: "genericRadio", Build: func(options ...Option) model.Field {
			p := resolveProps(options)
			return GenericRadio(YesNo{Label: p.Label, Name: p.Name})
		}},
		{Tag: "levelOfEducationRadio", Build: func(options ...Option) model.Field {
			return LevelOfEducationRadio(YesNo{Label: resolveProps(options).Label})
		}},
	}
}
