package school

import (
	"github.com/goliatone/go-leadform/pkg/model"
	"github.com/goliatone/go-leadform/pkg/resolver"
)

// Slug identifies a school across flows.
type Slug string

// Flow names the page flow a configuration applies to.
type Flow string

const FlowBaseFullForm Flow = "baseFullForm"

// ScreenSlug names a screen that can show a nudge.
type ScreenSlug string

const (
	ScreenLevelOfEducation ScreenSlug = "levelOfEducation"
	ScreenGPA              ScreenSlug = "gpa"
	ScreenWorkExperience   ScreenSlug = "workExperience"
	ScreenLocation         ScreenSlug = "location"
)

// Mobius holds the lead routing credentials for the school.
type Mobius struct {
	IDToken string `json:"idToken" yaml:"idToken"`
}

// CreditStats lists transfer credit statements per degree level.
type CreditStats struct {
	General     []string `json:"general" yaml:"general"`
	Masters     []string `json:"masters" yaml:"masters"`
	Doctorate   []string `json:"doctorate" yaml:"doctorate"`
	Associates  []string `json:"associates" yaml:"associates"`
	Certificate []string `json:"certificate" yaml:"certificate"`
	Bachelors   []string `json:"bachelors" yaml:"bachelors"`
}

// Tags are the filterable facts about a school.
type Tags struct {
	Online       bool   `json:"online" yaml:"online"`
	NotForProfit bool   `json:"notForProfit" yaml:"notForProfit"`
	City         string `json:"city" yaml:"city"`
	State        string `json:"state" yaml:"state"`
	IsPrivate    bool   `json:"isPrivate" yaml:"isPrivate"`
}

// Nudge is the encouragement shown on a screen.
type Nudge struct {
	Title      string `json:"title" yaml:"title"`
	Message    string `json:"message" yaml:"message"`
	Percentage int    `json:"percentage" yaml:"percentage"`
}

// FastFact is one marketing highlight. Icon is either an icon name or inline
// SVG markup, which is sanitised on load.
type FastFact struct {
	Title       string `json:"title" yaml:"title"`
	Stat        string `json:"stat" yaml:"stat"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

// Confirmation is the copy shown after a lead is submitted.
type Confirmation struct {
	Meta struct {
		Text string `json:"text" yaml:"text"`
	} `json:"meta" yaml:"meta"`
}

// Config is the static record describing one school in one flow.
type Config struct {
	SchoolID               int                  `json:"schoolId" yaml:"schoolId"`
	Slug                   Slug                 `json:"slug" yaml:"slug"`
	SchoolName             string               `json:"schoolName" yaml:"schoolName"`
	Image                  string               `json:"image" yaml:"image"`
	Homepage               string               `json:"homepage" yaml:"homepage"`
	Mobius                 Mobius               `json:"mobius" yaml:"mobius"`
	Logo                   string               `json:"logo" yaml:"logo"`
	Description            string               `json:"description" yaml:"description"`
	CreditStats            CreditStats          `json:"creditStats" yaml:"creditStats"`
	ThemeColors            map[string]string    `json:"themeColors" yaml:"themeColors"`
	Tags                   Tags                 `json:"tags" yaml:"tags"`
	Nudges                 map[ScreenSlug]Nudge `json:"nudges" yaml:"nudges"`
	FastFacts              []FastFact           `json:"fastFacts" yaml:"fastFacts"`
	FastFactsCourses       string               `json:"fastFactsCourses,omitempty" yaml:"fastFactsCourses,omitempty"`
	FastFactsOutcomes      string               `json:"fastFactsOutcomes,omitempty" yaml:"fastFactsOutcomes,omitempty"`
	FormDates              []string             `json:"formDates" yaml:"formDates"`
	FormDatesLabel         string               `json:"formDatesLabel" yaml:"formDatesLabel"`
	FeatureFlags           map[string]int       `json:"featureFlags" yaml:"featureFlags"`
	Confirmation           Confirmation         `json:"confirmation" yaml:"confirmation"`
	TCPA                   string               `json:"tcpa" yaml:"tcpa"`
	ShowNextStartDate      bool                 `json:"showNextStartDate" yaml:"showNextStartDate"`
	CitationText           string               `json:"citationText,omitempty" yaml:"citationText,omitempty"`
	ShowCitationBackground bool                 `json:"showCitationBackground,omitempty" yaml:"showCitationBackground,omitempty"`
	Rules                  resolver.Rules       `json:"fields" yaml:"fields"`

	// Resolver computes the field list. Loaded configs get the standard
	// resolver built from Rules; programmatic configs may set their own.
	Resolver resolver.FieldsResolver `json:"-" yaml:"-"`
}

// Fields resolves the field list for a program. A config without a resolver
// returns the base fields unchanged.
func (c *Config) Fields(req resolver.Request) []model.Field {
	if c == nil || c.Resolver == nil {
		return model.CloneAll(req.BaseFields)
	}
	return c.Resolver.Resolve(req)
}

// FlowConfig pairs a flow with its configuration.
type FlowConfig struct {
	Flow   Flow    `json:"flow" yaml:"flow"`
	Config *Config `json:"config" yaml:"config"`
}

// Entry groups every flow configuration of one school.
type Entry struct {
	Slug    Slug         `json:"slug" yaml:"slug"`
	Configs []FlowConfig `json:"configs" yaml:"configs"`
}

// Config returns the configuration for a flow.
func (e Entry) Config(flow Flow) (*Config, bool) {
	for _, fc := range e.Configs {
		if fc.Flow == flow && fc.Config != nil {
			return fc.Config, true
		}
	}
	return nil, false
}

// Flows lists the flows the school is configured for.
func (e Entry) Flows() []Flow {
	out := make([]Flow, 0, len(e.Configs))
	for _, fc := range e.Configs {
		out = append(out, fc.Flow)
	}
	return out
}
