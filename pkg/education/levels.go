package education

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-leadform/pkg/model"
)

// Level is one entry of the education level enumeration. The string form is
// the enumeration key used in configuration files and label overrides.
type Level string

const (
	HighSchool          Level = "HIGHSCHOOL"
	GED                 Level = "GED"
	SomeCollege         Level = "SOMECOLLEGE"
	Associates          Level = "ASSOCIATES"
	Bachelors           Level = "BACHELORS"
	Masters             Level = "MASTERS"
	Doctorate           Level = "DOCTORATE"
	InProgressBachelors Level = "INPROGRESSBACHELORS"
	InProgressMasters   Level = "INPROGRESSMASTERS"
)

type levelInfo struct {
	level    Level
	value    string
	label    string
	standard bool
}

// enumeration order is the order options are presented in.
var enumeration = []levelInfo{
	{HighSchool, "highSchool", "High School Diploma", true},
	{GED, "ged", "GED", true},
	{SomeCollege, "someCollege", "Some College", true},
	{Associates, "associates", "Associate's Degree", true},
	{Bachelors, "bachelors", "Bachelor's Degree", true},
	{Masters, "masters", "Master's Degree", true},
	{Doctorate, "doctorate", "Doctorate Degree", true},
	{InProgressBachelors, "inProgressBachelors", "Bachelor's in progress", false},
	{InProgressMasters, "inProgressMasters", "Master's in progress", false},
}

var byLevel = func() map[Level]levelInfo {
	out := make(map[Level]levelInfo, len(enumeration))
	for _, info := range enumeration {
		out[info.level] = info
	}
	return out
}()

// All returns every level in enumeration order.
func All() []Level {
	out := make([]Level, 0, len(enumeration))
	for _, info := range enumeration {
		out = append(out, info.level)
	}
	return out
}

// Standard returns the seven completed-degree levels offered when a school
// does not pick its own list.
func Standard() []Level {
	out := make([]Level, 0, len(enumeration))
	for _, info := range enumeration {
		if info.standard {
			out = append(out, info.level)
		}
	}
	return out
}

// Valid reports whether the level belongs to the enumeration.
func (l Level) Valid() bool {
	_, ok := byLevel[l]
	return ok
}

// Value is the code submitted when the level is selected.
func (l Level) Value() string {
	return byLevel[l].value
}

// DefaultLabel is the human readable label used when a school does not
// override it.
func (l Level) DefaultLabel() string {
	return byLevel[l].label
}

// ParseLevel resolves a configuration string (case insensitive key) to a
// Level.
func ParseLevel(raw string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(raw)))
	if !level.Valid() {
		return "", fmt.Errorf("education: unknown level %q", raw)
	}
	return level, nil
}

// UnmarshalText lets levels be decoded from JSON and YAML strings, including
// as map keys.
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// Selection returns the selectable options for a school. An empty levels
// list offers the standard levels; otherwise only the requested levels are
// returned, in enumeration order. Every option is labelled with the override
// when one is present and non-empty, else with the default label. Unknown
// levels are ignored.
func Selection(levels []Level, overrides map[Level]string) []model.Option {
	wanted := make(map[Level]struct{}, len(levels))
	for _, level := range levels {
		wanted[level] = struct{}{}
	}

	out := make([]model.Option, 0, len(enumeration))
	for _, info := range enumeration {
		if len(wanted) == 0 {
			if !info.standard {
				continue
			}
		} else if _, ok := wanted[info.level]; !ok {
			continue
		}
		label := info.label
		if override := strings.TrimSpace(overrides[info.level]); override != "" {
			label = override
		}
		out = append(out, model.Option{
			Key:   string(info.level),
			Value: info.value,
			Label: label,
		})
	}
	return out
}
