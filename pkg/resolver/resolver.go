package resolver

import (
	"github.com/goliatone/go-leadform/pkg/education"
	"github.com/goliatone/go-leadform/pkg/fields"
	"github.com/goliatone/go-leadform/pkg/model"
	"github.com/goliatone/go-leadform/pkg/program"
)

// Request is the input of a field resolution.
type Request struct {
	Program    program.Program
	BaseFields []model.Field
}

// FieldsResolver maps a program and base fields to the final field list.
type FieldsResolver interface {
	Resolve(Request) []model.Field
}

// FieldsResolverFunc adapts a function into a FieldsResolver.
type FieldsResolverFunc func(Request) []model.Field

// Resolve calls the underlying function.
func (fn FieldsResolverFunc) Resolve(req Request) []model.Field {
	return fn(req)
}

// Rules is the data a school supplies to the standard resolver. The
// allow-lists live in configuration rather than code.
type Rules struct {
	EducationLevelProgramIDs []int64                    `json:"educationLevelProgramIds" yaml:"educationLevelProgramIds"`
	NursingProgramIDs        []int64                    `json:"nursingProgramIds" yaml:"nursingProgramIds"`
	EducationLevels          []education.Level          `json:"educationLevels" yaml:"educationLevels"`
	EducationLabelOverrides  map[education.Level]string `json:"educationLabelOverrides" yaml:"educationLabelOverrides"`
	EducationLabel           string                     `json:"educationLabel" yaml:"educationLabel"`
	NursingQuestion          string                     `json:"nursingQuestion" yaml:"nursingQuestion"`
	MilitaryDefault          string                     `json:"militaryDefault" yaml:"militaryDefault"`
}

// Step is one conditional addition. Steps run in order and append after the
// base fields.
type Step struct {
	Name    string
	Applies func(program.Program) bool
	Build   func() model.Field
}

// Resolver appends the configured conditional fields to the base list:
// education level, then nursing license, then military status.
type Resolver struct {
	steps []Step
}

var _ FieldsResolver = (*Resolver)(nil)

// New builds the standard resolver from rules. The education option list is
// computed once here; each Resolve call clones it into a fresh descriptor.
func New(rules Rules) *Resolver {
	educationIDs := NewIDSet(rules.EducationLevelProgramIDs...)
	nursingIDs := NewIDSet(rules.NursingProgramIDs...)
	levels := education.Selection(rules.EducationLevels, rules.EducationLabelOverrides)

	educationOptions := []fields.Option{fields.WithOptions(levels)}
	if rules.EducationLabel != "" {
		educationOptions = append(educationOptions, fields.WithLabel(rules.EducationLabel))
	}

	return NewWithSteps(
		Step{
			Name:    "educationLevel",
			Applies: func(p program.Program) bool { return educationIDs.Contains(p.ID) },
			Build:   func() model.Field { return fields.EducationLevelSelect(educationOptions...) },
		},
		Step{
			Name:    "nursingLicense",
			Applies: func(p program.Program) bool { return nursingIDs.Contains(p.ID) },
			Build:   func() model.Field { return fields.RNQuestion(rules.NursingQuestion) },
		},
		Step{
			Name:    "military",
			Applies: Always,
			Build:   func() model.Field { return fields.MilitaryFieldGroup(rules.MilitaryDefault) },
		},
	)
}

// NewWithSteps builds a resolver from custom steps.
func NewWithSteps(steps ...Step) *Resolver {
	out := make([]Step, 0, len(steps))
	for _, step := range steps {
		if step.Build == nil {
			continue
		}
		if step.Applies == nil {
			step.Applies = Always
		}
		out = append(out, step)
	}
	return &Resolver{steps: out}
}

// Always is a predicate that matches every program.
func Always(program.Program) bool { return true }

// Resolve returns a fresh list: cloned base fields followed by every step
// that applies. Appended descriptors own their names, so a base field that
// repeats an appended name, or an earlier base name, is dropped and the
// output never repeats a name.
func (r *Resolver) Resolve(req Request) []model.Field {
	var extra []model.Field
	for _, step := range r.stepsOrNil() {
		if step.Applies(req.Program) {
			extra = append(extra, step.Build())
		}
	}

	out := make([]model.Field, 0, len(req.BaseFields)+len(extra))
	seen := make(map[model.FieldName]struct{}, cap(out))
	for _, field := range extra {
		seen[field.Name] = struct{}{}
	}
	for _, field := range req.BaseFields {
		if _, dup := seen[field.Name]; dup {
			continue
		}
		seen[field.Name] = struct{}{}
		out = append(out, field.Clone())
	}

	appended := make(map[model.FieldName]struct{}, len(extra))
	for _, field := range extra {
		if _, dup := appended[field.Name]; dup {
			continue
		}
		appended[field.Name] = struct{}{}
		out = append(out, field)
	}
	return out
}

// Steps lists the names of the configured steps in order.
func (r *Resolver) Steps() []string {
	names := make([]string, 0, len(r.stepsOrNil()))
	for _, step := range r.stepsOrNil() {
		names = append(names, step.Name)
	}
	return names
}

func (r *Resolver) stepsOrNil() []Step {
	if r == nil {
		return nil
	}
	return r.steps
}
