package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDuplicateFieldName is returned by ValidateNames when two top level
// descriptors share a name.
var ErrDuplicateFieldName = errors.New("model: duplicate field name")

// Rule returns the first validation rule of the given kind.
func (f Field) Rule(kind string) (ValidationRule, bool) {
	for _, rule := range f.Validations {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return ValidationRule{}, false
}

// IsRequired reports whether the field carries a required rule.
func (f Field) IsRequired() bool {
	_, ok := f.Rule(ValidationRuleRequired)
	return ok
}

// IsGroup reports whether the descriptor is a field group.
func (f Field) IsGroup() bool {
	return f.Type == InputTypeGroup
}

// GroupLabel returns the label of a group, read from its label member.
func (f Field) GroupLabel() string {
	for _, member := range f.Nested {
		if member.Type == InputTypeGroupLabel {
			return member.Label
		}
	}
	return ""
}

// Members returns the input members of a group, skipping the label entry.
func (f Field) Members() []Field {
	if !f.IsGroup() {
		return nil
	}
	out := make([]Field, 0, len(f.Nested))
	for _, member := range f.Nested {
		if member.Type == InputTypeGroupLabel {
			continue
		}
		out = append(out, member)
	}
	return out
}

// InputName is the key a submitted value is stored under. Groups submit under
// the name shared by their members; label entries submit nothing.
func (f Field) InputName() FieldName {
	switch f.Type {
	case InputTypeGroupLabel:
		return ""
	case InputTypeGroup:
		for _, member := range f.Members() {
			if member.Name != "" {
				return member.Name
			}
		}
		return ""
	default:
		return f.Name
	}
}

// Clone returns a deep copy so callers can modify the result without touching
// shared descriptors.
func (f Field) Clone() Field {
	out := f
	if f.Validations != nil {
		out.Validations = make([]ValidationRule, len(f.Validations))
		for i, rule := range f.Validations {
			out.Validations[i] = rule.clone()
		}
	}
	if f.Options != nil {
		out.Options = append([]Option(nil), f.Options...)
	}
	if f.Nested != nil {
		out.Nested = CloneAll(f.Nested)
	}
	if f.Metadata != nil {
		out.Metadata = make(map[string]string, len(f.Metadata))
		for k, v := range f.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

func (r ValidationRule) clone() ValidationRule {
	out := r
	if r.Params != nil {
		out.Params = make(map[string]string, len(r.Params))
		for k, v := range r.Params {
			out.Params[k] = v
		}
	}
	return out
}

// IntParam parses Params["value"] as an integer.
func (r ValidationRule) IntParam() (int, bool) {
	if r.Params == nil {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(r.Params["value"]))
	if err != nil {
		return 0, false
	}
	return value, true
}

// CloneAll deep copies a field list.
func CloneAll(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		out[i] = field.Clone()
	}
	return out
}

// Names lists the top level names in order.
func Names(fields []Field) []FieldName {
	out := make([]FieldName, 0, len(fields))
	for _, field := range fields {
		out = append(out, field.Name)
	}
	return out
}

// ValidateNames checks that no two top level descriptors share a name.
func ValidateNames(fields []Field) error {
	seen := make(map[FieldName]int, len(fields))
	for idx, field := range fields {
		if prev, ok := seen[field.Name]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateFieldName, field.Name, prev, idx)
		}
		seen[field.Name] = idx
	}
	return nil
}

// Find returns the top level descriptor with the given name.
func Find(fields []Field, name FieldName) (Field, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
