package leads

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-leadform/pkg/model"
)

// Schema builds the OpenAPI object schema that a submission for fields must
// satisfy. Properties are keyed by each field's input name; groups submit a
// single value drawn from their members.
func Schema(fields []model.Field) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	var required []string

	for _, field := range fields {
		name := string(field.InputName())
		if name == "" {
			continue
		}
		prop := propertySchema(field)
		prop.Title = titleOf(field)
		schema.WithProperty(name, prop)
		if requiredRule(field) != nil {
			required = append(required, name)
		}
	}

	if len(required) > 0 {
		schema.WithRequired(required)
	}
	return schema
}

func propertySchema(field model.Field) *openapi3.Schema {
	switch {
	case field.IsGroup():
		return enumSchema(memberValues(field))
	case field.Type == model.InputTypeCheckbox:
		return openapi3.NewBoolSchema()
	case len(field.Options) > 0:
		values := make([]string, 0, len(field.Options))
		for _, opt := range field.Options {
			values = append(values, opt.Value)
		}
		return enumSchema(values)
	}

	prop := openapi3.NewStringSchema()
	if rule, ok := field.Rule(model.ValidationRuleMinLength); ok {
		if n, ok := rule.IntParam(); ok && n >= 0 {
			prop.WithMinLength(int64(n))
		}
	} else if field.IsRequired() {
		prop.WithMinLength(1)
	}
	if rule, ok := field.Rule(model.ValidationRuleMaxLength); ok {
		if n, ok := rule.IntParam(); ok && n >= 0 {
			prop.WithMaxLength(int64(n))
		}
	}
	if rule, ok := field.Rule(model.ValidationRulePattern); ok && rule.Params["pattern"] != "" {
		prop.WithPattern(rule.Params["pattern"])
	}
	return prop
}

func enumSchema(values []string) *openapi3.Schema {
	prop := openapi3.NewStringSchema()
	if len(values) == 0 {
		return prop
	}
	enum := make([]any, 0, len(values))
	for _, v := range values {
		enum = append(enum, v)
	}
	return prop.WithEnum(enum...)
}

func memberValues(group model.Field) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, member := range group.Members() {
		if member.Value == "" {
			continue
		}
		if _, dup := seen[member.Value]; dup {
			continue
		}
		seen[member.Value] = struct{}{}
		out = append(out, member.Value)
	}
	return out
}

// requiredRule returns the required rule of a field, or of the first group
// member that has one.
func requiredRule(field model.Field) *model.ValidationRule {
	if rule, ok := field.Rule(model.ValidationRuleRequired); ok {
		return &rule
	}
	for _, member := range field.Members() {
		if rule, ok := member.Rule(model.ValidationRuleRequired); ok {
			return &rule
		}
	}
	return nil
}

func titleOf(field model.Field) string {
	if field.IsGroup() {
		return field.GroupLabel()
	}
	return field.Label
}
