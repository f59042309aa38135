package leads

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-leadform/pkg/model"
)

// Rule names reported in issues besides the model validation kinds.
const (
	RuleEnum = "enum"
	RuleType = "type"
)

// Issue is one validation failure tied to a submitted field.
type Issue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result captures the outcome of validating a submission.
type Result struct {
	Valid  bool           `json:"valid"`
	Issues []Issue        `json:"issues,omitempty"`
	Values map[string]any `json:"-"`
}

// Error renders the issues as a single message.
func (r Result) Error() string {
	if r.Valid {
		return ""
	}
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return "leads: invalid submission: " + strings.Join(parts, "; ")
}

// Validate normalises values against fields and checks them with the schema
// built from the same descriptors. Every failure is collected; messages come
// from the descriptor's rule when it defines one.
func Validate(fields []model.Field, values map[string]any) Result {
	normalised := Normalize(fields, values)
	result := Result{Valid: true, Values: normalised}

	err := Schema(fields).VisitJSON(toJSONObject(normalised), openapi3.MultiErrors())
	if err == nil {
		return result
	}

	index := indexFields(fields)
	seen := make(map[string]struct{})
	for _, single := range flatten(err) {
		issue := toIssue(single, index)
		key := issue.Field + "\x00" + issue.Rule
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result.Issues = append(result.Issues, issue)
	}

	sort.SliceStable(result.Issues, func(i, j int) bool {
		return index.position(result.Issues[i].Field) < index.position(result.Issues[j].Field)
	})
	result.Valid = len(result.Issues) == 0
	return result
}

// Normalize keeps the values belonging to fields, trims strings, drops blank
// entries and coerces scalars to the shape the schema expects: booleans for
// checkboxes, strings for everything else.
func Normalize(fields []model.Field, values map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		name := string(field.InputName())
		if name == "" {
			continue
		}
		raw, ok := values[name]
		if !ok || raw == nil {
			continue
		}

		if field.Type == model.InputTypeCheckbox {
			out[name] = coerceBool(raw)
			continue
		}
		if text, ok := coerceString(raw); ok {
			if text == "" {
				continue
			}
			out[name] = text
			continue
		}
		out[name] = raw
	}
	return out
}

func coerceBool(raw any) any {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "yes", "y":
			return true
		case "off", "no", "n", "":
			return false
		}
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return raw
}

func coerceString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v), true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// toJSONObject round trips through encoding/json so nested values match the
// types the schema visitor expects.
func toJSONObject(values map[string]any) map[string]any {
	data, err := json.Marshal(values)
	if err != nil {
		return values
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return values
	}
	return out
}

func flatten(err error) []error {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var out []error
		for _, inner := range multi {
			out = append(out, flatten(inner)...)
		}
		return out
	}
	return []error{err}
}

var missingProperty = regexp.MustCompile(`property "([^"]+)" is missing`)

func toIssue(err error, index fieldIndex) Issue {
	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &schemaErr) {
		return Issue{Rule: RuleType, Message: err.Error()}
	}

	name := ""
	if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
		name = pointer[0]
	}
	if name == "" {
		if m := missingProperty.FindStringSubmatch(schemaErr.Reason); len(m) == 2 {
			name = m[1]
		}
	}

	rule := schemaErr.SchemaField
	switch rule {
	case model.ValidationRuleRequired, model.ValidationRuleMinLength,
		model.ValidationRuleMaxLength, model.ValidationRulePattern, RuleEnum:
	default:
		rule = RuleType
	}

	field, _ := index.field(name)
	return Issue{Field: name, Rule: rule, Message: messageFor(field, rule)}
}

func messageFor(field model.Field, rule string) string {
	label := titleOf(field)
	if label == "" {
		label = string(field.InputName())
	}

	switch rule {
	case model.ValidationRuleRequired:
		if r := requiredRule(field); r != nil && r.Message != "" {
			return r.Message
		}
		return fmt.Sprintf("%s is required.", label)
	case model.ValidationRuleMinLength, model.ValidationRuleMaxLength, model.ValidationRulePattern:
		r, ok := field.Rule(rule)
		if ok && r.Message != "" {
			return r.Message
		}
		if !ok && rule == model.ValidationRuleMinLength {
			if r := requiredRule(field); r != nil && r.Message != "" {
				return r.Message
			}
			return fmt.Sprintf("%s is required.", label)
		}
		n, _ := r.IntParam()
		switch rule {
		case model.ValidationRuleMinLength:
			return fmt.Sprintf("%s must be at least %d characters.", label, n)
		case model.ValidationRuleMaxLength:
			return fmt.Sprintf("%s must be at most %d characters.", label, n)
		default:
			return fmt.Sprintf("%s is not valid.", label)
		}
	case RuleEnum:
		return fmt.Sprintf("%s must be one of the listed options.", label)
	default:
		return fmt.Sprintf("%s has an unexpected value.", label)
	}
}

type fieldIndex struct {
	byName map[string]model.Field
	order  map[string]int
}

func indexFields(fields []model.Field) fieldIndex {
	idx := fieldIndex{
		byName: make(map[string]model.Field, len(fields)),
		order:  make(map[string]int, len(fields)),
	}
	for i, field := range fields {
		name := string(field.InputName())
		if name == "" {
			continue
		}
		if _, exists := idx.byName[name]; exists {
			continue
		}
		idx.byName[name] = field
		idx.order[name] = i
	}
	return idx
}

func (idx fieldIndex) field(name string) (model.Field, bool) {
	field, ok := idx.byName[name]
	return field, ok
}

func (idx fieldIndex) position(name string) int {
	if pos, ok := idx.order[name]; ok {
		return pos
	}
	return len(idx.order)
}
