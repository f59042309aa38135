package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-leadform/pkg/model"
)

// JSON renders forms as JSON documents.
type JSON struct{}

// NewJSON returns the json renderer.
func NewJSON() *JSON { return &JSON{} }

func (*JSON) Name() string        { return "json" }
func (*JSON) ContentType() string { return "application/json" }

// Render encodes the form, indented unless options ask for compact output.
func (*JSON) Render(ctx context.Context, form model.Form, options RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	form = Apply(form, options)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if !options.Compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(form); err != nil {
		return nil, fmt.Errorf("render: json: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML renders forms as YAML documents.
type YAML struct{}

// NewYAML returns the yaml renderer.
func NewYAML() *YAML { return &YAML{} }

func (*YAML) Name() string        { return "yaml" }
func (*YAML) ContentType() string { return "application/yaml" }

// Render encodes the form with two space indentation.
func (*YAML) Render(ctx context.Context, form model.Form, options RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	form = Apply(form, options)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(form); err != nil {
		return nil, fmt.Errorf("render: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render: yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Apply returns a copy of form with option values and errors attached to the
// matching fields.
func Apply(form model.Form, options RenderOptions) model.Form {
	if len(options.Values) == 0 && len(options.Errors) == 0 {
		return form
	}
	out := form
	out.Fields = model.CloneAll(form.Fields)
	for i := range out.Fields {
		field := &out.Fields[i]
		name := string(field.InputName())
		if name == "" {
			continue
		}
		if raw, ok := options.Values[name]; ok && raw != nil {
			prefill(field, fmt.Sprint(raw))
		}
		if messages := options.Errors[name]; len(messages) > 0 {
			if field.Metadata == nil {
				field.Metadata = make(map[string]string, 1)
			}
			field.Metadata["errors"] = strings.Join(messages, "\n")
		}
	}
	return out
}

// prefill sets a plain field's value. Groups record the selection as the
// default value of every member, matching how a preselected answer is
// expressed.
func prefill(field *model.Field, value string) {
	if !field.IsGroup() {
		field.Value = value
		return
	}
	for i := range field.Nested {
		if field.Nested[i].Type == model.InputTypeGroupLabel {
			continue
		}
		field.Nested[i].DefaultValue = value
	}
}
