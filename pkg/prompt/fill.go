package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-leadform/pkg/leads"
	"github.com/goliatone/go-leadform/pkg/model"
)

const skipOption = "(skip)"

// Fill prompts for every descriptor in order and returns the answers keyed by
// input name. Text answers are checked against the field's own rules before
// they are accepted; optional fields left blank are omitted.
func Fill(ctx context.Context, driver Driver, fields []model.Field) (map[string]any, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}
	values := make(map[string]any, len(fields))
	for _, field := range fields {
		name := string(field.InputName())
		if name == "" {
			continue
		}

		value, ok, err := ask(ctx, driver, field)
		if err != nil {
			return nil, fmt.Errorf("prompt: %s: %w", name, err)
		}
		if ok {
			values[name] = value
		}
	}
	return values, nil
}

func ask(ctx context.Context, driver Driver, field model.Field) (any, bool, error) {
	switch {
	case field.IsGroup():
		return askChoice(ctx, driver, field.GroupLabel(), groupChoices(field), !isOptional(field))
	case field.Type == model.InputTypeCheckbox:
		answer, err := driver.Confirm(ctx, ConfirmConfig{Message: messageFor(field)})
		return answer, err == nil, err
	case len(field.Options) > 0:
		choices := make([]choice, 0, len(field.Options))
		for _, opt := range field.Options {
			choices = append(choices, choice{label: opt.Label, value: opt.Value, selected: opt.Value == field.Value})
		}
		return askChoice(ctx, driver, messageFor(field), choices, field.IsRequired())
	default:
		answer, err := driver.Input(ctx, InputConfig{
			Message:   messageFor(field),
			Default:   field.Value,
			Validator: validatorFor(field),
		})
		if err != nil {
			return nil, false, err
		}
		answer = strings.TrimSpace(answer)
		return answer, answer != "", nil
	}
}

type choice struct {
	label    string
	value    string
	selected bool
}

func groupChoices(group model.Field) []choice {
	var out []choice
	for _, member := range group.Members() {
		out = append(out, choice{
			label:    member.Label,
			value:    member.Value,
			selected: member.DefaultValue != "" && member.DefaultValue == member.Value,
		})
	}
	return out
}

func askChoice(ctx context.Context, driver Driver, message string, choices []choice, required bool) (any, bool, error) {
	labels := make([]string, 0, len(choices)+1)
	defaultIndex := -1
	for i, c := range choices {
		labels = append(labels, c.label)
		if c.selected && defaultIndex < 0 {
			defaultIndex = i
		}
	}
	if !required {
		labels = append(labels, skipOption)
	}

	idx, err := driver.Select(ctx, SelectConfig{Message: message, Options: labels, DefaultIndex: defaultIndex})
	if err != nil {
		return nil, false, err
	}
	if idx < 0 || idx >= len(labels) {
		return nil, false, fmt.Errorf("selection %d out of range", idx)
	}
	if idx >= len(choices) {
		return nil, false, nil
	}
	return choices[idx].value, true, nil
}

// validatorFor checks a single answer with the same schema used to validate
// whole submissions.
func validatorFor(field model.Field) func(string) error {
	name := string(field.InputName())
	single := []model.Field{field}
	return func(answer string) error {
		result := leads.Validate(single, map[string]any{name: answer})
		if result.Valid {
			return nil
		}
		return errors.New(result.Issues[0].Message)
	}
}

func messageFor(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return string(field.Name)
}

func isOptional(group model.Field) bool {
	for _, member := range group.Members() {
		if member.IsRequired() {
			return false
		}
	}
	return true
}
