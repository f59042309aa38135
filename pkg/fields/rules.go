package fields

import (
	"strconv"

	"github.com/goliatone/go-leadform/pkg/model"
)

const (
	// NamePattern requires at least one letter in a name.
	NamePattern = `[A-Za-z]`
	// EmailPattern is the address shape accepted by the email field.
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
)

func required(message string) model.ValidationRule {
	return model.ValidationRule{Kind: model.ValidationRuleRequired, Message: message}
}

func minLength(n int, message string) model.ValidationRule {
	return model.ValidationRule{
		Kind:    model.ValidationRuleMinLength,
		Params:  map[string]string{"value": strconv.Itoa(n)},
		Message: message,
	}
}

func maxLength(n int, message string) model.ValidationRule {
	return model.ValidationRule{
		Kind:    model.ValidationRuleMaxLength,
		Params:  map[string]string{"value": strconv.Itoa(n)},
		Message: message,
	}
}

func pattern(expr, message string) model.ValidationRule {
	return model.ValidationRule{
		Kind:    model.ValidationRulePattern,
		Params:  map[string]string{"pattern": expr},
		Message: message,
	}
}

func rules(list ...model.ValidationRule) []model.ValidationRule {
	return list
}
