package fields

import "github.com/goliatone/go-leadform/pkg/model"

// Props carries the per call overrides a constructor accepts. Zero values
// mean "use the constructor default".
type Props struct {
	Label        string
	Value        string
	DefaultValue string
	Name         model.FieldName
	Width        model.Width
	Options      []model.Option
}

// Option mutates Props before a descriptor is built.
type Option func(*Props)

// WithLabel overrides the default label.
func WithLabel(label string) Option {
	return func(p *Props) {
		p.Label = label
	}
}

// WithValue sets the value a radio/checkbox option submits, or the preset
// value of a select.
func WithValue(value string) Option {
	return func(p *Props) {
		p.Value = value
	}
}

// WithDefaultValue marks the option that should start selected.
func WithDefaultValue(value string) Option {
	return func(p *Props) {
		p.DefaultValue = value
	}
}

// WithName overrides the field key. Only generic constructors honour it.
func WithName(name model.FieldName) Option {
	return func(p *Props) {
		p.Name = name
	}
}

// WithWidth overrides the layout hint.
func WithWidth(width model.Width) Option {
	return func(p *Props) {
		p.Width = width
	}
}

// WithOptions attaches select options to the descriptor.
func WithOptions(options []model.Option) Option {
	return func(p *Props) {
		p.Options = append([]model.Option(nil), options...)
	}
}

func resolveProps(options []Option) Props {
	var props Props
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&props)
	}
	return props
}

func (p Props) label(fallback string) string {
	if p.Label != "" {
		return p.Label
	}
	return fallback
}

func (p Props) width(fallback model.Width) model.Width {
	if p.Width != "" {
		return p.Width
	}
	return fallback
}

func (p Props) name(fallback model.FieldName) model.FieldName {
	if p.Name != "" {
		return p.Name
	}
	return fallback
}
