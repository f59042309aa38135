package model

// InputType is the semantic input kind a renderer should use for a field.
type InputType string

const (
	InputTypeText       InputType = "text"
	InputTypeSelect     InputType = "select"
	InputTypeRadio      InputType = "radio"
	InputTypeCheckbox   InputType = "checkbox"
	InputTypeTel        InputType = "tel"
	InputTypeEmail      InputType = "email"
	InputTypeNumber     InputType = "number"
	InputTypeAddress    InputType = "address"
	InputTypeGroup      InputType = "group"
	InputTypeGroupLabel InputType = "fieldGroupLabel"
)

// Width is the layout hint a renderer applies to the input container.
type Width string

const (
	WidthFull    Width = "full"
	WidthHalf    Width = "half"
	WidthFifty   Width = "50%"
	WidthQuarter Width = "25%"
)

// Format is an optional presentation hint for radio style inputs.
type Format string

const (
	FormatStandard Format = "standard"
	FormatLabel    Format = "label"
	FormatNumber   Format = "number"
)

const (
	ValidationRuleRequired  = "required"
	ValidationRuleMinLength = "minLength"
	ValidationRuleMaxLength = "maxLength"
	ValidationRulePattern   = "pattern"
)

// ValidationRule represents a single validation constraint applied to a field.
// Length limits encode their threshold in Params["value"] while pattern rules
// keep the expression in Params["pattern"]. Message is the user facing text
// shown when the rule fails; an empty message lets consumers pick a default.
type ValidationRule struct {
	Kind    string            `json:"kind" yaml:"kind"`
	Params  map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	Message string            `json:"message,omitempty" yaml:"message,omitempty"`
}

// Option is a selectable entry for select inputs.
type Option struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field models one input inside a lead form. Groups reuse the same struct with
// Type set to InputTypeGroup and their members listed in Nested, the first of
// which is an InputTypeGroupLabel entry carrying the group label.
type Field struct {
	Name         FieldName         `json:"name" yaml:"name"`
	Type         InputType         `json:"type" yaml:"type"`
	Label        string            `json:"label,omitempty" yaml:"label,omitempty"`
	Value        string            `json:"value,omitempty" yaml:"value,omitempty"`
	DefaultValue string            `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Width        Width             `json:"width,omitempty" yaml:"width,omitempty"`
	Format       Format            `json:"format,omitempty" yaml:"format,omitempty"`
	PII          bool              `json:"pii,omitempty" yaml:"pii,omitempty"`
	Validations  []ValidationRule  `json:"validationRules,omitempty" yaml:"validationRules,omitempty"`
	Options      []Option          `json:"options,omitempty" yaml:"options,omitempty"`
	Nested       []Field           `json:"subFields,omitempty" yaml:"subFields,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Form is the envelope handed to the external form component: the resolved
// field list plus the school context it was resolved for.
type Form struct {
	SchoolID   int               `json:"schoolId" yaml:"schoolId"`
	School     string            `json:"school" yaml:"school"`
	SchoolName string            `json:"schoolName,omitempty" yaml:"schoolName,omitempty"`
	Flow       string            `json:"flow" yaml:"flow"`
	ProgramID  string            `json:"programId,omitempty" yaml:"programId,omitempty"`
	Fields     []Field           `json:"fields" yaml:"fields"`
	TCPA       string            `json:"tcpa,omitempty" yaml:"tcpa,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
