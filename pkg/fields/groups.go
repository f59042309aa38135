package fields

import "github.com/goliatone/go-leadform/pkg/model"

const (
	MilitaryQuestion = "Are you or your spouse active duty, a reservist, or veteran of the U.S. Military?"
	RNQuestionLabel  = "Do you currently have your registered nurse (RN) License?"
	AssocQuestion    = "Do you have an associate degree?"
)

// FieldGroupLabel builds the label entry that heads a group.
func FieldGroupLabel(name model.FieldName, label string) model.Field {
	return model.Field{
		Name:  name,
		Type:  model.InputTypeGroupLabel,
		Label: label,
	}
}

// FieldGroup wraps members into a named group.
func FieldGroup(name model.FieldName, members ...model.Field) model.Field {
	return model.Field{
		Name:   name,
		Type:   model.InputTypeGroup,
		Nested: members,
	}
}

// MilitaryFieldGroup builds the military status yes/no question. An empty
// defaultValue preselects "no".
func MilitaryFieldGroup(defaultValue string) model.Field {
	if defaultValue == "" {
		defaultValue = model.AnswerNo
	}
	return FieldGroup(model.GroupMilitary,
		FieldGroupLabel(model.GroupMilitaryLabel, MilitaryQuestion),
		MilitaryExpStandard(WithLabel("Yes"), WithValue(model.AnswerYes)),
		MilitaryExpStandard(WithLabel("No"), WithValue(model.AnswerNo), WithDefaultValue(defaultValue)),
	)
}

// RNQuestion builds the registered nurse license yes/no question. An empty
// label uses RNQuestionLabel.
func RNQuestion(label string) model.Field {
	if label == "" {
		label = RNQuestionLabel
	}
	return FieldGroup(model.GroupHasRN,
		FieldGroupLabel(model.GroupHasRNLabel, label),
		HasRNStandard(WithLabel("Yes"), WithValue(model.AnswerYes)),
		HasRNStandard(WithLabel("No"), WithValue(model.AnswerNo)),
	)
}

// HasAssocDegree builds the associate degree question where in-progress
// degrees count as yes.
func HasAssocDegree() model.Field {
	return FieldGroup(model.GroupAssocDegree,
		FieldGroupLabel(model.GroupAssocDegreeLabel, AssocQuestion),
		AssocDegree(WithLabel("Yes or In progress"), WithValue(model.AnswerYes)),
		AssocDegree(WithLabel("No"), WithValue(model.AnswerNo)),
	)
}

// HasAssocDegreeWithLabel builds the associate degree question with a custom
// prompt.
func HasAssocDegreeWithLabel(label string) model.Field {
	return FieldGroup(model.GroupAssocDegree,
		FieldGroupLabel(model.GroupAssocDegreeLabel, label),
		AssocDegree(WithLabel("Yes"), WithValue(model.AnswerYes)),
		AssocDegree(WithLabel("No"), WithValue(model.AnswerNo)),
	)
}

// YesNo configures the two answers of a yes/no group. Empty fields fall back
// to "Yes"/"yes" and "No"/"no".
type YesNo struct {
	Label    string
	YesLabel string
	YesValue string
	NoLabel  string
	NoValue  string
	Name     model.FieldName
}

func (y YesNo) withDefaults() YesNo {
	if y.YesLabel == "" {
		y.YesLabel = "Yes"
	}
	if y.YesValue == "" {
		y.YesValue = model.AnswerYes
	}
	if y.NoLabel == "" {
		y.NoLabel = "No"
	}
	if y.NoValue == "" {
		y.NoValue = model.AnswerNo
	}
	return y
}

// GenericRadio builds a yes/no group submitting under cfg.Name.
func GenericRadio(cfg YesNo) model.Field {
	cfg = cfg.withDefaults()
	return FieldGroup(model.GroupGeneric,
		FieldGroupLabel(model.GroupGenericLabel, cfg.Label),
		GenericRadioOption(WithLabel(cfg.YesLabel), WithValue(cfg.YesValue), WithName(cfg.Name)),
		GenericRadioOption(WithLabel(cfg.NoLabel), WithValue(cfg.NoValue), WithName(cfg.Name)),
	)
}

// LevelOfEducationRadio builds a two answer level of education group.
// cfg.Name is ignored.
func LevelOfEducationRadio(cfg YesNo) model.Field {
	cfg = cfg.withDefaults()
	return FieldGroup(model.GroupLevelOfEducation,
		FieldGroupLabel(model.GroupLevelOfEducationLabel, cfg.Label),
		LevelOfEducationRadioOption(WithLabel(cfg.YesLabel), WithValue(cfg.YesValue)),
		LevelOfEducationRadioOption(WithLabel(cfg.NoLabel), WithValue(cfg.NoValue)),
	)
}
