package fields

import "github.com/goliatone/go-leadform/pkg/model"

func selectField(name model.FieldName, p Props, label, message string) model.Field {
	return model.Field{
		Type:        model.InputTypeSelect,
		Name:        name,
		Label:       p.label(label),
		Value:       p.Value,
		Validations: rules(required(message)),
		Width:       p.width(model.WidthFull),
		Options:     p.Options,
	}
}

// radio builds one option of a radio input. Label-format options sit two per
// row, standard ones four per row.
func radio(name model.FieldName, p Props, format model.Format) model.Field {
	width := model.WidthFifty
	if format == model.FormatStandard {
		width = model.WidthQuarter
	}
	return model.Field{
		Type:         model.InputTypeRadio,
		Name:         name,
		Label:        p.Label,
		Value:        p.Value,
		DefaultValue: p.DefaultValue,
		Validations:  rules(required("")),
		Width:        p.width(width),
		Format:       format,
	}
}

// GradYearSelect builds the graduation year select.
func GradYearSelect(options ...Option) model.Field {
	field := selectField(model.FieldGradYear, resolveProps(options), "Graduation year", "Graduation year is required.")
	field.PII = true
	return field
}

// CampusSelect builds the desired campus select.
func CampusSelect(options ...Option) model.Field {
	return selectField(model.FieldCampus, resolveProps(options), "Desired campus", "Campus is required.")
}

// StartTerm builds the anticipated start term select.
func StartTerm(options ...Option) model.Field {
	field := selectField(model.FieldStartDate, resolveProps(options), "Anticipated start term", "Start term is required.")
	field.PII = true
	return field
}

// StartDateSelect builds the anticipated start date select.
func StartDateSelect(options ...Option) model.Field {
	return selectField(model.FieldStartDate, resolveProps(options), "Anticipated start date", "Start Date is required")
}

// EducationLevelSelect builds the highest level of education select. Callers
// attach the school's level list with WithOptions.
func EducationLevelSelect(options ...Option) model.Field {
	return selectField(model.FieldLevelOfEducation, resolveProps(options), "Highest level of education", "Level of education is required.")
}

// GPASelect builds the GPA select.
func GPASelect(options ...Option) model.Field {
	return selectField(model.FieldGPA, resolveProps(options), "GPA", "GPA is required")
}

// YearsWorkedSelect builds the professional experience select.
func YearsWorkedSelect(options ...Option) model.Field {
	return selectField(model.FieldYearsOfWorkExperience, resolveProps(options),
		"Years of professional-level experience in this field", "Work experience is required")
}

// EducationLevel builds one label-format level of education option.
func EducationLevel(options ...Option) model.Field {
	return radio(model.FieldLevelOfEducation, resolveProps(options), model.FormatLabel)
}

// GPA builds one label-format GPA option.
func GPA(options ...Option) model.Field {
	return radio(model.FieldGPA, resolveProps(options), model.FormatLabel)
}

// YearsWorked builds the numeric years of experience radio.
func YearsWorked(options ...Option) model.Field {
	p := resolveProps(options)
	field := radio(model.FieldYearsOfWorkExperience, p, model.FormatNumber)
	field.Value = ""
	return field
}

// StartDate builds one label-format start date option.
func StartDate(options ...Option) model.Field {
	return radio(model.FieldStartDate, resolveProps(options), model.FormatLabel)
}

// MilitaryExp builds one label-format military experience option.
func MilitaryExp(options ...Option) model.Field {
	return radio(model.FieldMilitary, resolveProps(options), model.FormatLabel)
}

// MilitaryExpStandard builds one standard-format military experience option.
func MilitaryExpStandard(options ...Option) model.Field {
	return radio(model.FieldMilitary, resolveProps(options), model.FormatStandard)
}

// HasRN builds one label-format RN license option.
func HasRN(options ...Option) model.Field {
	return radio(model.FieldHasRNLicense, resolveProps(options), model.FormatLabel)
}

// HasRNStandard builds one standard-format RN license option.
func HasRNStandard(options ...Option) model.Field {
	return radio(model.FieldHasRNLicense, resolveProps(options), model.FormatStandard)
}

// RNDegreeInterest builds one degree interest option for nursing flows.
func RNDegreeInterest(options ...Option) model.Field {
	return radio(model.FieldDegreeInterest, resolveProps(options), model.FormatLabel)
}

// RNProgramTrack builds one program track option for nursing flows.
func RNProgramTrack(options ...Option) model.Field {
	return radio(model.FieldProgramTrack, resolveProps(options), model.FormatLabel)
}

// AssocDegree builds one associate degree option. Unlike the other standard
// options it keeps the two-per-row width.
func AssocDegree(options ...Option) model.Field {
	p := resolveProps(options)
	field := radio(model.FieldUndergradCompleted, p, model.FormatStandard)
	field.Width = p.width(model.WidthFifty)
	return field
}

// BSW builds one "bachelor of social work" option.
func BSW(options ...Option) model.Field {
	return radio(model.FieldHasBSW, resolveProps(options), model.FormatLabel)
}

// HasBSN builds one "bachelor of science in nursing" option.
func HasBSN(options ...Option) model.Field {
	return radio(model.FieldHasBSN, resolveProps(options), model.FormatLabel)
}

// GenericRadioOption builds a standard-format option under a caller supplied
// name, two per row.
func GenericRadioOption(options ...Option) model.Field {
	p := resolveProps(options)
	field := radio(p.Name, p, model.FormatStandard)
	field.Width = p.width(model.WidthFifty)
	return field
}

// LevelOfEducationRadioOption builds a standard-format level of education
// option, two per row.
func LevelOfEducationRadioOption(options ...Option) model.Field {
	p := resolveProps(options)
	field := radio(model.FieldLevelOfEducation, p, model.FormatStandard)
	field.Width = p.width(model.WidthFifty)
	return field
}

// OptInType identifies a consent checkbox.
type OptInType string

const OptInLeadShare OptInType = "leadShareOptIn"

// LeadShareOptIn builds the lead sharing consent checkbox.
func LeadShareOptIn(options ...Option) model.Field {
	p := resolveProps(options)
	return model.Field{
		Type:  model.InputTypeCheckbox,
		Name:  model.FieldLeadShareOptIn,
		Label: p.Label,
	}
}

// OptIn builds the consent checkbox of the given type.
func OptIn(kind OptInType, label string) (model.Field, bool) {
	switch kind {
	case OptInLeadShare:
		return LeadShareOptIn(WithLabel(label)), true
	default:
		return model.Field{}, false
	}
}
