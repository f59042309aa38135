package fields

import "github.com/goliatone/go-leadform/pkg/model"

// FirstName builds the first name text input.
func FirstName(options ...Option) model.Field {
	p := resolveProps(options)
	return model.Field{
		Type:  model.InputTypeText,
		Name:  model.FieldFirstName,
		Label: p.label("First name"),
		Validations: rules(
			required("First Name is required."),
			maxLength(50, ""),
			pattern(NamePattern, ""),
		),
		Width: p.width(model.WidthFifty),
		PII:   true,
	}
}

// LastName builds the last name text input.
func LastName(options ...Option) model.Field {
	p := resolveProps(options)
	return model.Field{
		Type:  model.InputTypeText,
		Name:  model.FieldLastName,
		Label: p.label("Last name"),
		Validations: rules(
			maxLength(50, ""),
			required("Last Name is required."),
			pattern(NamePattern, ""),
		),
		Width: p.width(model.WidthFifty),
		PII:   true,
	}
}

// Address builds the street address input.
func Address(options ...Option) model.Field {
	p := resolveProps(options)
	return model.Field{
		Type:        model.InputTypeAddress,
		Name:        model.FieldAddress,
		Label:       p.label("Address"),
		Validations: rules(required("")),
		Width:       p.width(model.WidthFull),
		PII:         true,
	}
}

// City builds the city input. Width is left to the renderer unless set.
func City(options ...Option) model.Field {
	p := resolveProps(options)
	return model.Field{
		Type:        model.InputTypeText,
		Name:        model.FieldCity,
		Label:       p.label("City"),
		Validations: rules(required("")),
		Width:       p.Width,
	}
}

// State builds the free text state input, which expects the full state name.
func State(options ...Option) model.Field {
	p := resolveProps(options)
	return model.Field{
		Type:  model.InputTypeText,
		Name:  model.FieldState,
		Label: p.label("State"),
		Validations: rules(
			minLength(5, "State must be the full state name"),
			maxLength(50, "State name is too long"),
			required("State is required"),
		),
		Width: p.width(model.WidthFifty),
		PII:   true,
	}
}

// StateAbbr builds the state select keyed by postal abbreviation.
func StateAbbr(options ...Option) model.Field {
	p := resolveProps(options)
	return model.Field{
		Type:        model.InputTypeSelect,
		Name:        model.FieldState,
		Label:       p.label("State"),
		Validations: rules(required("State is required")),
		Width:       p.width(model.WidthFifty),
		Options:     p.Options,
		PII:         true,
	}
}

// Zip builds the five digit zip code input.
func Zip(options ...Option) model.Field {
	p := resolveProps(options)
	return model.Field{
		Type:  model.InputTypeNumber,
		Name:  model.FieldZip,
		Label: p.label("Zip code"),
		Validations: rules(
			minLength(5, "Zip Code must be 5 digits"),
			maxLength(5, "Zip Code must be 5 digits"),
			required("A valid Zip Code is required."),
		),
		Width: p.Width,
	}
}

// Country builds one option of the country radio.
func Country(options ...Option) model.Field {
	p := resolveProps(options)
	return model.Field{
		Type:        model.InputTypeRadio,
		Name:        model.FieldCountry,
		Label:       p.Label,
		Value:       p.Value,
		Validations: rules(required("")),
		Width:       p.width(model.WidthFifty),
		Format:      model.FormatStandard,
	}
}

// Phone builds the phone number input. Formatted numbers are 12 to 15
// characters long.
func Phone(options ...Option) model.Field {
	p := resolveProps(options)
	const message = "A valid Phone Number is required."
	return model.Field{
		Type:  model.InputTypeTel,
		Name:  model.FieldPhoneNumber,
		Label: p.label("Phone number"),
		Validations: rules(
			minLength(12, message),
			maxLength(15, message),
			required(message),
		),
		Width: p.Width,
		PII:   true,
	}
}

// Email builds the email input.
func Email(options ...Option) model.Field {
	p := resolveProps(options)
	return model.Field{
		Type:  model.InputTypeEmail,
		Name:  model.FieldEmail,
		Label: p.label("Email"),
		Validations: rules(
			required("Email is required."),
			pattern(EmailPattern, "Invalid email supplied"),
		),
		Width: p.Width,
		PII:   true,
	}
}

// BaseFullForm is the contact block every full form screen starts from.
func BaseFullForm() []model.Field {
	return []model.Field{
		FirstName(),
		LastName(),
		Email(WithWidth(model.WidthFull)),
		Phone(WithWidth(model.WidthFull)),
		Zip(WithWidth(model.WidthFull)),
	}
}
