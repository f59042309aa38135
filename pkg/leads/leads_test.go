package leads_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-leadform/pkg/fields"
	"github.com/goliatone/go-leadform/pkg/leads"
	"github.com/goliatone/go-leadform/pkg/model"
)

func formFields() []model.Field {
	out := fields.BaseFullForm()
	return append(out, fields.MilitaryFieldGroup(""), fields.LeadShareOptIn(fields.WithLabel("Share my info")))
}

func validValues() map[string]any {
	return map[string]any{
		"firstName":   " Ada ",
		"lastName":    "Lovelace",
		"email":       "ada@example.com",
		"phoneNumber": "555-555-5555",
		"zip":         float64(45221),
		"military":    "no",
		"unknown":     "dropped",
	}
}

func TestSchema(t *testing.T) {
	schema := leads.Schema(formFields())

	wantRequired := []string{"firstName", "lastName", "email", "phoneNumber", "zip", "military"}
	if diff := cmp.Diff(wantRequired, schema.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}

	zip := schema.Properties["zip"].Value
	if zip.MinLength != 5 || zip.MaxLength == nil || *zip.MaxLength != 5 {
		t.Fatalf("unexpected zip bounds: min=%d max=%v", zip.MinLength, zip.MaxLength)
	}
	if got := schema.Properties["email"].Value.Pattern; got != fields.EmailPattern {
		t.Fatalf("unexpected email pattern %q", got)
	}
	military := schema.Properties["military"].Value
	if diff := cmp.Diff([]any{"yes", "no"}, military.Enum); diff != "" {
		t.Fatalf("military enum mismatch (-want +got):\n%s", diff)
	}
	if military.Title != fields.MilitaryQuestion {
		t.Fatalf("group title should be the group label, got %q", military.Title)
	}
	if !schema.Properties["leadShareOptIn"].Value.Type.Is("boolean") {
		t.Fatalf("checkbox should be boolean")
	}
	if _, ok := schema.Properties["militaryLabel"]; ok {
		t.Fatalf("group label entries must not become properties")
	}
}

func TestValidate_Accepts(t *testing.T) {
	result := leads.Validate(formFields(), validValues())
	if !result.Valid {
		t.Fatalf("expected valid submission, got %+v", result.Issues)
	}
	if result.Error() != "" {
		t.Fatalf("valid result should have no error text")
	}

	want := map[string]any{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"email":       "ada@example.com",
		"phoneNumber": "555-555-5555",
		"zip":         "45221",
		"military":    "no",
	}
	if diff := cmp.Diff(want, result.Values); diff != "" {
		t.Fatalf("normalised values mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	result := leads.Validate(formFields(), map[string]any{"firstName": "   "})
	if result.Valid {
		t.Fatalf("expected invalid submission")
	}

	var got []leads.Issue
	for _, issue := range result.Issues {
		got = append(got, leads.Issue{Field: issue.Field, Rule: issue.Rule})
	}
	want := []leads.Issue{
		{Field: "firstName", Rule: model.ValidationRuleRequired},
		{Field: "lastName", Rule: model.ValidationRuleRequired},
		{Field: "email", Rule: model.ValidationRuleRequired},
		{Field: "phoneNumber", Rule: model.ValidationRuleRequired},
		{Field: "zip", Rule: model.ValidationRuleRequired},
		{Field: "military", Rule: model.ValidationRuleRequired},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if result.Issues[0].Message != "First Name is required." {
		t.Fatalf("expected descriptor message, got %q", result.Issues[0].Message)
	}
	if result.Issues[4].Message != "A valid Zip Code is required." {
		t.Fatalf("expected zip message, got %q", result.Issues[4].Message)
	}
}

func TestValidate_RuleMessages(t *testing.T) {
	values := validValues()
	values["zip"] = "123"
	values["email"] = "not-an-email"
	values["military"] = "maybe"
	values["firstName"] = "1234"

	result := leads.Validate(formFields(), values)
	byField := make(map[string]leads.Issue)
	for _, issue := range result.Issues {
		byField[issue.Field] = issue
	}

	want := map[string]leads.Issue{
		"firstName": {Field: "firstName", Rule: model.ValidationRulePattern, Message: "First name is not valid."},
		"email":     {Field: "email", Rule: model.ValidationRulePattern, Message: "Invalid email supplied"},
		"zip":       {Field: "zip", Rule: model.ValidationRuleMinLength, Message: "Zip Code must be 5 digits"},
		"military":  {Field: "military", Rule: leads.RuleEnum, Message: fields.MilitaryQuestion + " must be one of the listed options."},
	}
	if diff := cmp.Diff(want, byField); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_CheckboxCoercion(t *testing.T) {
	values := validValues()
	values["leadShareOptIn"] = "on"
	result := leads.Validate(formFields(), values)
	if !result.Valid || result.Values["leadShareOptIn"] != true {
		t.Fatalf("expected checkbox coerced to true: %+v %+v", result.Issues, result.Values)
	}

	values["leadShareOptIn"] = "sometimes"
	result = leads.Validate(formFields(), values)
	if result.Valid || result.Issues[0].Rule != leads.RuleType {
		t.Fatalf("expected type issue, got %+v", result.Issues)
	}
}

func TestRedact(t *testing.T) {
	values := map[string]any{
		"firstName": "Ada",
		"email":     "ada@example.com",
		"zip":       "45221",
		"lastName":  "",
	}
	got := leads.Redact(formFields(), values)
	want := map[string]any{
		"firstName": leads.Mask,
		"email":     leads.Mask,
		"zip":       "45221",
		"lastName":  "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("redaction mismatch (-want +got):\n%s", diff)
	}
	if values["firstName"] != "Ada" {
		t.Fatalf("input mutated")
	}
	if leads.Redact(nil, nil) != nil {
		t.Fatalf("nil values should stay nil")
	}
}

func TestNewLead(t *testing.T) {
	lead := leads.New("cincinnati", 583, "baseFullForm", "26613", map[string]any{"zip": "45221"})
	if _, err := uuid.Parse(lead.ID); err != nil {
		t.Fatalf("lead id is not a uuid: %v", err)
	}
	if lead.ReceivedAt.IsZero() || lead.School != "cincinnati" || lead.SchoolID != 583 {
		t.Fatalf("unexpected lead %+v", lead)
	}
}

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := leads.NewLogSink(zap.New(core), leads.WithFieldSource(func(leads.Lead) []model.Field {
		return formFields()
	}))

	lead := leads.New("cincinnati", 583, "baseFullForm", "26613", map[string]any{"email": "ada@example.com", "zip": "45221"})
	if err := sink.Submit(context.Background(), lead); err != nil {
		t.Fatalf("submit: %v", err)
	}

	entries := logs.FilterMessage("lead received").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["lead_id"] != lead.ID || ctx["program_id"] != "26613" {
		t.Fatalf("unexpected context %+v", ctx)
	}
	values, ok := ctx["values"].(map[string]any)
	if !ok || values["email"] != leads.Mask || values["zip"] != "45221" {
		t.Fatalf("values not redacted: %#v", ctx["values"])
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sink.Submit(cancelled, lead); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestSinkFunc(t *testing.T) {
	var got leads.Lead
	var sink leads.Sink = leads.SinkFunc(func(_ context.Context, lead leads.Lead) error {
		got = lead
		return nil
	})
	if err := sink.Submit(context.Background(), leads.Lead{ID: "x"}); err != nil || got.ID != "x" {
		t.Fatalf("sink func not invoked")
	}
}
