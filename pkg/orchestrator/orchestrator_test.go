package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-leadform/pkg/fields"
	"github.com/goliatone/go-leadform/pkg/model"
	"github.com/goliatone/go-leadform/pkg/orchestrator"
	"github.com/goliatone/go-leadform/pkg/program"
	"github.com/goliatone/go-leadform/pkg/render"
	"github.com/goliatone/go-leadform/pkg/testsupport"
)

func TestForm_EmbeddedCincinnati(t *testing.T) {
	orch := orchestrator.New()

	form, err := orch.Form(context.Background(), orchestrator.Request{
		School:  "cincinnati",
		Program: program.New("26613"),
	})
	if err != nil {
		t.Fatalf("form: %v", err)
	}

	want := []model.FieldName{
		model.FieldFirstName, model.FieldLastName, model.FieldEmail,
		model.FieldPhoneNumber, model.FieldZip,
		model.FieldLevelOfEducation, model.GroupMilitary,
	}
	if diff := cmp.Diff(want, model.Names(form.Fields)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if form.SchoolID != 583 || form.Flow != "baseFullForm" || form.ProgramID != "26613" {
		t.Fatalf("unexpected envelope %+v", form)
	}
	if !strings.HasPrefix(form.TCPA, "By submitting this form") {
		t.Fatalf("tcpa missing: %q", form.TCPA)
	}
	if !strings.Contains(form.Metadata[orchestrator.MetaConfirmation], "University of Cincinnati Online") {
		t.Fatalf("confirmation missing: %+v", form.Metadata)
	}
}

func TestForm_RequestBaseFields(t *testing.T) {
	orch := orchestrator.New()
	form, err := orch.Form(context.Background(), orchestrator.Request{
		School:     "cincinnati",
		Program:    program.New("25781"),
		BaseFields: []model.Field{fields.FirstName()},
	})
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	want := []model.FieldName{model.FieldFirstName, model.GroupHasRN, model.GroupMilitary}
	if diff := cmp.Diff(want, model.Names(form.Fields)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_NotFound(t *testing.T) {
	orch := orchestrator.New()

	_, err := orch.Form(context.Background(), orchestrator.Request{School: "nowhere"})
	if !errors.Is(err, orchestrator.ErrSchoolNotFound) {
		t.Fatalf("expected ErrSchoolNotFound, got %v", err)
	}
	_, err = orch.Form(context.Background(), orchestrator.Request{School: "cincinnati", Flow: "clickThrough"})
	if !errors.Is(err, orchestrator.ErrFlowNotFound) {
		t.Fatalf("expected ErrFlowNotFound, got %v", err)
	}
	if _, err := orch.Form(context.Background(), orchestrator.Request{}); err == nil {
		t.Fatalf("expected error for missing school")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := orch.Form(ctx, orchestrator.Request{School: "cincinnati"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestGenerate_Renderers(t *testing.T) {
	orch := orchestrator.New()
	req := orchestrator.Request{School: "cincinnati", Program: program.New("1")}

	out, err := orch.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate json: %v", err)
	}
	var decoded model.Form
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Fields[len(decoded.Fields)-1].Name != model.GroupMilitary {
		t.Fatalf("military must be last: %v", model.Names(decoded.Fields))
	}

	req.Renderer = "yaml"
	yamlOut, err := orch.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate yaml: %v", err)
	}
	if !strings.Contains(string(yamlOut), "schoolId: 583") {
		t.Fatalf("unexpected yaml output:\n%s", yamlOut)
	}

	req.Renderer = "html"
	if _, err := orch.Generate(context.Background(), req); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}

func TestOptions(t *testing.T) {
	fsys := fstest.MapFS{"acme.yaml": {Data: []byte(`
slug: acme
configs:
  - config:
      schoolId: 7
      schoolName: Acme College
`)}}

	core, logs := observer.New(zap.DebugLevel)
	registry := render.NewRegistry()
	registry.MustRegister(render.NewYAML())

	orch := orchestrator.New(
		orchestrator.WithSchoolsFS(fsys),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("yaml"),
		orchestrator.WithBaseFields(func() []model.Field { return []model.Field{fields.Email()} }),
		orchestrator.WithDecorators(model.DecoratorFunc(func(form *model.Form) error {
			form.Metadata["decorated"] = "yes"
			return nil
		})),
		orchestrator.WithLogger(zap.New(core)),
	)

	form, err := orch.Form(context.Background(), orchestrator.Request{School: "acme"})
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if diff := cmp.Diff([]model.FieldName{model.FieldEmail, model.GroupMilitary}, model.Names(form.Fields)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if form.Metadata["decorated"] != "yes" {
		t.Fatalf("decorator not applied")
	}
	if logs.FilterMessage("form resolved").Len() != 1 {
		t.Fatalf("expected debug log entry")
	}
	if _, err := orch.Generate(context.Background(), orchestrator.Request{School: "acme"}); err != nil {
		t.Fatalf("generate with default yaml renderer: %v", err)
	}
	if _, err := orch.Form(context.Background(), orchestrator.Request{School: "cincinnati"}); !errors.Is(err, orchestrator.ErrSchoolNotFound) {
		t.Fatalf("embedded schools should not load when a filesystem is supplied")
	}
}

func TestDecoratorError(t *testing.T) {
	boom := errors.New("boom")
	orch := orchestrator.New(orchestrator.WithDecorators(model.DecoratorFunc(func(*model.Form) error { return boom })))
	if _, err := orch.Form(context.Background(), orchestrator.Request{School: "cincinnati"}); !errors.Is(err, boom) {
		t.Fatalf("expected decorator error, got %v", err)
	}
}

func TestForm_CincinnatiGolden(t *testing.T) {
	const golden = "testdata/cincinnati_fields.json"
	orch := orchestrator.New()

	got := make(map[string][]model.FieldName)
	for _, id := range []string{"1", "24991", "25781", "abc"} {
		form, err := orch.Form(testsupport.Context(), orchestrator.Request{School: "cincinnati", Program: program.New(id)})
		if err != nil {
			t.Fatalf("form %s: %v", id, err)
		}
		got[id] = model.Names(form.Fields)
	}
	testsupport.WriteGolden(t, golden, got)

	var want map[string][]model.FieldName
	testsupport.MustLoadJSON(t, golden, &want)
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("golden mismatch (-want +got):\n%s", diff)
	}
}

func TestBrokenSchoolsFS(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithSchoolsFS(testsupport.SchoolFS(map[string]string{"bad.yaml": "slug: ["})))
	if err := orch.Err(); err == nil {
		t.Fatalf("expected Err to report the load failure")
	}
	if _, err := orch.Form(context.Background(), orchestrator.Request{School: "bad"}); err == nil || !strings.Contains(err.Error(), "load schools") {
		t.Fatalf("expected load error, got %v", err)
	}
}
