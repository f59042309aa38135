package resolver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-leadform/pkg/education"
	"github.com/goliatone/go-leadform/pkg/fields"
	"github.com/goliatone/go-leadform/pkg/model"
	"github.com/goliatone/go-leadform/pkg/program"
	"github.com/goliatone/go-leadform/pkg/resolver"
)

var (
	educationIDs = []int64{26613, 24991, 24963, 25305, 24961, 24967, 24969}
	nursingIDs   = []int64{25781, 25779, 25783}
)

func cincinnatiRules() resolver.Rules {
	return resolver.Rules{
		EducationLevelProgramIDs: educationIDs,
		NursingProgramIDs:        nursingIDs,
		EducationLevels:          education.Standard(),
		EducationLabelOverrides: map[education.Level]string{
			education.HighSchool: "High School Diploma or GED",
		},
	}
}

func countNamed(list []model.Field, name model.FieldName) int {
	count := 0
	for _, field := range list {
		if field.Name == name {
			count++
		}
	}
	return count
}

func TestResolve_EducationProgram(t *testing.T) {
	r := resolver.New(cincinnatiRules())

	got := r.Resolve(resolver.Request{
		Program:    program.New("26613"),
		BaseFields: []model.Field{fields.FirstName(), fields.LastName()},
	})

	want := []model.FieldName{
		model.FieldFirstName, model.FieldLastName,
		model.FieldLevelOfEducation, model.GroupMilitary,
	}
	if diff := cmp.Diff(want, model.Names(got)); diff != "" {
		t.Fatalf("resolved names mismatch (-want +got):\n%s", diff)
	}

	edu := got[2]
	if edu.Type != model.InputTypeSelect || len(edu.Options) != 7 {
		t.Fatalf("unexpected education select: %+v", edu)
	}
	if edu.Options[0].Label != "High School Diploma or GED" {
		t.Fatalf("label override not applied: %+v", edu.Options[0])
	}
}

func TestResolve_NursingProgram(t *testing.T) {
	r := resolver.New(cincinnatiRules())

	got := r.Resolve(resolver.Request{
		Program:    program.FromInt(25781),
		BaseFields: []model.Field{fields.FirstName()},
	})

	want := []model.FieldName{model.FieldFirstName, model.GroupHasRN, model.GroupMilitary}
	if diff := cmp.Diff(want, model.Names(got)); diff != "" {
		t.Fatalf("resolved names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(fields.RNQuestion(""), got[1]); diff != "" {
		t.Fatalf("rn question mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Properties(t *testing.T) {
	r := resolver.New(cincinnatiRules())
	base := fields.BaseFullForm()

	var ids []string
	for _, id := range append(append([]int64{}, educationIDs...), nursingIDs...) {
		ids = append(ids, program.FromInt(id).ID.String())
	}
	ids = append(ids, "1", "99999", "", "abc", "26613abc", " 26613 ")

	for _, id := range ids {
		got := r.Resolve(resolver.Request{Program: program.New(id), BaseFields: base})
		pid := program.ID(id)

		if err := model.ValidateNames(got); err != nil {
			t.Fatalf("program %q: %v", id, err)
		}
		if diff := cmp.Diff(model.Names(base), model.Names(got[:len(base)])); diff != "" {
			t.Fatalf("program %q: base fields not preserved first (-want +got):\n%s", id, diff)
		}
		if got[len(got)-1].Name != model.GroupMilitary || countNamed(got, model.GroupMilitary) != 1 {
			t.Fatalf("program %q: military group must appear once and last: %v", id, model.Names(got))
		}

		wantEdu := 0
		if resolver.NewIDSet(educationIDs...).Contains(pid) {
			wantEdu = 1
		}
		if n := countNamed(got, model.FieldLevelOfEducation); n != wantEdu {
			t.Fatalf("program %q: want %d education fields, got %d", id, wantEdu, n)
		}

		wantRN := 0
		if resolver.NewIDSet(nursingIDs...).Contains(pid) {
			wantRN = 1
		}
		if n := countNamed(got, model.GroupHasRN); n != wantRN {
			t.Fatalf("program %q: want %d rn groups, got %d", id, wantRN, n)
		}
	}
}

func TestResolve_MalformedIDAddsOnlyMilitary(t *testing.T) {
	r := resolver.New(cincinnatiRules())
	got := r.Resolve(resolver.Request{Program: program.New("not-a-number")})

	if diff := cmp.Diff([]model.FieldName{model.GroupMilitary}, model.Names(got)); diff != "" {
		t.Fatalf("resolved names mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := resolver.New(cincinnatiRules())
	base := fields.BaseFullForm()
	req := resolver.Request{Program: program.New("26613"), BaseFields: base}

	first := r.Resolve(req)
	first[0].Label = "mutated"
	first[0].Validations[0].Message = "mutated"
	first[5].Options[0].Label = "mutated"

	second := r.Resolve(req)
	if diff := cmp.Diff(fields.BaseFullForm(), base); diff != "" {
		t.Fatalf("base fields mutated (-want +got):\n%s", diff)
	}
	third := r.Resolve(req)
	if diff := cmp.Diff(second, third); diff != "" {
		t.Fatalf("resolution not idempotent (-want +got):\n%s", diff)
	}
	if second[5].Options[0].Label != "High School Diploma or GED" {
		t.Fatalf("shared option state leaked: %q", second[5].Options[0].Label)
	}
}

func TestResolve_DuplicateNamesDropped(t *testing.T) {
	r := resolver.New(cincinnatiRules())
	base := []model.Field{
		fields.FirstName(),
		fields.FirstName(fields.WithLabel("Given name")),
		fields.MilitaryFieldGroup(model.AnswerYes),
		fields.Email(),
	}

	got := r.Resolve(resolver.Request{Program: program.New("1"), BaseFields: base})

	want := []model.FieldName{model.FieldFirstName, model.FieldEmail, model.GroupMilitary}
	if diff := cmp.Diff(want, model.Names(got)); diff != "" {
		t.Fatalf("resolved names mismatch (-want +got):\n%s", diff)
	}
	if got[0].Label != "First name" {
		t.Fatalf("first base occurrence should win, got %q", got[0].Label)
	}
	if got[2].Members()[1].DefaultValue != model.AnswerNo {
		t.Fatalf("appended military group should replace the base copy")
	}
}

func TestResolve_RuleLabels(t *testing.T) {
	rules := cincinnatiRules()
	rules.EducationLabel = "Education"
	rules.NursingQuestion = "Are you an RN?"
	rules.MilitaryDefault = model.AnswerYes
	rules.NursingProgramIDs = append(rules.NursingProgramIDs, 26613)

	got := resolver.New(rules).Resolve(resolver.Request{Program: program.New("26613")})
	if len(got) != 3 {
		t.Fatalf("expected education, nursing, military; got %v", model.Names(got))
	}
	if got[0].Label != "Education" || got[1].GroupLabel() != "Are you an RN?" {
		t.Fatalf("labels not applied: %q / %q", got[0].Label, got[1].GroupLabel())
	}
	if got[2].Members()[1].DefaultValue != model.AnswerYes {
		t.Fatalf("military default not applied")
	}
}

func TestNewWithSteps(t *testing.T) {
	r := resolver.NewWithSteps(
		resolver.Step{Name: "skipped"},
		resolver.Step{Name: "optIn", Build: func() model.Field {
			return fields.LeadShareOptIn(fields.WithLabel("Share"))
		}},
	)
	if diff := cmp.Diff([]string{"optIn"}, r.Steps()); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}
	got := r.Resolve(resolver.Request{})
	if len(got) != 1 || got[0].Name != model.FieldLeadShareOptIn {
		t.Fatalf("unexpected resolution %v", model.Names(got))
	}

	var fn resolver.FieldsResolver = resolver.FieldsResolverFunc(func(req resolver.Request) []model.Field {
		return req.BaseFields
	})
	if got := fn.Resolve(resolver.Request{BaseFields: []model.Field{fields.Zip()}}); len(got) != 1 {
		t.Fatalf("func adapter mismatch")
	}
}

func TestIDSet(t *testing.T) {
	set := resolver.NewIDSet(3, 1, 2)
	if diff := cmp.Diff([]int64{1, 2, 3}, set.Sorted()); diff != "" {
		t.Fatalf("sorted mismatch (-want +got):\n%s", diff)
	}
	if !set.Contains("2") || set.Contains("4") || set.Contains("two") {
		t.Fatalf("membership mismatch")
	}
	if resolver.NewIDSet().Contains("1") {
		t.Fatalf("empty set has no members")
	}
}
