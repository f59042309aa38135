package leadform_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-leadform/components/leadform"
	"github.com/goliatone/go-leadform/pkg/leads"
	"github.com/goliatone/go-leadform/pkg/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingSink struct {
	mu    sync.Mutex
	leads []leads.Lead
	err   error
}

func (s *recordingSink) Submit(_ context.Context, lead leads.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.leads = append(s.leads, lead)
	return nil
}

func newServer(t *testing.T, fns ...leadform.OptionFn) (*http.ServeMux, string) {
	t.Helper()
	mux := http.NewServeMux()
	pattern, err := leadform.New(fns...).RegisterRoutes(mux, "/admin")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return mux, pattern
}

func serve(mux http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for key, value := range header {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestMountPath(t *testing.T) {
	if got := leadform.MountPath("/admin"); got != "/admin/api/leadform/" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := leadform.MountPath("admin/"); got != "/admin/api/leadform/" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := leadform.MountPath("", leadform.WithRoutePath("forms")); got != "/forms/" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if _, err := leadform.RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected missing mux error")
	}
}

func TestFields_JSONAndYAML(t *testing.T) {
	mux, pattern := newServer(t)

	rec := serve(mux, http.MethodGet, pattern+"schools/cincinnati/fields?program=25781", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("unexpected content type %q", ct)
	}
	var form model.Form
	if err := json.Unmarshal(rec.Body.Bytes(), &form); err != nil {
		t.Fatalf("decode: %v", err)
	}
	names := model.Names(form.Fields)
	if names[len(names)-1] != model.GroupMilitary {
		t.Fatalf("military must be last: %v", names)
	}
	if form.SchoolID != 583 || form.ProgramID != "25781" {
		t.Fatalf("unexpected envelope %+v", form)
	}

	rec = serve(mux, http.MethodGet, pattern+"schools/cincinnati/fields", "", map[string]string{"Accept": "application/yaml"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var decoded map[string]any
	if err := yaml.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("yaml decode: %v", err)
	}
	if decoded["schoolId"] != 583 {
		t.Fatalf("unexpected yaml body: %v", decoded["schoolId"])
	}

	rec = serve(mux, http.MethodHead, pattern+"schools/cincinnati/fields", "", nil)
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("HEAD should answer 200 without body, got %d (%d bytes)", rec.Code, rec.Body.Len())
	}
}

func TestSchema(t *testing.T) {
	mux, pattern := newServer(t)
	rec := serve(mux, http.MethodGet, pattern+"schools/cincinnati/schema?program=1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var schema struct {
		Type       string                    `json:"type"`
		Required   []string                  `json:"required"`
		Properties map[string]map[string]any `json:"properties"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &schema); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if schema.Type != "object" {
		t.Fatalf("unexpected type %q", schema.Type)
	}
	if _, ok := schema.Properties["military"]; !ok {
		t.Fatalf("military property missing: %v", schema.Properties)
	}
	if !containsString(schema.Required, "email") {
		t.Fatalf("email should be required: %v", schema.Required)
	}
}

func TestSubmit(t *testing.T) {
	sink := &recordingSink{}
	core, logs := observer.New(zap.InfoLevel)
	mux, pattern := newServer(t, leadform.WithSink(sink), leadform.WithLogger(zap.New(core)))

	body := `{"programId": 26613, "values": {
		"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com",
		"phoneNumber": "555-555-5555", "zip": "04521",
		"levelOfEducation": "bachelors", "military": "no"}}`
	rec := serve(mux, http.MethodPost, pattern+"schools/cincinnati/leads", body, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if len(sink.leads) != 1 {
		t.Fatalf("expected one lead, got %d", len(sink.leads))
	}
	lead := sink.leads[0]
	if lead.School != "cincinnati" || lead.SchoolID != 583 || lead.ProgramID != "26613" || lead.Flow != "baseFullForm" {
		t.Fatalf("unexpected lead %+v", lead)
	}
	if lead.Values["zip"] != "04521" {
		t.Fatalf("zip should keep its leading zero: %v", lead.Values["zip"])
	}
	if logs.FilterMessage("lead accepted").Len() != 1 {
		t.Fatalf("expected lead accepted log entry")
	}

	var resp struct {
		Data leads.Lead `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.ID != lead.ID {
		t.Fatalf("response id %q does not match sink id %q", resp.Data.ID, lead.ID)
	}
}

func TestSubmit_Invalid(t *testing.T) {
	sink := &recordingSink{}
	mux, pattern := newServer(t, leadform.WithSink(sink))

	rec := serve(mux, http.MethodPost, pattern+"schools/cincinnati/leads", `{"programId": "26613", "values": {"firstName": "Ada"}}`, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp struct {
		Issues []leads.Issue `json:"issues"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var got []string
	for _, issue := range resp.Issues {
		got = append(got, issue.Field)
	}
	want := []string{"lastName", "email", "phoneNumber", "zip", "levelOfEducation", "military"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if len(sink.leads) != 0 {
		t.Fatalf("invalid submissions must not reach the sink")
	}

	rec = serve(mux, http.MethodPost, pattern+"schools/cincinnati/leads", `{"values": [`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for broken json, got %d", rec.Code)
	}
}

func TestSubmit_SinkFailure(t *testing.T) {
	sink := &recordingSink{err: errors.New("crm down")}
	mux, pattern := newServer(t, leadform.WithSink(sink))
	body := `{"programId": "1", "values": {"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com",
		"phoneNumber": "555-555-5555", "zip": "45221", "military": "yes"}}`
	rec := serve(mux, http.MethodPost, pattern+"schools/cincinnati/leads", body, nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestErrors(t *testing.T) {
	mux, pattern := newServer(t)

	cases := map[string]struct {
		method string
		path   string
		code   int
	}{
		"unknown school": {http.MethodGet, "schools/nowhere/fields", http.StatusNotFound},
		"unknown flow":   {http.MethodGet, "schools/cincinnati/fields?flow=clickThrough", http.StatusNotFound},
		"unknown route":  {http.MethodGet, "schools/cincinnati/other", http.StatusNotFound},
		"short route":    {http.MethodGet, "schools", http.StatusNotFound},
		"post to fields": {http.MethodPost, "schools/cincinnati/fields", http.StatusMethodNotAllowed},
		"get leads":      {http.MethodGet, "schools/cincinnati/leads", http.StatusMethodNotAllowed},
		"delete schema":  {http.MethodDelete, "schools/cincinnati/schema", http.StatusMethodNotAllowed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := serve(mux, tc.method, pattern+tc.path, "", nil)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, rec.Code, rec.Body.String())
			}
		})
	}

	rec := serve(mux, http.MethodGet, pattern+"schools/cincinnati/leads", "", nil)
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestGuard(t *testing.T) {
	guard := func(r *http.Request) error {
		if r.Header.Get("X-Token") == "" {
			return leadform.StatusError{Code: http.StatusUnauthorized}
		}
		if r.Header.Get("X-Token") == "blocked" {
			return errors.New("blocked")
		}
		return nil
	}
	mux, pattern := newServer(t, leadform.WithGuard(guard))
	target := pattern + "schools/cincinnati/fields"

	if rec := serve(mux, http.MethodGet, target, "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec := serve(mux, http.MethodGet, target, "", map[string]string{"X-Token": "blocked"}); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if rec := serve(mux, http.MethodGet, target, "", map[string]string{"X-Token": "ok"}); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestComponentOptions(t *testing.T) {
	var nilComponent *leadform.Component
	if got := nilComponent.Options(); got.RoutePath != "/api/leadform" || got.Orchestrator == nil {
		t.Fatalf("nil component should expose defaults: %+v", got)
	}
	opts := leadform.New(leadform.WithProgramParam(""), leadform.WithMaxBodyBytes(-1)).Options()
	if opts.ProgramParam != "program" || opts.MaxBodyBytes <= 0 {
		t.Fatalf("defaults not restored: %+v", opts)
	}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
