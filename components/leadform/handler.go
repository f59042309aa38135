package leadform

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-leadform/pkg/leads"
	"github.com/goliatone/go-leadform/pkg/orchestrator"
	"github.com/goliatone/go-leadform/pkg/program"
	"github.com/goliatone/go-leadform/pkg/render"
	"github.com/goliatone/go-leadform/pkg/school"
)

// Resource names served below {route}/schools/{slug}/.
const (
	ResourceFields = "fields"
	ResourceSchema = "schema"
	ResourceLeads  = "leads"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type errorResponse struct {
	Error  string        `json:"error"`
	Issues []leads.Issue `json:"issues,omitempty"`
}

type submission struct {
	ProgramID program.ID     `json:"programId"`
	Flow      school.Flow    `json:"flow,omitempty"`
	Values    map[string]any `json:"values"`
}

type submissionResponse struct {
	Data leads.Lead `json:"data"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options value.
// Callers are expected to pass an Options value produced by NewOptions so defaults apply.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	h := &handler{opts: opts}
	return http.HandlerFunc(h.serve)
}

type handler struct {
	opts Options
}

func (h *handler) serve(w http.ResponseWriter, r *http.Request) {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	slug, resource, ok := parseRoute(r.URL.Path)
	if !ok {
		writeError(w, StatusError{Code: http.StatusNotFound})
		return
	}

	allowed := allowedMethods(resource)
	if !containsMethod(allowed, r.Method) {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeError(w, StatusError{Code: http.StatusMethodNotAllowed})
		return
	}

	if h.opts.Guard != nil {
		if err := h.opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return
		}
	}

	var err error
	switch resource {
	case ResourceFields:
		err = h.fields(w, r, slug)
	case ResourceSchema:
		err = h.schema(w, r, slug)
	case ResourceLeads:
		err = h.submit(w, r, slug)
	}
	if err != nil {
		h.opts.Logger.Debug("leadform request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, err)
	}
}

func (h *handler) request(r *http.Request, slug school.Slug) orchestrator.Request {
	query := r.URL.Query()
	return orchestrator.Request{
		School:  slug,
		Flow:    school.Flow(strings.TrimSpace(query.Get(h.opts.FlowParam))),
		Program: program.New(strings.TrimSpace(query.Get(h.opts.ProgramParam))),
	}
}

func (h *handler) fields(w http.ResponseWriter, r *http.Request, slug school.Slug) error {
	orch := h.opts.Orchestrator
	form, err := orch.Form(r.Context(), h.request(r, slug))
	if err != nil {
		return classify(err)
	}

	renderer, err := orch.Registry().Negotiate(r.Header.Get("Accept"), "json")
	if err != nil {
		return StatusError{Code: http.StatusNotAcceptable, Err: err}
	}
	body, err := renderer.Render(r.Context(), form, render.RenderOptions{})
	if err != nil {
		return StatusError{Code: http.StatusInternalServerError, Err: err}
	}

	w.Header().Set("Content-Type", renderer.ContentType()+"; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return nil
	}
	_, _ = w.Write(body)
	return nil
}

func (h *handler) schema(w http.ResponseWriter, r *http.Request, slug school.Slug) error {
	form, err := h.opts.Orchestrator.Form(r.Context(), h.request(r, slug))
	if err != nil {
		return classify(err)
	}
	writeJSON(w, r, http.StatusOK, leads.Schema(form.Fields))
	return nil
}

func (h *handler) submit(w http.ResponseWriter, r *http.Request, slug school.Slug) error {
	var payload submission
	body := http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("leadform: decode submission: %w", err)}
	}

	req := orchestrator.Request{School: slug, Flow: payload.Flow, Program: program.Program{ID: payload.ProgramID}}
	if req.Flow == "" {
		req.Flow = school.Flow(strings.TrimSpace(r.URL.Query().Get(h.opts.FlowParam)))
	}
	form, err := h.opts.Orchestrator.Form(r.Context(), req)
	if err != nil {
		return classify(err)
	}

	result := leads.Validate(form.Fields, numbersToStrings(payload.Values))
	if !result.Valid {
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{
			Error:  "submission is not valid",
			Issues: result.Issues,
		})
		return nil
	}

	lead := leads.New(form.School, form.SchoolID, form.Flow, form.ProgramID, result.Values)
	if err := h.opts.Sink.Submit(r.Context(), lead); err != nil {
		return StatusError{Code: http.StatusBadGateway, Err: fmt.Errorf("leadform: submit lead: %w", err)}
	}

	h.opts.Logger.Info("lead accepted",
		zap.String("lead_id", lead.ID),
		zap.String("school", lead.School),
		zap.String("program_id", lead.ProgramID),
	)
	writeJSON(w, r, http.StatusCreated, submissionResponse{Data: lead})
	return nil
}

// parseRoute extracts the school slug and resource from a path ending in
// schools/{slug}/{resource}. The mount prefix is ignored.
func parseRoute(path string) (school.Slug, string, bool) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 3 {
		return "", "", false
	}
	tail := segments[len(segments)-3:]
	if tail[0] != "schools" || tail[1] == "" {
		return "", "", false
	}
	switch tail[2] {
	case ResourceFields, ResourceSchema, ResourceLeads:
		return school.Slug(tail[1]), tail[2], true
	}
	return "", "", false
}

func allowedMethods(resource string) []string {
	if resource == ResourceLeads {
		return []string{http.MethodPost}
	}
	return []string{http.MethodGet, http.MethodHead}
}

func containsMethod(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}

// classify maps lookup failures onto status codes.
func classify(err error) error {
	switch {
	case errors.Is(err, school.ErrSchoolNotFound), errors.Is(err, school.ErrFlowNotFound):
		return StatusError{Code: http.StatusNotFound, Err: err}
	default:
		return StatusError{Code: http.StatusInternalServerError, Err: err}
	}
}

// numbersToStrings turns json.Number values into plain strings so numeric
// inputs such as zip codes keep their leading zeros.
func numbersToStrings(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	out := make(map[string]any, len(values))
	for key, value := range values {
		if n, ok := value.(json.Number); ok {
			out[key] = n.String()
			continue
		}
		out[key] = value
	}
	return out
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if r != nil && r.Method == http.MethodHead {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
	}
	message := http.StatusText(code)
	if code < http.StatusInternalServerError && err != nil {
		message = err.Error()
	}
	writeJSON(w, nil, code, errorResponse{Error: message})
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	writeJSON(w, nil, code, errorResponse{Error: http.StatusText(code)})
}
