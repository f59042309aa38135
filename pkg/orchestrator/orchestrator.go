package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/goliatone/go-leadform/pkg/fields"
	"github.com/goliatone/go-leadform/pkg/model"
	"github.com/goliatone/go-leadform/pkg/program"
	"github.com/goliatone/go-leadform/pkg/render"
	"github.com/goliatone/go-leadform/pkg/resolver"
	"github.com/goliatone/go-leadform/pkg/school"
)

const defaultRendererName = "json"

// Metadata keys set on every resolved form.
const (
	MetaConfirmation = "confirmation"
	MetaTheme        = "theme"
)

var (
	// ErrSchoolNotFound is returned when the requested school is not loaded.
	ErrSchoolNotFound = school.ErrSchoolNotFound
	// ErrFlowNotFound is returned when the school has no config for the flow.
	ErrFlowNotFound = school.ErrFlowNotFound
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithStore injects a loaded school store.
func WithStore(store *school.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithSchoolsFS supplies an fs.FS holding school files. It is ignored when a
// store is injected. Pass nil to start with an empty store instead of the
// embedded schools.
func WithSchoolsFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.schoolsFS = fsys
		o.schoolsSpecified = true
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithBaseFields overrides the base list used when a request carries none.
func WithBaseFields(fn func() []model.Field) Option {
	return func(o *Orchestrator) {
		o.baseFields = fn
	}
}

// WithDecorators registers decorators that run against the resolved form
// before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithLogger sets the logger. The default discards.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator plays the hosting screen: it looks up the school, picks the
// base fields, runs the school resolver and hands the result to a renderer.
type Orchestrator struct {
	store            *school.Store
	schoolsFS        fs.FS
	schoolsSpecified bool
	registry         *render.Registry
	defaultRenderer  string
	baseFields       func() []model.Field
	decorators       []model.Decorator
	logger           *zap.Logger
	initialiseErr    error
	defaultsApplied  bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies fall back to the embedded schools, the json renderer and the
// base full form.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one form lookup.
type Request struct {
	// School is the slug of the school to resolve for.
	School school.Slug

	// Flow selects the page flow. Empty selects the base full form.
	Flow school.Flow

	// Program is the program the visitor picked.
	Program program.Program

	// BaseFields overrides the default base list for this request.
	BaseFields []model.Field

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries prefilled values or errors for renderers.
	RenderOptions render.RenderOptions
}

// Store returns the school store in use.
func (o *Orchestrator) Store() *school.Store {
	return o.store
}

// Registry returns the renderer registry in use.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Err reports a failure to load the school store. Every lookup returns the
// same error while it is set.
func (o *Orchestrator) Err() error {
	return o.initialiseErr
}

// Config returns the school configuration a request resolves against.
func (o *Orchestrator) Config(req Request) (*school.Config, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if req.School == "" {
		return nil, errors.New("orchestrator: school is required")
	}
	cfg, err := o.store.Config(req.School, req.Flow)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return cfg, nil
}

// Form resolves the field list for a request and wraps it with the school
// context and rendered copy.
func (o *Orchestrator) Form(ctx context.Context, req Request) (model.Form, error) {
	if ctx == nil {
		return model.Form{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.Form{}, err
	}

	cfg, err := o.Config(req)
	if err != nil {
		return model.Form{}, err
	}

	base := req.BaseFields
	if base == nil {
		base = o.baseFields()
	}
	resolved := cfg.Fields(resolver.Request{Program: req.Program, BaseFields: base})
	if err := model.ValidateNames(resolved); err != nil {
		return model.Form{}, fmt.Errorf("orchestrator: resolve fields: %w", err)
	}

	copyText, err := cfg.RenderedCopy(req.Program)
	if err != nil {
		return model.Form{}, fmt.Errorf("orchestrator: render copy: %w", err)
	}

	flow := req.Flow
	if flow == "" {
		flow = school.FlowBaseFullForm
	}
	form := model.Form{
		SchoolID:   cfg.SchoolID,
		School:     string(cfg.Slug),
		SchoolName: cfg.SchoolName,
		Flow:       string(flow),
		ProgramID:  req.Program.ID.String(),
		Fields:     resolved,
		TCPA:       copyText.TCPA,
		Metadata: map[string]string{
			MetaTheme: string(cfg.Slug),
		},
	}
	if copyText.Confirmation != "" {
		form.Metadata[MetaConfirmation] = copyText.Confirmation
	}

	if err := o.applyDecorators(&form); err != nil {
		return model.Form{}, err
	}

	o.logger.Debug("form resolved",
		zap.String("school", form.School),
		zap.String("flow", form.Flow),
		zap.String("program_id", form.ProgramID),
		zap.Int("fields", len(form.Fields)),
	)
	return form, nil
}

// Generate resolves the form and encodes it with the requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	form, err := o.Form(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(form *model.Form) error {
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return fmt.Errorf("orchestrator: decorate form: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.registry == nil {
		o.registry = render.Default()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.baseFields == nil {
		o.baseFields = fields.BaseFullForm
	}
	if o.store == nil {
		o.store, o.initialiseErr = o.loadStore()
	}

	o.defaultsApplied = true
}

func (o *Orchestrator) loadStore() (*school.Store, error) {
	fsys := o.schoolsFS
	if !o.schoolsSpecified {
		fsys = school.EmbeddedFS()
	}
	store, err := school.LoadFS(fsys)
	if err != nil {
		return school.NewStore(), fmt.Errorf("orchestrator: load schools: %w", err)
	}
	return store, nil
}
