package leadform

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-leadform/pkg/leads"
	"github.com/goliatone/go-leadform/pkg/orchestrator"
)

const (
	defaultRoutePath    = "/api/leadform"
	defaultProgramParam = "program"
	defaultFlowParam    = "flow"
	defaultMaxBodyBytes = 1 << 20
)

// GuardFunc rejects a request before it reaches the handler. Returning an
// error implementing HTTPError selects the status code; other errors map to
// 403.
type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath    string
	ProgramParam string
	FlowParam    string
	MaxBodyBytes int64
	Guard        GuardFunc

	Orchestrator *orchestrator.Orchestrator
	Sink         leads.Sink
	Logger       *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    defaultRoutePath,
		ProgramParam: defaultProgramParam,
		FlowParam:    defaultFlowParam,
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

// NewOptions applies fns over the defaults. A missing orchestrator is built
// from the embedded schools and a missing sink logs leads.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.ProgramParam == "" {
		opts.ProgramParam = defaultProgramParam
	}
	if opts.FlowParam == "" {
		opts.FlowParam = defaultFlowParam
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Orchestrator == nil {
		opts.Orchestrator = orchestrator.New(orchestrator.WithLogger(opts.Logger))
	}
	if opts.Sink == nil {
		opts.Sink = leads.NewLogSink(opts.Logger)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithProgramParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ProgramParam = name
	}
}

func WithFlowParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FlowParam = name
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithOrchestrator(orch *orchestrator.Orchestrator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Orchestrator = orch
	}
}

func WithSink(sink leads.Sink) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sink = sink
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
