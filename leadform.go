// Package leadform resolves the lead capture form a school shows for a chosen
// program, validates submissions against it and serves both over HTTP.
//
// Most callers only need the orchestrator:
//
//	orch := leadform.NewOrchestrator()
//	form, err := orch.Form(ctx, leadform.Request{School: "cincinnati", Program: program.New("26613")})
//
// The components/leadform package mounts the same orchestrator on a
// net/http mux and cmd/leadform wraps it in a CLI.
package leadform

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-leadform/pkg/model"
	"github.com/goliatone/go-leadform/pkg/orchestrator"
	"github.com/goliatone/go-leadform/pkg/program"
	"github.com/goliatone/go-leadform/pkg/render"
	"github.com/goliatone/go-leadform/pkg/school"
)

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// ResolveFields returns the ordered descriptors a school shows for a program
// on its base full form.
func ResolveFields(ctx context.Context, slug school.Slug, programID string, options ...orchestrator.Option) ([]model.Field, error) {
	form, err := orchestrator.New(options...).Form(ctx, orchestrator.Request{
		School:  slug,
		Program: program.New(programID),
	})
	if err != nil {
		return nil, err
	}
	return form.Fields, nil
}

// Generate resolves and encodes a form with the named renderer ("json" or
// "yaml"; empty selects json).
func Generate(ctx context.Context, slug school.Slug, programID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		School:   slug,
		Program:  program.New(programID),
		Renderer: rendererName,
	})
}

// SchoolsFS exposes the embedded school documents so hosts can copy or extend
// them before handing a filesystem to orchestrator.WithSchoolsFS.
func SchoolsFS() fs.FS {
	return school.EmbeddedFS()
}

// Themes registers a go-theme manifest for every school held by the
// orchestrator's store.
func Themes(orch *orchestrator.Orchestrator) (theme.ThemeProvider, error) {
	if err := orch.Err(); err != nil {
		return nil, err
	}
	return school.RegisterThemes(orch.Store())
}
