package render

import (
	"context"

	"github.com/goliatone/go-leadform/pkg/model"
)

// Renderer converts a resolved form into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.Form, options RenderOptions) ([]byte, error)
}
