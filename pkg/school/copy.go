package school

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-leadform/pkg/program"
)

// Copy is the rendered, sanitised copy of a config for one program.
type Copy struct {
	TCPA         string               `json:"tcpa"`
	Confirmation string               `json:"confirmation"`
	Nudges       map[ScreenSlug]Nudge `json:"nudges,omitempty"`
}

// RenderCopy renders text as a pongo2 template against the school and
// program, then sanitises the result. Text without template tags is only
// sanitised.
func (c *Config) RenderCopy(text string, p program.Program) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if !strings.Contains(text, "{{") && !strings.Contains(text, "{%") {
		return SanitizeCopy(text), nil
	}

	tpl, err := pongo2.FromString(text)
	if err != nil {
		return "", fmt.Errorf("school: parse copy: %w", err)
	}
	out, err := tpl.Execute(c.copyContext(p))
	if err != nil {
		return "", fmt.Errorf("school: render copy: %w", err)
	}
	return SanitizeCopy(out), nil
}

// RenderedCopy renders the TCPA, confirmation and nudge copy in one pass.
func (c *Config) RenderedCopy(p program.Program) (Copy, error) {
	var out Copy
	var err error

	if out.TCPA, err = c.RenderCopy(c.TCPA, p); err != nil {
		return Copy{}, fmt.Errorf("tcpa: %w", err)
	}
	if out.Confirmation, err = c.RenderCopy(c.Confirmation.Meta.Text, p); err != nil {
		return Copy{}, fmt.Errorf("confirmation: %w", err)
	}

	for screen, nudge := range c.Nudges {
		if nudge.Title == "" && nudge.Message == "" {
			continue
		}
		rendered := nudge
		if rendered.Title, err = c.RenderCopy(nudge.Title, p); err != nil {
			return Copy{}, fmt.Errorf("nudge %s: %w", screen, err)
		}
		if rendered.Message, err = c.RenderCopy(nudge.Message, p); err != nil {
			return Copy{}, fmt.Errorf("nudge %s: %w", screen, err)
		}
		if out.Nudges == nil {
			out.Nudges = make(map[ScreenSlug]Nudge)
		}
		out.Nudges[screen] = rendered
	}
	return out, nil
}

func (c *Config) copyContext(p program.Program) pongo2.Context {
	return pongo2.Context{
		"schoolName": c.SchoolName,
		"schoolId":   c.SchoolID,
		"slug":       string(c.Slug),
		"homepage":   c.Homepage,
		"program": map[string]any{
			"id":       p.ID.String(),
			"name":     p.Name,
			"level":    p.Level,
			"category": p.Category,
		},
	}
}
