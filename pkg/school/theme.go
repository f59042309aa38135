package school

import (
	"fmt"
	"sort"

	theme "github.com/goliatone/go-theme"
)

const themeVersion = "1.0.0"

// ThemeManifest exposes the school's colours and imagery as a go-theme
// manifest named after the slug.
func (c *Config) ThemeManifest() *theme.Manifest {
	files := make(map[string]string, 2)
	if c.Logo != "" {
		files["logo"] = c.Logo
	}
	if c.Image != "" {
		files["hero"] = c.Image
	}
	return &theme.Manifest{
		Name:    string(c.Slug),
		Version: themeVersion,
		Tokens:  copyStrings(c.ThemeColors),
		Assets:  theme.Assets{Files: files},
	}
}

// ThemeConfig derives the renderer configuration for the school theme. Each
// colour token is also exposed as a `--token` CSS variable.
func (c *Config) ThemeConfig() *theme.RendererConfig {
	tokens := copyStrings(c.ThemeColors)
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+key] = value
	}
	manifest := c.ThemeManifest()
	return &theme.RendererConfig{
		Theme:   manifest.Name,
		Tokens:  tokens,
		CSSVars: vars,
		AssetURL: func(key string) string {
			return manifest.Assets.Files[key]
		},
	}
}

// RegisterThemes registers a manifest for every school in the store, using
// the base full form config of each entry when present.
func RegisterThemes(store *Store) (theme.ThemeProvider, error) {
	registry := theme.NewRegistry()
	for _, slug := range store.Slugs() {
		entry, _ := store.Entry(slug)
		cfg, ok := entry.Config(FlowBaseFullForm)
		if !ok {
			if len(entry.Configs) == 0 {
				continue
			}
			cfg = entry.Configs[0].Config
		}
		if err := registry.Register(cfg.ThemeManifest()); err != nil {
			return nil, fmt.Errorf("school: register theme %q: %w", slug, err)
		}
	}
	return registry, nil
}

// ThemeTokenKeys lists the colour tokens a config defines, sorted.
func (c *Config) ThemeTokenKeys() []string {
	keys := make([]string, 0, len(c.ThemeColors))
	for key := range c.ThemeColors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func copyStrings(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
