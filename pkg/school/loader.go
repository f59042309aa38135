package school

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-leadform/pkg/resolver"
)

// LoadOption customises how school files are normalised.
type LoadOption func(*loadConfig)

type loadConfig struct {
	resolverFn func(resolver.Rules) resolver.FieldsResolver
}

// WithResolverFactory overrides how a config's resolver is built from its
// rules.
func WithResolverFactory(fn func(resolver.Rules) resolver.FieldsResolver) LoadOption {
	return func(cfg *loadConfig) {
		if fn != nil {
			cfg.resolverFn = fn
		}
	}
}

func defaultResolver(rules resolver.Rules) resolver.FieldsResolver {
	return resolver.New(rules)
}

// LoadFS walks the provided filesystem and parses JSON/YAML school files, one
// entry per file. When fsys is nil or no files are present, the returned
// store is empty.
func LoadFS(fsys fs.FS, opts ...LoadOption) (*Store, error) {
	cfg := loadConfig{resolverFn: defaultResolver}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	store := NewStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchoolFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("school: read %s: %w", path, err)
		}

		raw, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		normalised, err := normaliseEntry(raw, path, cfg)
		if err != nil {
			return err
		}
		if err := store.Register(normalised); err != nil {
			return fmt.Errorf("school: file %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func parseDocument(data []byte, source string) (Entry, error) {
	var doc Entry
	if len(strings.TrimSpace(string(data))) == 0 {
		return Entry{}, fmt.Errorf("school: file %s is empty", source)
	}

	ext := strings.ToLower(filepath.Ext(source))
	if ext == ".json" {
		if err := json.Unmarshal(data, &doc); err != nil {
			return Entry{}, fmt.Errorf("school: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Entry{}, fmt.Errorf("school: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseEntry(raw Entry, source string, cfg loadConfig) (Entry, error) {
	slug := Slug(strings.TrimSpace(string(raw.Slug)))
	if slug == "" {
		return Entry{}, fmt.Errorf("school: file %s defines an empty slug", source)
	}
	if len(raw.Configs) == 0 {
		return Entry{}, fmt.Errorf("school: %q (file %s) has no flow configs", slug, source)
	}

	out := Entry{Slug: slug, Configs: make([]FlowConfig, 0, len(raw.Configs))}
	flows := make(map[Flow]struct{}, len(raw.Configs))
	for idx, fc := range raw.Configs {
		flow := Flow(strings.TrimSpace(string(fc.Flow)))
		if flow == "" {
			flow = FlowBaseFullForm
		}
		if _, exists := flows[flow]; exists {
			return Entry{}, fmt.Errorf("school: %q (file %s) defines duplicate flow %q", slug, source, flow)
		}
		flows[flow] = struct{}{}

		if fc.Config == nil {
			return Entry{}, fmt.Errorf("school: %q (file %s) flow %q has no config", slug, source, flow)
		}
		conf, err := normaliseConfig(*fc.Config, slug, cfg)
		if err != nil {
			return Entry{}, fmt.Errorf("school: %q (file %s) config %d: %w", slug, source, idx, err)
		}
		out.Configs = append(out.Configs, FlowConfig{Flow: flow, Config: conf})
	}
	return out, nil
}

func normaliseConfig(raw Config, slug Slug, cfg loadConfig) (*Config, error) {
	conf := raw
	if conf.Slug == "" {
		conf.Slug = slug
	}
	if conf.Slug != slug {
		return nil, fmt.Errorf("slug %q does not match entry slug %q", conf.Slug, slug)
	}
	conf.SchoolName = strings.TrimSpace(conf.SchoolName)
	if conf.SchoolName == "" {
		return nil, fmt.Errorf("missing schoolName")
	}

	for _, level := range conf.Rules.EducationLevels {
		if !level.Valid() {
			return nil, fmt.Errorf("unknown education level %q", level)
		}
	}
	for level := range conf.Rules.EducationLabelOverrides {
		if !level.Valid() {
			return nil, fmt.Errorf("unknown education level override %q", level)
		}
	}

	if len(conf.FastFacts) > 0 {
		facts := make([]FastFact, len(conf.FastFacts))
		for i, fact := range conf.FastFacts {
			fact.Icon = sanitizeIcon(fact.Icon)
			facts[i] = fact
		}
		conf.FastFacts = facts
	}

	conf.Resolver = cfg.resolverFn(conf.Rules)
	return &conf, nil
}

func isSchoolFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
