// Package school loads the static per-school configuration records: branding,
// copy, nudges, fast facts and the rules that drive field resolution. Files
// are JSON or YAML, one school entry per file; the bundled set is embedded and
// exposed through EmbeddedFS. A loaded Store is read-only and safe for
// concurrent use.
package school
