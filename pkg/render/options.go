package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the resolved form.
type RenderOptions struct {
	// Values pre-populates fields by input name. Group members are marked
	// selected when their value matches.
	Values map[string]any
	// Errors surfaces validation feedback keyed by input name. Messages are
	// attached to the field metadata under "errors".
	Errors map[string][]string
	// Compact disables indentation for encoders that support it.
	Compact bool
}
