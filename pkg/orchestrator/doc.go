// Package orchestrator wires the school store, field resolver and renderer
// registry into a single entry point: given a school slug, a flow and a
// program, it returns the resolved lead form ready for the form component.
package orchestrator
