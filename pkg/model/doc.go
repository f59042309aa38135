// Package model defines the declarative field descriptors consumed by the
// external form component. A Field describes one input (name, semantic input
// type, label, validation rules, width and format hints, PII flag) and groups
// reuse the same struct with nested members. Validation rules expose canonical
// identifiers (required, minLength/maxLength, pattern) with string parameters
// so consumers can map them onto client validators or server side schemas
// without sacrificing deterministic JSON snapshots.
package model
