// Package render encodes resolved lead forms for the external form component.
// Renderers are registered by name and can be negotiated from an HTTP Accept
// header.
package render
