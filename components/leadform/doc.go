// Package leadform exposes the school lead forms over net/http.
//
// Mounted under a route path (default /api/leadform) the handler serves:
//
//	GET  {route}/schools/{slug}/fields?program=&flow=   resolved form, negotiated by Accept
//	GET  {route}/schools/{slug}/schema?program=&flow=   JSON schema of the submission
//	POST {route}/schools/{slug}/leads                   validate and accept a lead
//
// Submissions carry {"programId": ..., "flow": ..., "values": {...}}. Invalid
// values answer 422 with one issue per field; accepted leads are handed to the
// configured Sink and answer 201.
package leadform
