// Package leads validates lead submissions against resolved field
// descriptors. Descriptors are translated into an OpenAPI 3 object schema,
// which is published to clients and visited for server side checks. Accepted
// leads are stamped with an id and handed to a Sink.
package leads
