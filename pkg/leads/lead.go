package leads

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-leadform/pkg/model"
)

// Mask replaces the value of a personally identifiable field.
const Mask = "[redacted]"

// Lead is an accepted submission.
type Lead struct {
	ID         string         `json:"id"`
	School     string         `json:"school"`
	SchoolID   int            `json:"schoolId"`
	Flow       string         `json:"flow"`
	ProgramID  string         `json:"programId"`
	Values     map[string]any `json:"values"`
	ReceivedAt time.Time      `json:"receivedAt"`
}

// New stamps a lead with a random id and the current time.
func New(school string, schoolID int, flow, programID string, values map[string]any) Lead {
	return Lead{
		ID:         uuid.NewString(),
		School:     school,
		SchoolID:   schoolID,
		Flow:       flow,
		ProgramID:  programID,
		Values:     values,
		ReceivedAt: time.Now().UTC(),
	}
}

// Redact returns a copy of values with every PII field masked. Group members
// flagged as PII mask the group's submitted value.
func Redact(fields []model.Field, values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	pii := make(map[string]struct{})
	for _, field := range fields {
		if isPII(field) {
			pii[string(field.InputName())] = struct{}{}
		}
	}

	out := make(map[string]any, len(values))
	for key, value := range values {
		if _, masked := pii[key]; masked && !isBlank(value) {
			out[key] = Mask
			continue
		}
		out[key] = value
	}
	return out
}

func isPII(field model.Field) bool {
	if field.PII {
		return true
	}
	for _, member := range field.Members() {
		if member.PII {
			return true
		}
	}
	return false
}

func isBlank(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Sink receives accepted leads.
type Sink interface {
	Submit(ctx context.Context, lead Lead) error
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(ctx context.Context, lead Lead) error

// Submit calls the underlying function.
func (fn SinkFunc) Submit(ctx context.Context, lead Lead) error {
	return fn(ctx, lead)
}
