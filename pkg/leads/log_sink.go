package leads

import (
	"context"

	"go.uber.org/zap"

	"github.com/goliatone/go-leadform/pkg/model"
)

// LogSink writes accepted leads to a zap logger with PII masked.
type LogSink struct {
	logger *zap.Logger
	fields func(Lead) []model.Field
}

// LogSinkOption configures a LogSink.
type LogSinkOption func(*LogSink)

// WithFieldSource supplies the descriptors used to decide which values are
// masked. Without it every value is logged as submitted.
func WithFieldSource(fn func(Lead) []model.Field) LogSinkOption {
	return func(s *LogSink) {
		s.fields = fn
	}
}

// NewLogSink returns a sink logging to logger. A nil logger discards.
func NewLogSink(logger *zap.Logger, opts ...LogSinkOption) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	sink := &LogSink{logger: logger.Named("leads")}
	for _, opt := range opts {
		if opt != nil {
			opt(sink)
		}
	}
	return sink
}

// Submit logs the lead.
func (s *LogSink) Submit(ctx context.Context, lead Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	values := lead.Values
	if s.fields != nil {
		values = Redact(s.fields(lead), values)
	}
	s.logger.Info("lead received",
		zap.String("lead_id", lead.ID),
		zap.String("school", lead.School),
		zap.Int("school_id", lead.SchoolID),
		zap.String("flow", lead.Flow),
		zap.String("program_id", lead.ProgramID),
		zap.Any("values", values),
		zap.Time("received_at", lead.ReceivedAt),
	)
	return nil
}
