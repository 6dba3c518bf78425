// Package tracing reports opencensus spans through the context logger.
package tracing

import (
	"context"

	"github.com/go-sod/imgvec/internal/logging"
	"go.opencensus.io/trace"
	"go.uber.org/zap"
)

type logExporter struct {
	logger *zap.SugaredLogger
}

var _ trace.Exporter = (*logExporter)(nil)

func NewLogExporter(logger *zap.SugaredLogger) trace.Exporter {
	return &logExporter{logger: logger}
}

func (e *logExporter) ExportSpan(s *trace.SpanData) {
	e.logger.Debugw("span finished",
		"name", s.Name,
		"traceId", s.TraceID.String(),
		"spanId", s.SpanID.String(),
		"duration", s.EndTime.Sub(s.StartTime).String(),
		"statusCode", s.Status.Code,
		"statusMessage", s.Status.Message,
		"attributes", s.Attributes,
	)
}

// Register samples every span and exports it to the logger from ctx.
// The returned func unregisters the exporter.
func Register(ctx context.Context) func() {
	exporter := NewLogExporter(logging.FromContext(ctx))
	trace.RegisterExporter(exporter)
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.AlwaysSample()})
	return func() {
		trace.UnregisterExporter(exporter)
	}
}
