package explain

import (
	"context"
	"time"

	"github.com/jmarlow/hamprep/internal/telemetry"
)

// loggingProvider records every generation call to telemetry.
type loggingProvider struct {
	inner Provider
	sink  telemetry.Sink
}

// WithLogging wraps a Provider with telemetry logging.
func WithLogging(p Provider, sink telemetry.Sink) Provider {
	if sink == nil {
		sink = telemetry.Nop{}
	}
	return &loggingProvider{inner: p, sink: sink}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	payload := map[string]any{
		"model":      l.inner.ModelID(),
		"latency_ms": time.Since(start).Milliseconds(),
	}
	if resp != nil {
		payload["model"] = resp.Model
		payload["input_tokens"] = resp.Usage.InputTokens
		payload["output_tokens"] = resp.Usage.OutputTokens
	}
	l.sink.Record(ctx, "explain.generate", payload, err)

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
