// Package telemetry records the outcomes of fire-and-forget work so
// background failures show up somewhere instead of disappearing into
// an unobserved goroutine.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"github.com/jmarlow/hamprep/internal/store"
)

// Sink accepts telemetry events. Implementations are best-effort:
// Record never returns an error and must not panic.
type Sink interface {
	Record(ctx context.Context, name string, payload map[string]any, err error)
}

// StoreSink persists events through a TelemetryRepo.
type StoreSink struct {
	repo store.TelemetryRepo
}

// NewStoreSink creates a sink backed by the given repo.
func NewStoreSink(repo store.TelemetryRepo) *StoreSink {
	return &StoreSink{repo: repo}
}

// Record appends one event. A failing append is reported to stderr and
// otherwise swallowed; telemetry must never break the caller.
func (s *StoreSink) Record(ctx context.Context, name string, payload map[string]any, err error) {
	data := store.TelemetryEventData{
		Name:    name,
		Payload: payload,
		Success: err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	if appendErr := s.repo.Append(ctx, data); appendErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record telemetry event %s: %v\n", name, appendErr)
	}
}

// Nop is a Sink that discards everything. Useful in tests and when no
// store is open.
type Nop struct{}

func (Nop) Record(context.Context, string, map[string]any, error) {}
