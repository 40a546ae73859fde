package store

import (
	"context"
	"fmt"

	"github.com/jmarlow/hamprep/ent"
)

// telemetryRepo implements TelemetryRepo using the ent client.
type telemetryRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *telemetryRepo) Append(ctx context.Context, data TelemetryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.TelemetryEvent.Create().
		SetSequence(seqNum).
		SetName(data.Name).
		SetSuccess(data.Success)

	if len(data.Payload) > 0 {
		builder = builder.SetPayload(data.Payload)
	}
	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save telemetry event: %w", err)
	}
	return nil
}
