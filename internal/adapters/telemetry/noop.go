// Package telemetry provides a no-op implementation of the telemetry port,
// for tests and for runs that want no progress output.
package telemetry

import (
	"context"

	"go.trai.ch/orbis/internal/core/ports"
)

// Noop implements ports.Telemetry and records nothing.
type Noop struct{}

// Record returns the context unchanged and a vertex that ignores all calls.
func (Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (Noop) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Complete(error) {}
func (noopVertex) Cached()        {}

var _ ports.Telemetry = Noop{}
