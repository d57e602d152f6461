package ports

import "context"

// Telemetry records progress of long-running work as a series of vertices,
// one per unit of work (an index build, a frame).
type Telemetry interface {
	// Record starts a new vertex with the given display name.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and ends the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Complete marks the vertex as finished, successfully if err is nil.
	Complete(err error)

	// Cached marks the vertex as satisfied from cache.
	Cached()
}
