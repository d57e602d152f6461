package indexcache

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the index cache factory Graft node.
const NodeID graft.ID = "adapter.index_cache"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Factory, error) {
			return NewFactory(), nil
		},
	})
}
