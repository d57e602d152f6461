package frameio

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/orbis/internal/core/ports"
)

// NodeID is the unique identifier for the image IO Graft node.
const NodeID graft.ID = "adapter.frame_io"

func init() {
	graft.Register(graft.Node[ports.ImageIO]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageIO, error) {
			return NewIO(), nil
		},
	})
}
