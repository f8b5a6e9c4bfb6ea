package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcbuild/internal/core/ports"
)

// NodeID is the unique identifier for the install record store Graft node.
const NodeID graft.ID = "adapter.install_record_store"

func init() {
	graft.Register(graft.Node[ports.InstallRecordStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallRecordStore, error) {
			return NewStore(), nil
		},
	})
}
