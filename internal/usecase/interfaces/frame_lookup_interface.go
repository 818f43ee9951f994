package interfaces

import (
	"context"

	"optica_xpto/internal/domain/entities"
)

// IFrameLookup is the catalog collaborator that resolves a frame reference.
// Consumed once at configuration start; the snapshot travels with the
// persisted state afterwards.

type IFrameLookup interface {
	GetFrame(ctx context.Context, frameID string) (entities.Frame, error)
}
