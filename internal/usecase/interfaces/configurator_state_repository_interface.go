package interfaces

import (
	"context"
	"time"

	"optica_xpto/internal/domain/entities"
)

// IConfiguratorStateRepository abstracts the durable TTL slot holding the
// in-flight wizard record, one per client session.
//
// The configurator must be able to:
//   - write the whole record on every mutation, bounded by the aggregate TTL
//   - read it back at the single rehydration entry point
//   - drop it on reset or after finalization hand-off
//
// Load returns (nil, nil) when no record exists for the session.

type IConfiguratorStateRepository interface {
	Save(ctx context.Context, sessionID string, state entities.ConfiguratorState, ttl time.Duration) error
	Load(ctx context.Context, sessionID string) (*entities.ConfiguratorState, error)
	Delete(ctx context.Context, sessionID string) error
}
