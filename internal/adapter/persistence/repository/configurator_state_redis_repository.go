package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase/interfaces"

	goredis "github.com/redis/go-redis/v9"
)

const stateKeyPrefix = "lens_configurator:session:"

// ConfiguratorStateRedisRepository persists the wizard record as a single
// JSON value per session key with a TTL bound to the aggregate expiry.
//
// Storage model (Redis):
//   - key: lens_configurator:session:<session_id>
//   - value: JSON-encoded ConfiguratorState
//   - last write wins; there is exactly one writer per session
//
// Redis expiry and the expires_at field overlap on purpose: the TTL reclaims
// storage, the field check at rehydration is the authoritative guard.

type ConfiguratorStateRedisRepository struct {
	rdb *goredis.Client
}

var _ interfaces.IConfiguratorStateRepository = (*ConfiguratorStateRedisRepository)(nil)

func NewConfiguratorStateRedisRepository(rdb *goredis.Client) *ConfiguratorStateRedisRepository {
	return &ConfiguratorStateRedisRepository{rdb: rdb}
}

func (r *ConfiguratorStateRedisRepository) Save(ctx context.Context, sessionID string, state entities.ConfiguratorState, ttl time.Duration) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, stateKeyPrefix+sessionID, payload, ttl).Err()
}

func (r *ConfiguratorStateRedisRepository) Load(ctx context.Context, sessionID string) (*entities.ConfiguratorState, error) {
	payload, err := r.rdb.Get(ctx, stateKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var state entities.ConfiguratorState
	if err := json.Unmarshal(payload, &state); err != nil {
		// A record we cannot decode is as good as no record; the
		// configurator starts clean rather than rendering broken state.
		return nil, nil
	}
	return &state, nil
}

func (r *ConfiguratorStateRedisRepository) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, stateKeyPrefix+sessionID).Err()
}
