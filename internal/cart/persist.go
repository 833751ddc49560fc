package cart

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Persister stores the whole cart as one keyed blob. Load is called once at
// startup, Save after every mutation.
type Persister interface {
	Load(ctx context.Context) ([]Line, error)
	Save(ctx context.Context, lines []Line) error
}

// RedisPersister keeps the serialized cart under cart:{key}.
type RedisPersister struct {
	rdb *redis.Client
	key string
}

func NewRedisPersister(rdb *redis.Client, key string) *RedisPersister {
	return &RedisPersister{rdb: rdb, key: "cart:" + key}
}

func (r *RedisPersister) Load(ctx context.Context) ([]Line, error) {
	raw, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		// Corrupt blob: start over with an empty cart.
		return nil, err
	}
	return lines, nil
}

func (r *RedisPersister) Save(ctx context.Context, lines []Line) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key, raw, 0).Err()
}

// MemoryPersister is an in-process Persister for tests and throwaway carts.
type MemoryPersister struct {
	Blob []byte
}

func (m *MemoryPersister) Load(ctx context.Context) ([]Line, error) {
	if len(m.Blob) == 0 {
		return nil, nil
	}
	var lines []Line
	if err := json.Unmarshal(m.Blob, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (m *MemoryPersister) Save(ctx context.Context, lines []Line) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	m.Blob = raw
	return nil
}
