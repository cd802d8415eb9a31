package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/docktile/docktile/pkg/tile"
)

// RedisConfig configures the Redis-backed store.
type RedisConfig struct {
	Addr     string // host:port, e.g. "localhost:6379"
	Password string // optional
	DB       int    // redis database number
	Prefix   string // key prefix, defaults to "docktile:layout:"
}

// Redis is a Redis-backed snapshot store for multi-instance
// deployments. Layouts are stored as JSON strings under prefixed keys.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis %s: %w", cfg.Addr, err)
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "docktile:layout:"
	}
	return &Redis{client: client, prefix: prefix}, nil
}

func (r *Redis) key(name string) string {
	return r.prefix + name
}

// Load retrieves a snapshot by name.
func (r *Redis) Load(ctx context.Context, name string) (tile.Snapshot, error) {
	raw, err := r.client.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return tile.Snapshot{}, fmt.Errorf("layout %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return tile.Snapshot{}, fmt.Errorf("load layout %q: %w", name, err)
	}
	var snap tile.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return tile.Snapshot{}, fmt.Errorf("parse layout %q: %w", name, err)
	}
	return snap, nil
}

// Save stores a snapshot under the given name. Layouts persist until
// deleted; no TTL is set.
func (r *Redis) Save(ctx context.Context, name string, snap tile.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal layout %q: %w", name, err)
	}
	if err := r.client.Set(ctx, r.key(name), raw, 0).Err(); err != nil {
		return fmt.Errorf("save layout %q: %w", name, err)
	}
	return nil
}

// Delete removes a stored snapshot.
func (r *Redis) Delete(ctx context.Context, name string) error {
	if err := r.client.Del(ctx, r.key(name)).Err(); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	return nil
}

// List returns the names of all stored layouts, sorted. It scans
// instead of using KEYS so large instances are not blocked.
func (r *Redis) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the underlying Redis client.
func (r *Redis) Close() error {
	return r.client.Close()
}

var _ Store = (*Redis)(nil)
