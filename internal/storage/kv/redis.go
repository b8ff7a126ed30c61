package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store over one Redis database. The prefix carves out a
// namespace: two Redis values with different prefixes share a client
// but can never collide on keys.
type Redis struct {
	client *redis.Client
	prefix string
}

var _ Store = (*Redis)(nil)

func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// Connect opens a client and pings the server so a bad address fails at
// startup instead of on the first request.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis at %s: %w", addr, err)
	}
	return client, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s%s: %w", r.prefix, key, err)
	}
	return val, nil
}

func (r *Redis) Put(ctx context.Context, key string, val []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, val, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s%s: %w", r.prefix, key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s%s: %w", r.prefix, key, err)
	}
	return nil
}
