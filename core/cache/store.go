package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a JSON-serialising key/value backend shared by the response cache
// and the product snapshot store.
type Store interface {
	Load(ctx context.Context, key string, dst interface{}) (bool, error)
	Save(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}

// MemoryStore keeps encoded values in a Cache.
type MemoryStore struct {
	cache *Cache
}

// NewMemoryStore wraps c. A nil c uses the process-wide instance.
func NewMemoryStore(c *Cache) *MemoryStore {
	if c == nil {
		c = GetInstance()
	}
	return &MemoryStore{cache: c}
}

func (s *MemoryStore) Load(_ context.Context, key string, dst interface{}) (bool, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return false, nil
	}
	raw, ok := v.([]byte)
	if !ok {
		return false, fmt.Errorf("cache: unexpected value type %T for %s", v, key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.cache.Set(key, raw, ttl)
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// RedisStore keeps encoded values in Redis under a key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore returns a Store backed by client.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisStore) Load(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(key), raw, ttl).Err()
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

// NewStore returns a RedisStore when client is set, else a MemoryStore on the
// process-wide cache under the same prefix.
func NewStore(client *redis.Client, prefix string) Store {
	if client != nil {
		return NewRedisStore(client, prefix)
	}
	return &prefixedStore{prefix: prefix, Store: NewMemoryStore(nil)}
}

type prefixedStore struct {
	Store
	prefix string
}

func (s *prefixedStore) Load(ctx context.Context, key string, dst interface{}) (bool, error) {
	return s.Store.Load(ctx, s.prefix+key, dst)
}

func (s *prefixedStore) Save(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return s.Store.Save(ctx, s.prefix+key, value, ttl)
}

func (s *prefixedStore) Remove(ctx context.Context, key string) error {
	return s.Store.Remove(ctx, s.prefix+key)
}
