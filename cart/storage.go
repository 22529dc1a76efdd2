package cart

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryStorage keeps cart state in process memory. Used in tests and as
// the fallback when Redis is not configured.
type MemoryStorage struct {
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: map[string][]byte{}}
}

func (m *MemoryStorage) Read(key string) ([]byte, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *MemoryStorage) Write(key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *MemoryStorage) Delete(key string) error {
	delete(m.data, key)
	return nil
}

// RedisStorage persists cart state under a per-user prefix so each
// authenticated user gets an isolated cart session.
type RedisStorage struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStorage(client *redis.Client, prefix string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisStorage) Read(key string) ([]byte, bool, error) {
	value, err := r.client.Get(context.Background(), r.prefix+":"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *RedisStorage) Write(key string, value []byte) error {
	return r.client.Set(context.Background(), r.prefix+":"+key, value, r.ttl).Err()
}

func (r *RedisStorage) Delete(key string) error {
	return r.client.Del(context.Background(), r.prefix+":"+key).Err()
}
