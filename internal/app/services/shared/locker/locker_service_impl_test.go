package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}}
}

func (m *memoryRedis) encode(value interface{}) string {
	raw, _ := json.Marshal(value)
	return string(raw)
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = m.encode(value)
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = m.encode(value)
	return true, nil
}

func (m *memoryRedis) DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[key] != m.encode(value) {
		return false, nil
	}
	delete(m.data, key)
	return true, nil
}

func TestLockService(t *testing.T) {
	ctx := context.Background()
	key := "booking:lock:Cleaning:2024-01-01:a@x.com"

	t.Run("Second Holder Is Refused Until Release", func(t *testing.T) {
		service := NewLockService(newMemoryRedis(), zap.NewNop())

		acquired, lockValue, err := service.TryLock(ctx, key, time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)

		acquired, _, err = service.TryLock(ctx, key, time.Second)
		require.NoError(t, err)
		assert.False(t, acquired, "lock must not be handed out twice")

		require.NoError(t, service.Unlock(ctx, key, lockValue))

		acquired, _, err = service.TryLock(ctx, key, time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("Foreign Value Does Not Release", func(t *testing.T) {
		redis := newMemoryRedis()
		service := NewLockService(redis, zap.NewNop())

		acquired, _, err := service.TryLock(ctx, key, time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		require.NoError(t, service.Unlock(ctx, key, "someone-else"))

		stored, _ := redis.Get(ctx, key)
		assert.NotEmpty(t, stored, "lock owned by another value must survive")
	})

	t.Run("Empty Value Is An Error", func(t *testing.T) {
		service := NewLockService(newMemoryRedis(), zap.NewNop())
		assert.Error(t, service.Unlock(ctx, key, ""))
	})
}
