package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/internal/config"
	"weatherbot.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	tests := []struct {
		name      string
		config    func(t *testing.T) *config.RedisConfig
		errorType errors.ErrorType
		wantErr   bool
	}{
		{
			name:      "NilConfig",
			config:    func(t *testing.T) *config.RedisConfig { return nil },
			wantErr:   true,
			errorType: errors.ErrorTypeConfiguration,
		},
		{
			name: "ValidConfig",
			config: func(t *testing.T) *config.RedisConfig {
				_, cfg := setupMockRedis(t)
				return cfg
			},
		},
		{
			name: "UnreachableServer",
			config: func(t *testing.T) *config.RedisConfig {
				return &config.RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
			},
			wantErr:   true,
			errorType: errors.ErrorTypeDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewRedisCacheProviderAdapter(tt.config(t))
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, provider)
				appErr, ok := errors.As(err)
				require.True(t, ok)
				assert.Equal(t, tt.errorType, appErr.Type)
				return
			}
			require.NoError(t, err)
			require.NoError(t, provider.Close())
		})
	}
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	provider, err := NewRedisCacheProviderAdapter(cfg)
	require.NoError(t, err)
	defer provider.Close()
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, "geocode:london", []byte("payload"), time.Hour))
	assert.True(t, mockRedis.Exists("weatherbot:geocode:london"))
	assert.Equal(t, time.Hour, mockRedis.TTL("weatherbot:geocode:london"))

	data, err := provider.Get(ctx, "geocode:london")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	exists, err := provider.Exists(ctx, "geocode:london")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = provider.Get(ctx, "geocode:paris")
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, provider.Delete(ctx, "geocode:london"))
	_, err = provider.Get(ctx, "geocode:london")
	assert.True(t, errors.IsNotFoundError(err))

	stats := provider.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
}

func TestRedisCacheProviderAdapter_Expiry(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	provider, err := NewRedisCacheProviderAdapter(cfg)
	require.NoError(t, err)
	defer provider.Close()
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, "k", []byte("v"), time.Minute))
	mockRedis.FastForward(2 * time.Minute)

	_, err = provider.Get(ctx, "k")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRedisCacheProviderAdapter_ClearOnlyOwnKeys(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	provider, err := NewRedisCacheProviderAdapter(cfg)
	require.NoError(t, err)
	defer provider.Close()
	ctx := context.Background()

	require.NoError(t, mockRedis.Set("someone-else", "keep"))
	require.NoError(t, provider.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, provider.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, provider.Clear(ctx))

	assert.False(t, mockRedis.Exists("weatherbot:a"))
	assert.False(t, mockRedis.Exists("weatherbot:b"))
	assert.True(t, mockRedis.Exists("someone-else"))
}

func TestRedisCacheProviderAdapter_ServerDown(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	provider, err := NewRedisCacheProviderAdapter(cfg)
	require.NoError(t, err)
	defer provider.Close()
	ctx := context.Background()

	mockRedis.Close()

	_, err = provider.Get(ctx, "k")
	assert.True(t, errors.IsDatabaseError(err))
	assert.True(t, errors.IsDatabaseError(provider.Set(ctx, "k", []byte("v"), time.Minute)))
	assert.True(t, errors.IsDatabaseError(provider.Ping(ctx)))
}
