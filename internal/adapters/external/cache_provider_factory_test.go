package external

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherbot.app/internal/config"
	"weatherbot.app/pkg/errors"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	_, redisCfg := setupMockRedis(t)

	tests := []struct {
		name     string
		config   *config.CacheConfig
		wantType string
		wantErr  bool
	}{
		{name: "memory", config: &config.CacheConfig{Type: config.CacheTypeMemory}, wantType: "*external.MemoryCacheProvider"},
		{name: "disabled", config: &config.CacheConfig{Type: config.CacheTypeNone}, wantType: "*external.MemoryCacheProvider"},
		{name: "redis", config: &config.CacheConfig{Type: config.CacheTypeRedis, Redis: *redisCfg}, wantType: "*external.RedisCacheProviderAdapter"},
		{name: "unknown", config: &config.CacheConfig{Type: config.CacheTypeUnknown}, wantErr: true},
		{name: "nil", config: nil, wantErr: true},
	}

	factory := NewCacheProviderFactory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := factory.CreateCacheProvider(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsConfigurationError(err))
				assert.Nil(t, provider)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, fmt.Sprintf("%T", provider))
			if closer, ok := provider.(*RedisCacheProviderAdapter); ok {
				require.NoError(t, closer.Close())
			}
		})
	}
}
