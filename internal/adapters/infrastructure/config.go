package infrastructure

import (
	"weatherbot.app/internal/config"
	"weatherbot.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter. The
// config is expected to have passed Validate.
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetTelegramConfig returns chat transport configuration
func (c *ConfigProviderAdapter) GetTelegramConfig() ports.TelegramConfig {
	return ports.TelegramConfig{
		BotToken:    c.config.Telegram.BotToken,
		PollTimeout: c.config.Telegram.PollTimeoutSeconds,
		Debug:       c.config.Telegram.Debug,
	}
}

// GetServerConfig returns ops server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetDatabaseConfig returns database configuration
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Host:     c.config.Database.Host,
		Port:     c.config.Database.Port,
		User:     c.config.Database.User,
		Password: c.config.Database.Password,
		Name:     c.config.Database.Name,
		SSLMode:  c.config.Database.SSLMode,
	}
}

// GetWeatherConfig returns forecast client configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	w := c.config.Weather
	return ports.WeatherConfig{
		APIKey:        w.OpenWeatherMapKey,
		ForecastURL:   w.OpenWeatherMapBaseURL,
		GeocodingURL:  w.GeocodingBaseURL,
		HTTPTimeout:   w.HTTPTimeout(),
		GeocodeLimit:  w.GeocodeLimit,
		EnableLogging: w.EnableLogging,
		LogFilePath:   w.LogFilePath,
		EnableBreaker: w.EnableBreaker,
	}
}

// GetCacheConfig returns geocode cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:       c.config.Cache.Type.String(),
		GeocodeTTL: c.config.Cache.GeocodeTTL(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}

// GetSchedulerConfig returns daily dispatch configuration
func (c *ConfigProviderAdapter) GetSchedulerConfig() ports.SchedulerConfig {
	s := c.config.Scheduler
	// Validate has already proven the zone loads
	loc, _ := s.Location()
	return ports.SchedulerConfig{
		DispatchTime:        s.DispatchTime,
		DisplayTime:         s.DisplayTime(),
		Location:            loc,
		DispatchConcurrency: s.DispatchConcurrency,
	}
}

// GetConversationConfig returns dialogue session configuration
func (c *ConfigProviderAdapter) GetConversationConfig() ports.ConversationConfig {
	return ports.ConversationConfig{
		Timeout:       c.config.Conversation.Timeout(),
		SweepInterval: c.config.Conversation.SweepInterval(),
	}
}
