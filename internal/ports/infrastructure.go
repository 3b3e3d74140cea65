package ports

import (
	"context"
	"time"
)

// TelegramConfig represents chat transport configuration
type TelegramConfig struct {
	BotToken    string
	PollTimeout int
	Debug       bool
}

// ServerConfig represents ops server configuration
type ServerConfig struct {
	Port int
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// WeatherConfig represents forecast client configuration
type WeatherConfig struct {
	APIKey        string
	ForecastURL   string
	GeocodingURL  string
	HTTPTimeout   time.Duration
	GeocodeLimit  int
	EnableLogging bool
	LogFilePath   string
	EnableBreaker bool
}

// CacheConfig represents geocode cache configuration
type CacheConfig struct {
	Type       string
	GeocodeTTL time.Duration
	Redis      RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// SchedulerConfig represents daily dispatch configuration
type SchedulerConfig struct {
	DispatchTime        string
	DisplayTime         string
	Location            *time.Location
	DispatchConcurrency int
}

// ConversationConfig represents dialogue session configuration
type ConversationConfig struct {
	Timeout       time.Duration
	SweepInterval time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetTelegramConfig() TelegramConfig
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetWeatherConfig() WeatherConfig
	GetCacheConfig() CacheConfig
	GetSchedulerConfig() SchedulerConfig
	GetConversationConfig() ConversationConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context)
	RecordCacheMiss(ctx context.Context)
	RecordForecastCall(ctx context.Context, operation string, success bool, duration time.Duration)
	RecordDialogueEvent(ctx context.Context, state, event string)
	RecordDispatch(ctx context.Context, result DispatchResult)
	SetActiveSessions(count int)
}
