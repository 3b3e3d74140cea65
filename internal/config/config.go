package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"weatherbot.app/pkg/errors"
)

const (
	maxRedisDB          = 15
	maxCacheTTLMinutes  = 10080
	maxPortNumber       = 65535
	maxGeocodeLimit     = 5
	maxDispatchWorkers  = 64
	minConversationSecs = 10
)

// Config represents the bot configuration structure
type Config struct {
	Telegram     TelegramConfig     `split_words:"true"`
	Server       ServerConfig       `split_words:"true"`
	Database     DatabaseConfig     `split_words:"true"`
	Weather      WeatherConfig      `split_words:"true"`
	Cache        CacheConfig        `split_words:"true"`
	Scheduler    SchedulerConfig    `split_words:"true"`
	Conversation ConversationConfig `split_words:"true"`
	LogLevel     string             `envconfig:"LOG_LEVEL" default:"info"`
}

type TelegramConfig struct {
	BotToken           string `envconfig:"TELEGRAM_BOT_TOKEN"`
	PollTimeoutSeconds int    `envconfig:"TELEGRAM_POLL_TIMEOUT" default:"60"`
	Debug              bool   `envconfig:"TELEGRAM_DEBUG" default:"false"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherbot"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	GeocodingBaseURL      string `envconfig:"OPENWEATHERMAP_GEO_BASE_URL" default:"https://api.openweathermap.org/geo/1.0"`
	HTTPTimeoutSeconds    int    `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`
	GeocodeLimit          int    `envconfig:"WEATHER_GEOCODE_LIMIT" default:"5"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/forecast_client.log"`
	EnableBreaker         bool   `envconfig:"WEATHER_ENABLE_BREAKER" default:"true"`
}

// HTTPTimeout returns the per-request timeout for the forecast client
func (w WeatherConfig) HTTPTimeout() time.Duration {
	return time.Duration(w.HTTPTimeoutSeconds) * time.Second
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeNone
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeNone:
		return "none"
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeNone || c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "none":
		return CacheTypeNone
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type              CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	GeocodeTTLMinutes int         `envconfig:"GEOCODE_CACHE_TTL_MINUTES" default:"1440"`
	Redis             RedisConfig `split_words:"true"`
}

// GeocodeTTL returns how long geocoding results stay cached
func (c CacheConfig) GeocodeTTL() time.Duration {
	return time.Duration(c.GeocodeTTLMinutes) * time.Minute
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type SchedulerConfig struct {
	DispatchTime        string `envconfig:"DISPATCH_TIME" default:"07:00"`
	DispatchTimezone    string `envconfig:"DISPATCH_TIMEZONE" default:"Asia/Tel_Aviv"`
	DispatchConcurrency int    `envconfig:"DISPATCH_CONCURRENCY" default:"1"`
}

// Location resolves the dispatch timezone
func (s SchedulerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.DispatchTimezone)
	if err != nil {
		return nil, errors.NewConfigurationError("DISPATCH_TIMEZONE is not a known IANA zone", err)
	}
	return loc, nil
}

// DisplayTime renders the dispatch time the way the greeting shows it ("7:00")
func (s SchedulerConfig) DisplayTime() string {
	t, err := time.Parse("15:04", s.DispatchTime)
	if err != nil {
		return s.DispatchTime
	}
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}

type ConversationConfig struct {
	TimeoutSeconds int `envconfig:"CONVERSATION_TIMEOUT_SECONDS" default:"120"`
	SweepSeconds   int `envconfig:"CONVERSATION_SWEEP_SECONDS" default:"5"`
}

func (c ConversationConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c ConversationConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepSeconds) * time.Second
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Telegram.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	if err := c.Conversation.Validate(); err != nil {
		return err
	}
	return nil
}

func (t *TelegramConfig) Validate() error {
	if t.BotToken == "" {
		return errors.NewConfigurationError("TELEGRAM_BOT_TOKEN cannot be empty", nil)
	}
	if t.PollTimeoutSeconds < 1 {
		return errors.NewConfigurationError("TELEGRAM_POLL_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	if err := d.ValidateSSLMode(); err != nil {
		return err
	}
	return nil
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (w *WeatherConfig) Validate() error {
	if w.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY cannot be empty", nil)
	}
	for name, url := range map[string]string{
		"OPENWEATHERMAP_API_BASE_URL": w.OpenWeatherMapBaseURL,
		"OPENWEATHERMAP_GEO_BASE_URL": w.GeocodingBaseURL,
	} {
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
		}
	}
	if w.HTTPTimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if w.GeocodeLimit < 1 || w.GeocodeLimit > maxGeocodeLimit {
		return errors.NewConfigurationError("WEATHER_GEOCODE_LIMIT must be between 1 and 5", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when logging is enabled", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: none, memory, redis", nil)
	}
	if c.Type != CacheTypeNone && (c.GeocodeTTLMinutes < 1 || c.GeocodeTTLMinutes > maxCacheTTLMinutes) {
		return errors.NewConfigurationError("GEOCODE_CACHE_TTL_MINUTES must be between 1 and 10080 minutes", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (s *SchedulerConfig) Validate() error {
	if _, err := time.Parse("15:04", s.DispatchTime); err != nil {
		return errors.NewConfigurationError("DISPATCH_TIME must be in HH:MM format", err)
	}
	if _, err := s.Location(); err != nil {
		return err
	}
	if s.DispatchConcurrency < 1 || s.DispatchConcurrency > maxDispatchWorkers {
		return errors.NewConfigurationError("DISPATCH_CONCURRENCY must be between 1 and 64", nil)
	}
	return nil
}

func (c *ConversationConfig) Validate() error {
	if c.TimeoutSeconds < minConversationSecs {
		return errors.NewConfigurationError("CONVERSATION_TIMEOUT_SECONDS must be at least 10 seconds", nil)
	}
	if c.SweepSeconds < 1 || c.SweepSeconds > c.TimeoutSeconds {
		return errors.NewConfigurationError("CONVERSATION_SWEEP_SECONDS must be between 1 and the conversation timeout", nil)
	}
	return nil
}
