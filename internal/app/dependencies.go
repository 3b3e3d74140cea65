package app

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"weatherbot.app/internal/adapters/database"
	"weatherbot.app/internal/adapters/external"
	"weatherbot.app/internal/adapters/infrastructure"
	"weatherbot.app/internal/config"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/logger"
)

// DependencyContainer owns the infrastructure every command shares: the
// database, the geocode cache, the decorated forecast client, logging and
// metrics.
type DependencyContainer struct {
	config     *config.Config
	options    DependencyOptions
	db         *gorm.DB
	cache      ports.CacheProvider
	breaker    infrastructure.BreakerStateReporter
	fileLogger *infrastructure.FileLoggerAdapter
	ports      *ports.ApplicationPorts
}

// DependencyOptions overrides infrastructure for tests
type DependencyOptions struct {
	// Dialector defaults to Postgres built from the database config
	Dialector gorm.Dialector
	// Registerer defaults to prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
	// Logger defaults to a JSON slog logger at LOG_LEVEL
	Logger *logger.Logger
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:  cfg,
		options: opts,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

// OpenDatabase connects to Postgres using the database config
func OpenDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates the users table
func RunMigrations(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	if err := db.AutoMigrate(&database.UserPreferenceModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...")

	var (
		db  *gorm.DB
		err error
	)
	if c.options.Dialector != nil {
		db, err = gorm.Open(c.options.Dialector, &gorm.Config{})
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
	} else {
		db, err = OpenDatabase(c.config.Database)
		if err != nil {
			return err
		}
	}

	if err := RunMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	appLogger := c.options.Logger
	if appLogger == nil {
		appLogger = logger.NewWithLevel(logger.ParseLevel(c.config.LogLevel))
	}
	appLogger = appLogger.WithField("service", "weatherbot")
	var log ports.Logger = infrastructure.NewSlogLoggerAdapter(appLogger)

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	metrics := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		Registerer: c.options.Registerer,
		CacheType:  c.config.Cache.Type.String(),
	})

	repo := database.NewUserPreferenceRepositoryAdapter(c.db)

	cacheFactory := external.NewCacheProviderFactory()
	cacheProvider, err := cacheFactory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cache = cacheProvider
	geocodeCache := external.NewGeocodeCacheAdapter(cacheProvider)

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	forecastClient := c.buildForecastClient(log, metrics)

	c.ports = &ports.ApplicationPorts{
		ForecastClient:           forecastClient,
		GeocodeCache:             geocodeCache,
		UserPreferenceRepository: repo,
		ConfigProvider:           configProvider,
		Logger:                   log,
		MetricsCollector:         metrics,
		Database:                 c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// buildForecastClient layers OpenWeatherMap with logging, the circuit
// breaker and metrics, innermost first.
func (c *DependencyContainer) buildForecastClient(log ports.Logger, metrics ports.MetricsCollector) ports.ForecastClient {
	weatherCfg := c.config.Weather

	clientLogger := log
	if weatherCfg.EnableLogging && weatherCfg.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherCfg.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			clientLogger = infrastructure.NewTeeLogger(log, fileLogger)
			slog.Info("File logging enabled", "path", weatherCfg.LogFilePath)
		}
	}

	var client ports.ForecastClient = external.NewOpenWeatherMapClientAdapter(external.OpenWeatherMapClientParams{
		APIKey:       weatherCfg.OpenWeatherMapKey,
		ForecastURL:  weatherCfg.OpenWeatherMapBaseURL,
		GeocodingURL: weatherCfg.GeocodingBaseURL,
		GeocodeLimit: weatherCfg.GeocodeLimit,
		Timeout:      weatherCfg.HTTPTimeout(),
		Logger:       log,
	})

	if weatherCfg.EnableLogging {
		client = external.NewForecastClientLoggingDecorator(client, clientLogger)
		slog.Info("Forecast client logging enabled")
	}

	if weatherCfg.EnableBreaker {
		breaker := external.NewBreakerForecastClient(client, log)
		c.breaker = breaker
		client = breaker
	}

	return external.NewForecastClientMetricsDecorator(client, metrics)
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// CacheProvider returns the generic cache behind the geocode cache
func (c *DependencyContainer) CacheProvider() ports.CacheProvider {
	return c.cache
}

// Breaker returns the forecast circuit breaker, or nil when it is disabled
func (c *DependencyContainer) Breaker() infrastructure.BreakerStateReporter {
	return c.breaker
}

// Cleanup releases the database, the cache connection and the log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	if closer, ok := c.cache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			firstErr = err
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			if err := db.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
