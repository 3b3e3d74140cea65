package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherbot.app/internal/adapters/api"
	"weatherbot.app/internal/adapters/infrastructure"
	"weatherbot.app/internal/adapters/scheduler"
	"weatherbot.app/internal/adapters/telegram"
	"weatherbot.app/internal/config"
	"weatherbot.app/internal/core/dialogue"
	"weatherbot.app/internal/core/dispatch"
	"weatherbot.app/internal/core/forecast"
	"weatherbot.app/internal/core/preference"
	"weatherbot.app/internal/ports"
)

// BotClient is the part of *tgbotapi.BotAPI the application talks to
type BotClient interface {
	telegram.Sender
	telegram.UpdateSource
}

// Options overrides external systems; zero values connect to the real ones
type Options struct {
	Dependencies DependencyOptions
	// Bot defaults to a Bot API client authenticated with TELEGRAM_BOT_TOKEN
	Bot BotClient
	// Registry serves /metrics; it also receives the bot metrics
	Registry *prometheus.Registry
	Clock    clockwork.Clock
}

type Application struct {
	config *config.Config
	deps   *DependencyContainer
	ports  *ports.ApplicationPorts
	clock  clockwork.Clock

	// Use Cases
	forecastUseCase   *forecast.UseCase
	preferenceUseCase *preference.UseCase
	dispatchUseCase   *dispatch.UseCase

	// Conversation
	sessions   *dialogue.SessionStore
	controller *dialogue.Controller

	// Adapters
	bot        BotClient
	poller     *telegram.Poller
	scheduler  ports.DispatchScheduler
	httpServer *api.HTTPServerAdapter
	registry   *prometheus.Registry

	sweepCancel context.CancelFunc
	sweepDone   chan struct{}
	shutdown    sync.Once
}

// NewApplication loads configuration from the environment and connects to
// every external system.
func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return NewApplicationWithOptions(cfg, Options{})
}

func NewApplicationWithOptions(cfg *config.Config, opts Options) (*Application, error) {
	if opts.Registry != nil && opts.Dependencies.Registerer == nil {
		opts.Dependencies.Registerer = opts.Registry
	}

	deps, err := NewDependencyContainer(cfg, opts.Dependencies)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps, opts)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer, opts Options) (*Application, error) {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	app := &Application{
		config:   cfg,
		deps:     deps,
		ports:    deps.ApplicationPorts(),
		clock:    clock,
		bot:      opts.Bot,
		registry: opts.Registry,
	}

	if err := app.initializeMessaging(); err != nil {
		return nil, fmt.Errorf("initialize messaging: %w", err)
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeMessaging() error {
	if a.bot == nil {
		telegramCfg := a.ports.ConfigProvider.GetTelegramConfig()
		bot, err := telegram.NewBotAPI(telegram.BotParams{
			Token:  telegramCfg.BotToken,
			Debug:  telegramCfg.Debug,
			Logger: a.ports.Logger,
		})
		if err != nil {
			return fmt.Errorf("connect to telegram: %w", err)
		}
		a.bot = bot
		slog.Info("Authorized on Telegram", "bot", bot.Self.UserName)
	}

	a.ports.Messenger = telegram.NewMessengerAdapter(a.bot, a.ports.Logger)
	return nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	forecastUseCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		Client:  a.ports.ForecastClient,
		Cache:   a.ports.GeocodeCache,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
		Metrics: a.ports.MetricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create forecast use case: %w", err)
	}
	a.forecastUseCase = forecastUseCase

	preferenceUseCase, err := preference.NewUseCase(preference.UseCaseDependencies{
		Repository: a.ports.UserPreferenceRepository,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create preference use case: %w", err)
	}
	a.preferenceUseCase = preferenceUseCase

	conversationCfg := a.ports.ConfigProvider.GetConversationConfig()
	a.sessions = dialogue.NewSessionStore(a.clock, conversationCfg.Timeout)

	controller, err := dialogue.NewController(dialogue.ControllerDependencies{
		Sessions:    a.sessions,
		Forecasts:   a.forecastUseCase,
		Preferences: a.preferenceUseCase,
		Messenger:   a.ports.Messenger,
		Config:      a.ports.ConfigProvider,
		Logger:      a.ports.Logger,
		Metrics:     a.ports.MetricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create dialogue controller: %w", err)
	}
	a.controller = controller

	dispatchUseCase, err := dispatch.NewUseCase(dispatch.UseCaseDependencies{
		Subscribers: a.preferenceUseCase,
		Forecasts:   a.forecastUseCase,
		Messenger:   a.ports.Messenger,
		Config:      a.ports.ConfigProvider,
		Logger:      a.ports.Logger,
		Metrics:     a.ports.MetricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create dispatch use case: %w", err)
	}
	a.dispatchUseCase = dispatchUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	poller, err := telegram.NewPoller(telegram.PollerParams{
		Source:      a.bot,
		Handler:     a.controller,
		PollTimeout: a.ports.ConfigProvider.GetTelegramConfig().PollTimeout,
		Logger:      a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create telegram poller: %w", err)
	}
	a.poller = poller

	dailyScheduler, err := scheduler.NewDailyScheduler(scheduler.DailySchedulerParams{
		Service: a.dispatchUseCase,
		Config:  a.ports.ConfigProvider.GetSchedulerConfig(),
		Logger:  a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create daily scheduler: %w", err)
	}
	a.scheduler = dailyScheduler

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers: map[string]ports.HealthChecker{
			"database":      infrastructure.NewDatabaseHealthChecker(a.deps.Database(), a.ports.UserPreferenceRepository),
			"forecastAPI":   infrastructure.NewForecastAPIHealthChecker(a.ports.ForecastClient, a.deps.Breaker()),
			"cache":         infrastructure.NewCacheHealthChecker(a.config.Cache.Type.String(), a.deps.CacheProvider()),
			"conversations": infrastructure.NewConversationHealthChecker(a.sessions.Len),
		},
	})

	var metricsHandler http.Handler
	if a.registry != nil {
		metricsHandler = promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})
	}

	httpServer, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:              api.ServerConfig{Port: a.config.Server.Port},
		SystemHealthChecker: systemHealthChecker,
		DispatchService:     a.dispatchUseCase,
		MetricsHandler:      metricsHandler,
		Logger:              a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpServer = httpServer

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start runs polling, the session sweeper and the daily scheduler, then
// serves the ops HTTP endpoints until Shutdown.
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	sweepCtx, cancel := context.WithCancel(ctx)
	a.sweepCancel = cancel
	a.sweepDone = make(chan struct{})
	go func() {
		defer close(a.sweepDone)
		a.sessions.RunSweeper(sweepCtx, a.ports.ConfigProvider.GetConversationConfig().SweepInterval, a.controller.Expire)
	}()

	if err := a.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	if err := a.poller.Start(ctx); err != nil {
		return fmt.Errorf("start telegram poller: %w", err)
	}

	return a.httpServer.Start(ctx)
}

// RunDispatchOnce sends today's forecast to every subscriber and returns
func (a *Application) RunDispatchOnce(ctx context.Context) (ports.DispatchResult, error) {
	return a.dispatchUseCase.RunDaily(ctx)
}

func (a *Application) Shutdown(ctx context.Context) error {
	var shutdownErr error
	a.shutdown.Do(func() {
		slog.Info("Shutting down application...")

		if err := a.httpServer.Shutdown(ctx); err != nil {
			slog.Error("Error shutting down HTTP server", "error", err)
			shutdownErr = err
		}

		if err := a.poller.Stop(ctx); err != nil {
			slog.Error("Error stopping telegram poller", "error", err)
			if shutdownErr == nil {
				shutdownErr = err
			}
		}

		if err := a.scheduler.Stop(ctx); err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}

		if a.sweepCancel != nil {
			a.sweepCancel()
			select {
			case <-a.sweepDone:
			case <-ctx.Done():
			}
		}

		if err := a.deps.Cleanup(); err != nil {
			slog.Warn("Error releasing resources", "error", err)
		}

		slog.Info("Application shutdown complete")
	})
	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpServer.GetRouter()
}

// Controller returns the conversation handler fed by the poller
func (a *Application) Controller() ports.ConversationHandler {
	return a.controller
}

var _ BotClient = (*tgbotapi.BotAPI)(nil)
