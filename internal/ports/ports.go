package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Forecast
	ForecastClient ForecastClient
	GeocodeCache   GeocodeCache

	// Persistence
	UserPreferenceRepository UserPreferenceRepository

	// Communication
	Messenger Messenger

	// Infrastructure
	ConfigProvider   ConfigProvider
	Logger           Logger
	MetricsCollector MetricsCollector
	Database         interface{}
}
