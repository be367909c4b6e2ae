package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Events   EventsConfig   `mapstructure:"events" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
	// MigrateOnStart applies pending schema migrations before serving.
	MigrateOnStart bool `mapstructure:"migrate_on_start"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lt=44640"`
}

// EventsConfig contains settings for event listeners and notification delivery.
type EventsConfig struct {
	// NotificationQueueSize bounds the number of undelivered notifications.
	NotificationQueueSize int `mapstructure:"notification_queue_size" validate:"required,gt=0"`
	// NotificationWorkers is the number of goroutines delivering notifications.
	NotificationWorkers int `mapstructure:"notification_workers" validate:"required,gt=0,lte=64"`
	// MetricsEnabled turns on OpenTelemetry dispatcher metrics.
	MetricsEnabled bool `mapstructure:"metrics_enabled"`
}
