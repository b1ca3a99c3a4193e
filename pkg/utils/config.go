package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Metrics MetricsConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type MetricsConfig struct {
	Enabled bool
}

// TracingConfig controls span export. Endpoint is an OTLP/HTTP host:port.
type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

// LoadConfig reads settings from the given .env file (optional) and the environment.
// Values already bound on v (for example from command-line flags) take precedence.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	if path == "" {
		path = ".env"
	}

	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "customer-feedback")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	v.SetDefault("READ_TIMEOUT_SECONDS", 10)
	v.SetDefault("WRITE_TIMEOUT_SECONDS", 30)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Server: ServerConfig{
			ReadTimeout:     time.Duration(v.GetInt("READ_TIMEOUT_SECONDS")) * time.Second,
			WriteTimeout:    time.Duration(v.GetInt("WRITE_TIMEOUT_SECONDS")) * time.Second,
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
		Tracing: TracingConfig{
			Enabled:  v.GetBool("TRACING_ENABLED"),
			Endpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
	}

	return config, nil
}
