package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Trip planning specifics
	Serper         SerperConfig
	OpenRouter     OpenRouterConfig
	GoogleCalendar GoogleCalendarConfig
	Planner        PlannerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SerperConfig configures the Serper.dev search client.
type SerperConfig struct {
	APIKey      string
	Endpoint    string
	Retries     int
	ResultCount int
}

// OpenRouterConfig configures the OpenRouter LLM client.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// PlannerConfig bounds the itinerary pipeline.
type PlannerConfig struct {
	ChunkSize       int
	MaxDays         int
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Serper search
	cfg.Serper.APIKey = viper.GetString("serper.api_key")
	cfg.Serper.Endpoint = viper.GetString("serper.endpoint")
	cfg.Serper.Retries = viper.GetInt("serper.retries")
	cfg.Serper.ResultCount = viper.GetInt("serper.result_count")
	if serperKey := viper.GetString("serper_api_key"); serperKey != "" {
		cfg.Serper.APIKey = serperKey
	}

	// OpenRouter LLM
	cfg.OpenRouter.APIKey = viper.GetString("openrouter.api_key")
	cfg.OpenRouter.BaseURL = viper.GetString("openrouter.base_url")
	cfg.OpenRouter.Model = viper.GetString("openrouter.model")
	if orKey := viper.GetString("openrouter_api_key"); orKey != "" {
		cfg.OpenRouter.APIKey = orKey
	}

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Planner
	cfg.Planner.ChunkSize = viper.GetInt("planner.chunk_size")
	cfg.Planner.MaxDays = viper.GetInt("planner.max_days")
	cfg.Planner.RateLimitPerMin = viper.GetInt("planner.rate_limit_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("serper.retries", 2)
	viper.SetDefault("serper.result_count", 3)

	viper.SetDefault("openrouter.model", "google/gemini-2.0-flash-001")

	viper.SetDefault("planner.chunk_size", 3)
	viper.SetDefault("planner.max_days", 14)
	viper.SetDefault("planner.rate_limit_per_min", 10)
}

func validate(cfg *Config) error {
	if cfg.Planner.ChunkSize <= 0 {
		return fmt.Errorf("planner.chunk_size must be positive, got %d", cfg.Planner.ChunkSize)
	}
	if cfg.Planner.MaxDays <= 0 {
		return fmt.Errorf("planner.max_days must be positive, got %d", cfg.Planner.MaxDays)
	}
	return nil
}
