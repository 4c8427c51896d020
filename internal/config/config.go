package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string  `mapstructure:"env"`      // current application environment (local, dev, production etc)
	TelegramAPIToken string  `mapstructure:"-"`        // Telegram API token loaded from environment
	Catalog          Catalog `mapstructure:"catalog"`  // reference catalog section
	Quiz             Quiz    `mapstructure:"quiz"`     // quiz defaults section
	HTTP             HTTP    `mapstructure:"http"`     // catalog API section
	DB               DB      `mapstructure:"database"` // database configuration section
}

// Catalog configures where the cultural catalog comes from.
type Catalog struct {
	Path       string `mapstructure:"path"`        // path to the cultures JSON file
	ReloadCron string `mapstructure:"reload_cron"` // cron schedule for reloads, empty disables them
}

// Quiz contains quiz defaults.
type Quiz struct {
	DefaultSize int `mapstructure:"default_size"` // questions per quiz for the terminal client
}

// HTTP configures the read-only catalog API.
type HTTP struct {
	Addr           string   `mapstructure:"addr"`            // listen address, empty disables the API
	AllowedOrigins []string `mapstructure:"allowed_origins"` // CORS origins
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration for the bot. The Telegram token and the
// database URL are required.
func Load() (*Config, error) {
	cfg, err := load("./config")
	if err != nil {
		return nil, err
	}

	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}
	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
	}

	return cfg, nil
}

// LoadLocal reads configuration for tools that need neither Telegram nor
// the database, such as the terminal quiz.
func LoadLocal() (*Config, error) {
	return load("./config")
}

func load(configPath string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("catalog.path", "assets/data/cultures.json")
	v.SetDefault("catalog.reload_cron", "0 * * * *")
	v.SetDefault("quiz.default_size", 10)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("http.addr", "HTTP_ADDR")
	_ = v.BindEnv("catalog.path", "CATALOG_PATH")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if cfg.Quiz.DefaultSize <= 0 {
		cfg.Quiz.DefaultSize = 10
	}

	return &cfg, nil
}
