package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pedroramon/hotel-backend/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Postgres   PostgresConfig   `validate:"required"`
	Room       RoomConfig
	Sentry     SentryConfig
	Pyroscope  PyroscopeConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required,oneof=local api aws_lambda_api"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required,oneof=debug info warn error"`
}

type PostgresConfig struct {
	Driver          types.DatabaseDriver `validate:"required,oneof=postgres sqlite3"`
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	SQLitePath      string        `mapstructure:"sqlite_path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// RoomConfig tunes the room composition pipeline.
type RoomConfig struct {
	// CompositionConcurrency bounds how many rooms of a list are composed at once.
	CompositionConcurrency int `mapstructure:"composition_concurrency" validate:"gte=0"`
}

type SentryConfig struct {
	Enabled     bool
	DSN         string
	Environment string
	SampleRate  float64 `mapstructure:"sample_rate"`
}

type PyroscopeConfig struct {
	Enabled         bool
	ServerAddress   string   `mapstructure:"server_address"`
	ApplicationName string   `mapstructure:"application_name"`
	BasicAuthUser   string   `mapstructure:"basic_auth_user"`
	BasicAuthPass   string   `mapstructure:"basic_auth_pass"`
	SampleRate      uint32   `mapstructure:"sample_rate"`
	ProfileTypes    []string `mapstructure:"profile_types"`
	DisableGCRuns   bool     `mapstructure:"disable_gc_runs"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional; values already in the environment win
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/hotel")

	v.SetEnvPrefix("HOTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// are absent from the config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("postgres.driver", types.DriverPostgres)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "hotel")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.dbname", "hotel")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.sqlite_path", "hotel.db")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime", time.Hour)
	v.SetDefault("postgres.connect_timeout", 30*time.Second)
	v.SetDefault("postgres.auto_migrate", false)
	v.SetDefault("room.composition_concurrency", 8)
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("pyroscope.enabled", false)
	v.SetDefault("pyroscope.server_address", "http://localhost:4040")
	v.SetDefault("pyroscope.application_name", "hotel-backend")
	v.SetDefault("pyroscope.sample_rate", 100)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Postgres: PostgresConfig{
			Driver:         types.DriverSQLite,
			SQLitePath:     "hotel.db",
			ConnectTimeout: 5 * time.Second,
		},
		Room: RoomConfig{CompositionConcurrency: 8},
	}
}

// GetDSN returns the data source name for the configured driver.
func (c PostgresConfig) GetDSN() string {
	if c.Driver == types.DriverSQLite {
		return fmt.Sprintf("file:%s?cache=shared&_fk=1", c.SQLitePath)
	}
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
