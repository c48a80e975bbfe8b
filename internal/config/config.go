package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "TASKMANAGER"

type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Routes   RoutesConfig   `mapstructure:"routes" validate:"required"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	Mode            string        `mapstructure:"mode" validate:"required,oneof=debug release test"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig selects the SQL dialect. DSN wins over the discrete
// connection fields when both are set.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver" validate:"required,oneof=mysql postgres sqlite"`
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" validate:"required_without=DSN"`
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=silent error warn info"`
}

type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetime time.Duration `mapstructure:"token_lifetime" validate:"gt=0"`
}

// RoutesConfig holds the base path and the per-resource paths of the API.
type RoutesConfig struct {
	BasePath     string `mapstructure:"base_path"`
	Users        string `mapstructure:"users" validate:"required,startswith=/"`
	TaskStatuses string `mapstructure:"task_statuses" validate:"required,startswith=/"`
	Tasks        string `mapstructure:"tasks" validate:"required,startswith=/"`
	Labels       string `mapstructure:"labels" validate:"required,startswith=/"`
	Login        string `mapstructure:"login" validate:"required,startswith=/"`
	Signup       string `mapstructure:"signup" validate:"required,startswith=/"`
}

// SeedConfig describes the records guaranteed to exist after startup.
type SeedConfig struct {
	Enabled         bool     `mapstructure:"enabled"`
	Email           string   `mapstructure:"email" validate:"required_if=Enabled true,omitempty,email"`
	Password        string   `mapstructure:"password" validate:"required_if=Enabled true,omitempty,min=3"`
	TaskStatusSlugs []string `mapstructure:"task_status_slugs"`
	Labels          []string `mapstructure:"labels" validate:"dive,min=3,max=1000"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "taskuser")
	v.SetDefault("database.password", "taskpassword")
	v.SetDefault("database.name", "task_manager")
	v.SetDefault("database.log_level", "warn")

	v.SetDefault("auth.token_lifetime", 24*time.Hour)

	v.SetDefault("routes.base_path", "/api")
	v.SetDefault("routes.users", "/users")
	v.SetDefault("routes.task_statuses", "/task-statuses")
	v.SetDefault("routes.tasks", "/tasks")
	v.SetDefault("routes.labels", "/labels")
	v.SetDefault("routes.login", "/login")
	v.SetDefault("routes.signup", "/signup")

	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.email", "hexlet@example.com")
	v.SetDefault("seed.password", "qwerty")
	v.SetDefault("seed.task_status_slugs", []string{"draft", "to_review", "to_be_fixed", "to_publish", "published"})
	v.SetDefault("seed.labels", []string{"feature", "bug"})
}

// Load reads configuration from defaults, an optional YAML file and
// TASKMANAGER_* environment variables, in increasing order of precedence.
// An empty path looks for config.yaml in the working directory.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about; these have no default.
	for _, key := range []string{"database.dsn", "auth.jwt_secret"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Path joins the base path with a resource path.
func (r RoutesConfig) Path(resource string) string {
	return strings.TrimRight(r.BasePath, "/") + resource
}
