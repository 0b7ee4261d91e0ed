package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env   string `mapstructure:"env"` // local, dev, production
	HTTP  HTTP   `mapstructure:"http"`
	Mongo Mongo  `mapstructure:"mongo"`
	Redis Redis  `mapstructure:"redis"`
	Auth  Auth   `mapstructure:"auth"`
	Quiz  Quiz   `mapstructure:"quiz"`
	CORS  CORS   `mapstructure:"cors"`
}

type HTTP struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Mongo struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type Redis struct {
	URI string `mapstructure:"uri"`
}

// Addr returns the host:port part of the Redis URI
func (r Redis) Addr() string {
	return strings.TrimPrefix(r.URI, "redis://")
}

type Auth struct {
	JWTSecret    string `mapstructure:"jwt_secret"`
	HostUsername string `mapstructure:"host_username"`
	HostPassword string `mapstructure:"host_password"`
}

// Quiz configures the learner-facing quiz
type Quiz struct {
	DefaultSlug   string        `mapstructure:"default_slug"`   // quiz served at /quiz
	PassPercent   int           `mapstructure:"pass_percent"`   // celebration threshold
	SessionTTL    time.Duration `mapstructure:"session_ttl"`    // session and token lifetime
	ConfettiCount int           `mapstructure:"confetti_count"` // particles per celebration
}

type CORS struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
	AllowedMethods string `mapstructure:"allowed_methods"`
	AllowedHeaders string `mapstructure:"allowed_headers"`
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // mongo.uri -> MONGO_URI
	v.AutomaticEnv()

	// Env names used by the deployment scripts.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("http.port", "PORT", "HTTP_PORT")
	_ = v.BindEnv("redis.uri", "REDIS_URI")
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("auth.host_username", "HOST_USERNAME")
	_ = v.BindEnv("auth.host_password", "HOST_PASSWORD")
	_ = v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")
	_ = v.BindEnv("cors.allowed_methods", "CORS_ALLOWED_METHODS")
	_ = v.BindEnv("cors.allowed_headers", "CORS_ALLOWED_HEADERS")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.shutdown_timeout", "30s")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "studyhub")
	v.SetDefault("redis.uri", "localhost:6379")
	v.SetDefault("auth.jwt_secret", "super-secret-key-change-in-production")
	v.SetDefault("auth.host_username", "admin")
	v.SetDefault("auth.host_password", "password123")
	v.SetDefault("quiz.default_slug", "analyse-1")
	v.SetDefault("quiz.pass_percent", 70)
	v.SetDefault("quiz.session_ttl", "2h")
	v.SetDefault("quiz.confetti_count", 100)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("cors.allowed_methods", "GET, POST, PUT, DELETE, OPTIONS")
	v.SetDefault("cors.allowed_headers", "Content-Type, Authorization")
}

func (c *Config) validate() error {
	if c.Quiz.PassPercent < 0 || c.Quiz.PassPercent > 100 {
		return fmt.Errorf("%w: quiz.pass_percent must be within 0..100, got %d", ErrInvalidConfig, c.Quiz.PassPercent)
	}
	if c.Quiz.SessionTTL <= 0 {
		return fmt.Errorf("%w: quiz.session_ttl must be positive", ErrInvalidConfig)
	}
	if c.Quiz.DefaultSlug == "" {
		return fmt.Errorf("%w: quiz.default_slug is empty", ErrInvalidConfig)
	}
	if c.IsProduction() && c.Auth.JWTSecret == "super-secret-key-change-in-production" {
		return fmt.Errorf("%w: JWT_SECRET must be set in production", ErrInvalidConfig)
	}
	return nil
}
