package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Upload    UploadConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig describes the MongoDB connection. URL may be empty: the
// service then runs without a store and data endpoints answer 500 while
// /test reports the state descriptively.
type DatabaseConfig struct {
	URL     string
	Name    string
	Timeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
}

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	UseRedis      bool
	WindowSeconds int
}

type UploadConfig struct {
	MaxBytes int64
}

// Load reads configuration from environment variables and an optional .env
// file. Absent store configuration is not an error; invalid values are.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("DATABASE_NAME", "tenant")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	viper.SetDefault("MAX_UPLOAD_BYTES", int64(50<<20))

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			URL:     viper.GetString("DATABASE_URL"),
			Name:    viper.GetString("DATABASE_NAME"),
			Timeout: time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Upload: UploadConfig{
			MaxBytes: viper.GetInt64("MAX_UPLOAD_BYTES"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	return c.Upload.Validate()
}

func (c *ServerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, is.Port),
	)
}

func (c *RateLimitConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.RPS, validation.Required, validation.Min(0.0)),
		validation.Field(&c.Burst, validation.Min(0)),
		validation.Field(&c.WindowSeconds, validation.Required, validation.Min(1)),
	)
}

func (c *UploadConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MaxBytes, validation.Required, validation.Min(int64(1))),
	)
}

// StoreConfigured reports whether a database connection string is present.
func (c *Config) StoreConfigured() bool {
	return c.Database.URL != ""
}
