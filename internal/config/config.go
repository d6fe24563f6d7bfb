package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvDevelopment relaxes cookie security for local HTTP.
const EnvDevelopment = "development"

// ErrMissingJWTSecret is returned when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("jwt.secret (JWT_SECRET) must be set")

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Address        string   `mapstructure:"address"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigin  string   `mapstructure:"allowed_origin"`
	// TrustedProxies lists the proxy IPs/CIDRs whose X-Forwarded-For is
	// believed. Empty means the peer address is always the client IP.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// IsDevelopment reports whether the server runs in the development environment.
func (s ServerConfig) IsDevelopment() bool {
	return strings.EqualFold(s.Environment, EnvDevelopment)
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	PresignExpiry   time.Duration `mapstructure:"presign_expiry"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// RateLimitConfig throttles the login and sign-up endpoints per client IP.
type RateLimitConfig struct {
	AuthPerMinute int `mapstructure:"auth_per_minute"`
	AuthBurst     int `mapstructure:"auth_burst"`
}

// LoadConfig reads configuration from a .env file, config.yaml in path and
// environment variables, in increasing order of precedence.
func LoadConfig(path string) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, jwt.expiration -> JWT_EXPIRATION
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	// PORT is what most hosting platforms inject.
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Address = ":" + strings.TrimPrefix(port, ":")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":5000")
	v.SetDefault("server.environment", "production")
	v.SetDefault("server.allowed_origin", "http://localhost:5173")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "gym_manager")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", "168h")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "gym-manager")
	v.SetDefault("s3.presign_expiry", "15m")
	v.SetDefault("log.level", "info")
	v.SetDefault("ratelimit.auth_per_minute", 20)
	v.SetDefault("ratelimit.auth_burst", 10)
}

// Validate checks settings the server cannot start without.
func (c Config) Validate() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	if c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.AuthBurst <= 0 {
		return errors.New("ratelimit.auth_per_minute and ratelimit.auth_burst must be positive")
	}
	return nil
}
