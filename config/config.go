package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	Name        string
	Version     string
	LogLevel    string
	HTTP        HTTPConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	JWT         JWTConfig
	S3          S3Config
	RateLimit   RateLimitConfig
	Telemetry   TelemetryConfig
	Booking     BookingConfig
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxHeaderMB  int
}

type PostgresConfig struct {
	Host               string
	Port               string
	Username           string
	Password           string
	DBName             string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	MaxLifetime        time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// JWTConfig holds the key used to verify admin tokens issued by the
// identity provider.
type JWTConfig struct {
	SigningKey string
	AdminRole  string
}

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
}

type RateLimitConfig struct {
	Enabled  bool
	Limit    int
	Window   time.Duration
	FailOpen bool
}

type TelemetryConfig struct {
	Enabled      bool
	OTLPEndpoint string
	SampleRatio  float64
}

type BookingConfig struct {
	SlotIntervalMinutes int
	Timezone            string
	Location            *time.Location
}

func NewConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	location, err := time.LoadLocation(v.GetString("SALON_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid SALON_TIMEZONE: %w", err)
	}

	interval := v.GetInt("SLOT_INTERVAL_MINUTES")
	if interval <= 0 {
		return nil, fmt.Errorf("SLOT_INTERVAL_MINUTES must be positive, got %d", interval)
	}

	return &Config{
		Environment: v.GetString("APP_ENV"),
		Name:        v.GetString("APP_NAME"),
		Version:     v.GetString("APP_VERSION"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Port:         v.GetString("HTTP_PORT"),
			ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
			MaxHeaderMB:  v.GetInt("HTTP_MAX_HEADER_MB"),
		},
		Postgres: PostgresConfig{
			Host:               v.GetString("POSTGRES_HOST"),
			Port:               v.GetString("POSTGRES_PORT"),
			Username:           v.GetString("POSTGRES_USER"),
			Password:           v.GetString("POSTGRES_PASSWORD"),
			DBName:             v.GetString("POSTGRES_DB"),
			SSLMode:            v.GetString("POSTGRES_SSL_MODE"),
			MaxConnections:     v.GetInt("POSTGRES_MAX_CONNECTIONS"),
			MaxIdleConnections: v.GetInt("POSTGRES_MAX_IDLE_CONNECTIONS"),
			MaxLifetime:        v.GetDuration("POSTGRES_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			SigningKey: v.GetString("JWT_SIGNING_KEY"),
			AdminRole:  v.GetString("JWT_ADMIN_ROLE"),
		},
		S3: S3Config{
			Endpoint:        v.GetString("S3_ENDPOINT"),
			Region:          v.GetString("S3_REGION"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
			Bucket:          v.GetString("S3_BUCKET"),
			UseSSL:          v.GetBool("S3_USE_SSL"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  v.GetBool("RATE_LIMIT_ENABLED"),
			Limit:    v.GetInt("RATE_LIMIT_BOOKINGS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
			FailOpen: v.GetBool("RATE_LIMIT_FAIL_OPEN"),
		},
		Telemetry: TelemetryConfig{
			Enabled:      v.GetBool("OTEL_ENABLED"),
			OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			SampleRatio:  v.GetFloat64("OTEL_SAMPLING_RATIO"),
		},
		Booking: BookingConfig{
			SlotIntervalMinutes: interval,
			Timezone:            v.GetString("SALON_TIMEZONE"),
			Location:            location,
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "salon")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("HTTP_READ_TIMEOUT", "10s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "10s")
	v.SetDefault("HTTP_MAX_HEADER_MB", 1)

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "salon")
	v.SetDefault("POSTGRES_SSL_MODE", "disable")
	v.SetDefault("POSTGRES_MAX_CONNECTIONS", 10)
	v.SetDefault("POSTGRES_MAX_IDLE_CONNECTIONS", 5)
	v.SetDefault("POSTGRES_MAX_LIFETIME", "5m")

	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SIGNING_KEY", "your_secret_key")
	v.SetDefault("JWT_ADMIN_ROLE", "admin")

	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_BUCKET", "salon")
	v.SetDefault("S3_USE_SSL", true)

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_BOOKINGS", 10)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")
	v.SetDefault("RATE_LIMIT_FAIL_OPEN", true)

	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	v.SetDefault("OTEL_SAMPLING_RATIO", 1.0)

	v.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	v.SetDefault("SALON_TIMEZONE", "UTC")
}
