package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"strings"
	"time"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	QueryLogEnabled bool

	Env             string
	LogLevel        string
	HTTPTimeout     int32
	UpstreamTimeout int32

	PollenBaseURL string
	AsthmaBaseURL string

	MaxQueueSize   int
	MaxWaitTime    time.Duration
	CacheBackend   string
	CacheTTL       time.Duration
	FailedCacheTTL time.Duration

	RedisAddress  string
	RedisPassword string
	RedisDB       int
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".")
}

// LoadConfigFrom reads the environment plus an optional .env file in dir.
func LoadConfigFrom(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "allergy-forecast")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("QUERY_LOG_ENABLED", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("UPSTREAM_TIMEOUT", 10)
	v.SetDefault("MAX_QUEUE_SIZE", 10)
	v.SetDefault("MAX_WAIT_TIME", 200*time.Millisecond)
	v.SetDefault("CACHE_BACKEND", CacheBackendMemory)
	v.SetDefault("CACHE_TTL", 30*time.Minute)
	v.SetDefault("FAILED_CACHE_TTL", 5*time.Minute)
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:     v.GetString("SERVICE_NAME"),
		ServerAddress:   v.GetString("SERVER_ADDRESS"),
		DBName:          v.GetString("DATABASE_NAME"),
		DBPassword:      v.GetString("DATABASE_PASSWORD"),
		DBUser:          v.GetString("DATABASE_USER"),
		DBPort:          v.GetString("DATABASE_PORT"),
		DBHost:          v.GetString("DATABASE_HOST"),
		QueryLogEnabled: v.GetBool("QUERY_LOG_ENABLED"),
		Env:             v.GetString("ENV"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		HTTPTimeout:     v.GetInt32("HTTP_TIMEOUT"),
		UpstreamTimeout: v.GetInt32("UPSTREAM_TIMEOUT"),
		PollenBaseURL:   v.GetString("POLLEN_BASE_URL"),
		AsthmaBaseURL:   v.GetString("ASTHMA_BASE_URL"),
		MaxQueueSize:    v.GetInt("MAX_QUEUE_SIZE"),
		MaxWaitTime:     v.GetDuration("MAX_WAIT_TIME"),
		CacheBackend:    strings.ToLower(v.GetString("CACHE_BACKEND")),
		CacheTTL:        v.GetDuration("CACHE_TTL"),
		FailedCacheTTL:  v.GetDuration("FAILED_CACHE_TTL"),
		RedisAddress:    v.GetString("REDIS_ADDRESS"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.MaxQueueSize < 1 {
		return fmt.Errorf("MAX_QUEUE_SIZE must be positive, got %d", c.MaxQueueSize)
	}

	if c.MaxWaitTime <= 0 {
		return fmt.Errorf("MAX_WAIT_TIME must be positive, got %s", c.MaxWaitTime)
	}

	switch c.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("unknown CACHE_BACKEND %q", c.CacheBackend)
	}

	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) UpstreamTimeoutDuration() time.Duration {
	return time.Duration(c.UpstreamTimeout) * time.Second
}
