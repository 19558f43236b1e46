package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	RabbitMQ RabbitMQConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    string
	LogJSON     bool
	Storage     string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled reports whether a redis host was configured at all.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

func (c RedisConfig) Addr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "6379"
	}
	return strings.TrimSpace(c.Host) + ":" + port
}

type JWTConfig struct {
	AccessSecret    string
	Issuer          string
	AccessExpiresIn time.Duration
}

type RabbitMQConfig struct {
	URL         string
	Exchange    string
	DialTimeout time.Duration
}

func (c RabbitMQConfig) Enabled() bool {
	return strings.TrimSpace(c.URL) != ""
}

type MatchingConfig struct {
	// VacancyMap holds "candidateSideID=employerSideID" pairs separated by commas.
	VacancyMap       string
	MaxMessageLength int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from the process environment. A .env file in the
// working directory is honoured when present.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_LOG_LEVEL", "info")
	v.SetDefault("APP_LOG_JSON", true)
	v.SetDefault("STORAGE_DRIVER", StoragePostgres)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", 5*time.Second)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TTL", 600*time.Second)
	v.SetDefault("JWT_ISSUER", "jobswipe")
	v.SetDefault("JWT_ACCESS_EXPIRES_IN", 24*time.Hour)
	v.SetDefault("RABBITMQ_EXCHANGE", "jobswipe.events")
	v.SetDefault("RABBITMQ_DIAL_TIMEOUT", 2*time.Second)
	v.SetDefault("MATCH_MAX_MESSAGE_LENGTH", 2000)

	return v
}

func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogLevel:    opt("APP_LOG_LEVEL"),
		LogJSON:     v.GetBool("APP_LOG_JSON"),
		Storage:     strings.ToLower(opt("STORAGE_DRIVER")),
	}

	cfg.Database = DatabaseConfig{
		DBHost:                opt("DB_HOST"),
		DBPort:                opt("DB_PORT"),
		DBName:                opt("DB_NAME"),
		DBUser:                opt("DB_USER"),
		DBPassword:            v.GetString("DB_PASSWORD"),
		DBSSLMode:             opt("DB_SSL_MODE"),
		ConnectTimeout:        v.GetDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:          v.GetInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:          v.GetInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   v.GetDuration("DB_POOL_MAX_CONN_LIFETIME"),
		PoolMaxConnIdleTime:   v.GetDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
		PoolHealthCheckPeriod: v.GetDuration("DB_POOL_HEALTH_CHECK_PERIOD"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		TTL:      v.GetDuration("REDIS_TTL"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    req("JWT_ACCESS_SECRET"),
		Issuer:          opt("JWT_ISSUER"),
		AccessExpiresIn: v.GetDuration("JWT_ACCESS_EXPIRES_IN"),
	}

	cfg.RabbitMQ = RabbitMQConfig{
		URL:         opt("RABBITMQ_URL"),
		Exchange:    opt("RABBITMQ_EXCHANGE"),
		DialTimeout: v.GetDuration("RABBITMQ_DIAL_TIMEOUT"),
	}

	cfg.Matching = MatchingConfig{
		VacancyMap:       opt("MATCH_VACANCY_MAP"),
		MaxMessageLength: v.GetInt("MATCH_MAX_MESSAGE_LENGTH"),
	}

	if cfg.App.Storage == StoragePostgres {
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER"} {
			if opt(key) == "" {
				missing = append(missing, key)
			}
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	switch cfg.App.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.App.Storage)
	}

	return cfg, nil
}
