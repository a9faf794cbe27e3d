// Package config carga la configuración del API con viper:
// defaults < archivo YAML opcional < variables de entorno.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Keys de configuración (YAML) y su variable de entorno.
const (
	keyPort         = "port"
	keyDriver       = "storage.driver"
	keySQLitePath   = "storage.sqlite_path"
	keyPostgresDSN  = "storage.postgres_dsn"
	keyRedisAddr    = "redis.addr"
	keyRedisTTL     = "redis.ttl"
	keyMaxBody      = "http.max_body_bytes"
	keyReadTimeout  = "http.read_timeout"
	keyWriteTimeout = "http.write_timeout"
	keyStaticDir    = "http.static_dir"
	keyLogLevel     = "log.level"
	keyLogFormat    = "log.format"
	keyAppName      = "app_name"
)

var envBindings = map[string]string{
	keyPort:         "PORT",
	keyDriver:       "STORAGE_DRIVER",
	keySQLitePath:   "SQLITE_PATH",
	keyPostgresDSN:  "DB_DSN",
	keyRedisAddr:    "REDIS_ADDR",
	keyRedisTTL:     "REDIS_TTL",
	keyMaxBody:      "MAX_BODY_BYTES",
	keyReadTimeout:  "HTTP_READ_TIMEOUT",
	keyWriteTimeout: "HTTP_WRITE_TIMEOUT",
	keyStaticDir:    "STATIC_DIR",
	keyLogLevel:     "LOG_LEVEL",
	keyLogFormat:    "LOG_FORMAT",
	keyAppName:      "APP_NAME",
}

// DefaultMaxBodyBytes deja pasar fotos en base64 dentro del JSON.
const DefaultMaxBodyBytes int64 = 10 << 20

type Config struct {
	Addr string

	Storage struct {
		Driver      string
		SQLitePath  string
		PostgresDSN string
	}

	Redis struct {
		Addr string
		TTL  time.Duration
	}

	HTTP struct {
		MaxBodyBytes int64
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
		StaticDir    string
	}

	Log struct {
		Level  string
		Format string
	}

	AppName string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyPort, "8000")
	v.SetDefault(keySQLitePath, "animals.db")
	v.SetDefault(keyRedisTTL, "5m")
	v.SetDefault(keyMaxBody, DefaultMaxBodyBytes)
	v.SetDefault(keyReadTimeout, "15s")
	v.SetDefault(keyWriteTimeout, "30s")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyAppName, "animal-tracker")
}

// Load lee la configuración. path vacío = sin archivo (solo defaults + env).
// Un archivo indicado que no existe sí es error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	cfg.Addr = ":" + strings.TrimPrefix(strings.TrimSpace(v.GetString(keyPort)), ":")

	cfg.Storage.SQLitePath = v.GetString(keySQLitePath)
	cfg.Storage.PostgresDSN = v.GetString(keyPostgresDSN)
	cfg.Storage.Driver = resolveDriver(v.GetString(keyDriver), cfg.Storage.PostgresDSN)

	cfg.Redis.Addr = v.GetString(keyRedisAddr)
	cfg.Redis.TTL = v.GetDuration(keyRedisTTL)

	cfg.HTTP.MaxBodyBytes = v.GetInt64(keyMaxBody)
	cfg.HTTP.ReadTimeout = v.GetDuration(keyReadTimeout)
	cfg.HTTP.WriteTimeout = v.GetDuration(keyWriteTimeout)
	cfg.HTTP.StaticDir = v.GetString(keyStaticDir)

	cfg.Log.Level = v.GetString(keyLogLevel)
	cfg.Log.Format = v.GetString(keyLogFormat)
	cfg.AppName = v.GetString(keyAppName)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveDriver: el driver explícito gana; si no hay, DB_DSN elige Postgres
// y sin DSN queda SQLite. keyDriver no lleva default en setDefaults.
func resolveDriver(driver, dsn string) string {
	driver = strings.ToLower(strings.TrimSpace(driver))
	switch {
	case driver != "":
		return driver
	case strings.TrimSpace(dsn) != "":
		return DriverPostgres
	default:
		return DriverSQLite
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			return errors.New("config: storage.sqlite_path is required for sqlite")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.PostgresDSN) == "" {
			return errors.New("config: DB_DSN is required for postgres")
		}
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return errors.New("config: http.max_body_bytes must be positive")
	}
	return nil
}
