package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// Поддерживаемые хранилища
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var (
	// ErrLoad возвращается, если файл конфигурации не удалось прочитать
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalid возвращается, если конфигурация не прошла проверку
	ErrInvalid = errors.New("config: invalid configuration")
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Backend  string `toml:"backend"`  // memory | postgres | redis
	Timezone string `toml:"timezone"` // IANA, определяет "сегодня" для окна слотов
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type RedisConfig struct {
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	KeyPrefix  string `toml:"key_prefix"`
	MaxRetries int    `toml:"max_retries"` // повторы транзакции при конфликте WATCH
}

// DSN строка подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Location часовой пояс сервиса
func (c StorageConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и проверяет её
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация по умолчанию: хранилище в памяти, порт 8080
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smartwash_booking",
		},
		Storage: StorageConfig{
			Backend:  BackendMemory,
			Timezone: "Asia/Kolkata",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			KeyPrefix:  "smartwash:",
			MaxRetries: 3,
		},
	}
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalid, c.Server.HTTPPort)
	}

	switch c.Storage.Backend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if c.Database.DBName == "" {
			return fmt.Errorf("%w: database.dbname is required for postgres backend", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown storage.backend %q", ErrInvalid, c.Storage.Backend)
	}

	if _, err := c.Storage.Location(); err != nil {
		return fmt.Errorf("%w: storage.timezone: %v", ErrInvalid, err)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalid)
	}

	return nil
}
