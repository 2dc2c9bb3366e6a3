package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Источники начальных данных
const (
	SeedSourceDemo     = "demo"
	SeedSourceFile     = "file"
	SeedSourcePostgres = "postgres"
)

var (
	ErrLoadConfig    = errors.New("config: failed to load")
	ErrInvalidConfig = errors.New("config: invalid")
)

type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Database     DatabaseConfig     `toml:"database"`
	Seed         SeedConfig         `toml:"seed"`
	Auth         AuthConfig         `toml:"auth"`
	Confirmation ConfirmationConfig `toml:"confirmation"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// SeedConfig откуда брать специалистов, календари и события при старте
type SeedConfig struct {
	Source string `toml:"source"`
	File   string `toml:"file"`
	// BaseDate дата "сегодня" для демо данных, YYYY-MM-DD. Пустая строка - текущая дата
	BaseDate string `toml:"base_date"`
}

type AuthConfig struct {
	SharedSecret string `toml:"shared_secret"`
	SigningKey   string `toml:"signing_key"`
	TokenTTL     int    `toml:"token_ttl"`
}

// ConfirmationConfig внешний сервис подтверждений. Пустой url отключает отправку
type ConfirmationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Default возвращает конфигурацию, с которой сервис поднимается на демо данных
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "agenda_service",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Seed: SeedConfig{
			Source: SeedSourceDemo,
		},
		Auth: AuthConfig{
			SharedSecret: domain.DefaultSharedSecret,
			TokenTTL:     3600,
		},
		Confirmation: ConfirmationConfig{
			Timeout: 5,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrLoadConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Seed.Source {
	case SeedSourceDemo:
		if c.Seed.BaseDate != "" {
			if _, err := time.Parse(time.DateOnly, c.Seed.BaseDate); err != nil {
				return fmt.Errorf("%w: seed.base_date: %v", ErrInvalidConfig, err)
			}
		}
	case SeedSourceFile:
		if c.Seed.File == "" {
			return fmt.Errorf("%w: seed.file is required for source %q", ErrInvalidConfig, c.Seed.Source)
		}
	case SeedSourcePostgres:
		if c.Database.DBName == "" {
			return fmt.Errorf("%w: database.dbname is required for source %q", ErrInvalidConfig, c.Seed.Source)
		}
	default:
		return fmt.Errorf("%w: unknown seed.source %q", ErrInvalidConfig, c.Seed.Source)
	}

	if c.Auth.SharedSecret == "" {
		return fmt.Errorf("%w: auth.shared_secret is required", ErrInvalidConfig)
	}
	if c.Auth.SigningKey == "" {
		return fmt.Errorf("%w: auth.signing_key is required", ErrInvalidConfig)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("%w: auth.token_ttl must be positive", ErrInvalidConfig)
	}

	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BaseTime дата демо данных; нулевое время, если не задана
func (s SeedConfig) BaseTime() time.Time {
	if s.BaseDate == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.DateOnly, s.BaseDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (a AuthConfig) TTL() time.Duration {
	return time.Duration(a.TokenTTL) * time.Second
}
