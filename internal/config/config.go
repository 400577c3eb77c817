package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	BarberAPI BarberAPIConfig `toml:"barber_api"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Database  DatabaseConfig  `toml:"database"`
	Cache     CacheConfig     `toml:"cache"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BarberAPIConfig настройки REST API барбершопов
type BarberAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
	Token   string `toml:"token"`   // статический токен, переопределяется BARBER_API_TOKEN
}

// DashboardConfig настройки дашборда
type DashboardConfig struct {
	BusinessID   string `toml:"business_id"`
	DefaultLimit int    `toml:"default_limit"`
	// RefreshOnStart загрузить список при старте сервиса
	RefreshOnStart bool `toml:"refresh_on_start"`
}

// DatabaseConfig настройки PostgreSQL для журнала изменений статусов
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
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

// CacheConfig настройки Redis кэша аналитики
type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
	TTL      int    `toml:"ttl"` // секунды
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load загружает конфигурацию из TOML файла, применяет значения по умолчанию
// и переменные окружения, затем валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
			File:  "logs/dashboard.log",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "barber_dashboard",
		},
		BarberAPI: BarberAPIConfig{
			Timeout: 10,
		},
		Dashboard: DashboardConfig{
			DefaultLimit: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Cache: CacheConfig{
			Addr:   "localhost:6379",
			Prefix: "barber_dashboard",
			TTL:    300,
		},
	}
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("BARBER_API_TOKEN"); ok {
		c.BarberAPI.Token = v
	}
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		c.Cache.Password = v
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}

	if c.BarberAPI.URL == "" {
		problems = append(problems, "barber_api.url is required")
	} else if u, err := url.Parse(c.BarberAPI.URL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, "barber_api.url must be an absolute URL")
	}
	if c.BarberAPI.Timeout <= 0 {
		problems = append(problems, "barber_api.timeout must be positive")
	}

	if strings.TrimSpace(c.Dashboard.BusinessID) == "" {
		problems = append(problems, "dashboard.business_id is required")
	}
	if c.Dashboard.DefaultLimit <= 0 || c.Dashboard.DefaultLimit > 100 {
		problems = append(problems, "dashboard.default_limit must be in 1..100")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		problems = append(problems, "database.host and database.dbname are required when database is enabled")
	}

	if c.Cache.Enabled {
		if c.Cache.Addr == "" {
			problems = append(problems, "cache.addr is required when cache is enabled")
		}
		if c.Cache.TTL <= 0 {
			problems = append(problems, "cache.ttl must be positive")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
