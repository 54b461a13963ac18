package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Cache       CacheConfig       `toml:"cache"`
	CartService CartServiceConfig `toml:"cart_service"`
	Delivery    DeliveryConfig    `toml:"delivery"`
	Admin       AdminConfig       `toml:"admin"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig настройки Redis кэша каталога доставки
type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// CartServiceConfig настройки клиента сервиса корзины
type CartServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// DeliveryConfig параметры планировщика доставки
type DeliveryConfig struct {
	Timezone                string `toml:"timezone"`
	DefaultPreparationHours int    `toml:"default_preparation_hours"`
	SafetyBufferMinutes     int    `toml:"safety_buffer_minutes"`
	SameDayCutoffHour       int    `toml:"same_day_cutoff_hour"`
	AdvanceOrderDays        int    `toml:"advance_order_days"`
}

// AdminConfig список пользователей с доступом к админке
type AdminConfig struct {
	UserIDs []int64 `toml:"user_ids"`
}

// Load загружает конфигурацию из TOML файла
// Переменные окружения (и .env, если он есть) переопределяют секреты и уровень логов
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env опционален
	_ = godotenv.Load()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	d := c.Delivery
	if d.DefaultPreparationHours < domain.MinDefaultPrepHours || d.DefaultPreparationHours > domain.MaxDefaultPrepHours {
		return fmt.Errorf("%w: delivery.default_preparation_hours must be in %d..%d",
			ErrInvalidConfig, domain.MinDefaultPrepHours, domain.MaxDefaultPrepHours)
	}
	if d.SafetyBufferMinutes < domain.MinSafetyBufferMinutes || d.SafetyBufferMinutes > domain.MaxSafetyBufferMinutes {
		return fmt.Errorf("%w: delivery.safety_buffer_minutes must be in %d..%d",
			ErrInvalidConfig, domain.MinSafetyBufferMinutes, domain.MaxSafetyBufferMinutes)
	}
	if d.SameDayCutoffHour < domain.MinSameDayCutoffHour || d.SameDayCutoffHour > domain.MaxSameDayCutoffHour {
		return fmt.Errorf("%w: delivery.same_day_cutoff_hour must be in %d..%d",
			ErrInvalidConfig, domain.MinSameDayCutoffHour, domain.MaxSameDayCutoffHour)
	}
	if d.AdvanceOrderDays < 0 || d.AdvanceOrderDays > domain.MaxAdvanceOrderDays {
		return fmt.Errorf("%w: delivery.advance_order_days must be in 0..%d", ErrInvalidConfig, domain.MaxAdvanceOrderDays)
	}
	if _, err := time.LoadLocation(d.Timezone); err != nil {
		return fmt.Errorf("%w: delivery.timezone: %v", ErrInvalidConfig, err)
	}

	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("%w: cache.addr is required when cache is enabled", ErrInvalidConfig)
	}

	return nil
}

// DeliverySettings конвертирует секцию [delivery] в настройки планировщика
func (c *Config) DeliverySettings() (domain.DeliverySettings, error) {
	loc, err := time.LoadLocation(c.Delivery.Timezone)
	if err != nil {
		return domain.DeliverySettings{}, fmt.Errorf("%w: delivery.timezone: %v", ErrInvalidConfig, err)
	}

	return domain.DeliverySettings{
		DefaultPreparationHours: c.Delivery.DefaultPreparationHours,
		SafetyBufferMinutes:     c.Delivery.SafetyBufferMinutes,
		SameDayCutoffHour:       c.Delivery.SameDayCutoffHour,
		AdvanceOrderDays:        c.Delivery.AdvanceOrderDays,
		Location:                loc,
	}, nil
}

// IsAdmin проверяет, что пользователь есть в списке администраторов
func (a AdminConfig) IsAdmin(userID int64) bool {
	for _, id := range a.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-bakery-service",
		},
		Cache: CacheConfig{
			TTL: 300,
		},
		CartService: CartServiceConfig{
			Timeout: 5,
		},
		Delivery: DeliveryConfig{
			Timezone:                "Local",
			DefaultPreparationHours: domain.DefaultPreparationHours,
			SafetyBufferMinutes:     domain.DefaultSafetyBufferMinutes,
			SameDayCutoffHour:       domain.DefaultSameDayCutoffHour,
			AdvanceOrderDays:        domain.DefaultAdvanceOrderDays,
		},
	}
}

// envOverrides секреты и уровень логов из окружения
type envOverrides struct {
	DBPassword    string `envconfig:"DB_PASSWORD"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	LogLevel      string `envconfig:"LOG_LEVEL"`
}

func applyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if env.DBPassword != "" {
		cfg.Database.Password = env.DBPassword
	}
	if env.RedisPassword != "" {
		cfg.Cache.Password = env.RedisPassword
	}
	if env.LogLevel != "" {
		cfg.Logs.Level = env.LogLevel
	}
	return nil
}
