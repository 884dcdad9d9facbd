package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSupabase = "supabase"
	DriverMemory   = "memory"

	envPrefix = "COACHING"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Supabase  SupabaseConfig  `toml:"supabase"`
	Auth      AuthConfig      `toml:"auth"`
	SMTP      SMTPConfig      `toml:"smtp"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Booking   BookingConfig   `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
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

type StorageConfig struct {
	Driver string `toml:"driver"` // postgres | supabase | memory
}

type SupabaseConfig struct {
	URL        string `toml:"url"`
	ServiceKey string `toml:"service_key"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	// AdminUserIDs роли администратора для драйвера memory. Для postgres и
	// supabase роли читаются из таблицы user_roles
	AdminUserIDs []string `toml:"admin_user_ids"`
}

type SMTPConfig struct {
	Enabled       bool   `toml:"enabled"`
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	Username      string `toml:"username"`
	Password      string `toml:"password"`
	From          string `toml:"from"`
	BusinessInbox string `toml:"business_inbox"`
	BusinessName  string `toml:"business_name"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type RateLimitConfig struct {
	Limit         int  `toml:"limit"`
	WindowSeconds int  `toml:"window_seconds"`
	FailOpen      bool `toml:"fail_open"`
	// Брать адрес клиента из X-Forwarded-For. Включать только за доверенным прокси
	TrustForwardedFor bool `toml:"trust_forwarded_for"`
}

type BookingConfig struct {
	// Освобождать слот при отмене записи. По умолчанию слот остаётся занятым
	ReleaseSlotOnCancel bool `toml:"release_slot_on_cancel"`
}

// Default значения, которые используются для ключей, отсутствующих в файле
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "coaching",
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "coaching-service",
		},
		Storage: StorageConfig{Driver: DriverPostgres},
		SMTP: SMTPConfig{
			Port:         587,
			BusinessName: "Coaching",
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		RateLimit: RateLimitConfig{
			Limit:         10,
			WindowSeconds: 60,
			FailOpen:      true,
		},
	}
}

// Load читает TOML файл, затем переопределяет значения из окружения (COACHING_*).
// Файл .env, если он есть, подгружается в окружение до чтения переменных
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrReadConfig, err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	applyEnv(cfg, newEnv())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// applyEnv переопределяет секреты и адреса, которые не хранятся в файле
func applyEnv(cfg *Config, v *viper.Viper) {
	strs := map[string]*string{
		"database.host":        &cfg.Database.Host,
		"database.user":        &cfg.Database.User,
		"database.password":    &cfg.Database.Password,
		"database.dbname":      &cfg.Database.DBName,
		"logs.level":           &cfg.Logs.Level,
		"storage.driver":       &cfg.Storage.Driver,
		"supabase.url":         &cfg.Supabase.URL,
		"supabase.service_key": &cfg.Supabase.ServiceKey,
		"auth.jwt_secret":      &cfg.Auth.JWTSecret,
		"smtp.host":            &cfg.SMTP.Host,
		"smtp.username":        &cfg.SMTP.Username,
		"smtp.password":        &cfg.SMTP.Password,
		"smtp.from":            &cfg.SMTP.From,
		"smtp.business_inbox":  &cfg.SMTP.BusinessInbox,
		"redis.addr":           &cfg.Redis.Addr,
		"redis.password":       &cfg.Redis.Password,
	}
	for key, dst := range strs {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	ints := map[string]*int{
		"server.http_port": &cfg.Server.HTTPPort,
		"database.port":    &cfg.Database.Port,
		"smtp.port":        &cfg.SMTP.Port,
	}
	for key, dst := range ints {
		if v.IsSet(key) {
			*dst = v.GetInt(key)
		}
	}

	bools := map[string]*bool{
		"smtp.enabled":                   &cfg.SMTP.Enabled,
		"redis.enabled":                  &cfg.Redis.Enabled,
		"metrics.enabled":                &cfg.Metrics.Enabled,
		"booking.release_slot_on_cancel": &cfg.Booking.ReleaseSlotOnCancel,
		"rate_limit.trust_forwarded_for": &cfg.RateLimit.TrustForwardedFor,
	}
	for key, dst := range bools {
		if v.IsSet(key) {
			*dst = v.GetBool(key)
		}
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverMemory:
	case DriverSupabase:
		if c.Supabase.URL == "" || c.Supabase.ServiceKey == "" {
			return fmt.Errorf("%w: supabase driver requires supabase.url and supabase.service_key", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}

	if c.SMTP.Enabled && (c.SMTP.Host == "" || c.SMTP.From == "") {
		return fmt.Errorf("%w: smtp requires host and from", ErrInvalidConfig)
	}

	if c.RateLimit.Limit <= 0 || c.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("%w: rate_limit.limit and rate_limit.window_seconds must be positive", ErrInvalidConfig)
	}

	return nil
}
