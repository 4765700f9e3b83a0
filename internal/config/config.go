package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Переменные окружения с секретами; перекрывают значения из config.toml
const (
	EnvJWTSecret       = "SIA_JWT_SECRET"
	EnvRecaptchaSecret = "SIA_RECAPTCHA_SECRET"
	EnvSMTPPassword    = "SIA_SMTP_PASSWORD"
	EnvDBPassword      = "SIA_DB_PASSWORD"
	EnvRedisPassword   = "SIA_REDIS_PASSWORD"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	App       AppConfig       `toml:"app"`
	Auth      AuthConfig      `toml:"auth"`
	Recaptcha RecaptchaConfig `toml:"recaptcha"`
	Mail      MailConfig      `toml:"mail"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"`
}

type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

type StorageConfig struct {
	Driver   string         `toml:"driver" validate:"oneof=memory postgres redis"`
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
}

type PostgresConfig struct {
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

// DSN строка подключения для lib/pq
func (c PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type AppConfig struct {
	Timezone      string `toml:"timezone" validate:"required"`
	BackupDir     string `toml:"backup_dir"`
	BackupCron    string `toml:"backup_cron"`
	BackupTimeout int    `toml:"backup_timeout"`
}

// Location часовой пояс бизнеса
func (c AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type AuthConfig struct {
	DefaultUsername string `toml:"default_username" validate:"required"`
	DefaultPassword string `toml:"default_password" validate:"min=8"`
	JWTSecret       string `toml:"jwt_secret" validate:"min=16"`
}

type RecaptchaConfig struct {
	Enabled   bool   `toml:"enabled"`
	Secret    string `toml:"secret" validate:"required_if=Enabled true"`
	VerifyURL string `toml:"verify_url" validate:"required_if=Enabled true"`
	Timeout   int    `toml:"timeout"`
}

type MailConfig struct {
	Enabled    bool   `toml:"enabled"`
	Host       string `toml:"host" validate:"required_if=Enabled true"`
	Port       int    `toml:"port" validate:"required_if=Enabled true"`
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	From       string `toml:"from" validate:"required_if=Enabled true"`
	FromName   string `toml:"from_name"`
	ReplyTo    string `toml:"reply_to" validate:"omitempty,email"`
	AdminEmail string `toml:"admin_email" validate:"omitempty,email"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `toml:"requests_per_minute"`
	Burst             int `toml:"burst"`
	IdleExpiry        int `toml:"idle_expiry"`
	// адреса или подсети обратных прокси, которым доверяется X-Forwarded-For
	TrustedProxies []string `toml:"trusted_proxies" validate:"dive,cidr|ip"`
}

// Load читает .env (если есть), затем config.toml, применяет переопределения из окружения и валидирует результат
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения, которые config.toml может перекрыть
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "sia_booking"},
		Storage: StorageConfig{
			Driver: DriverMemory,
			Postgres: PostgresConfig{
				Port:            5432,
				SSLMode:         "disable",
				MaxOpenConns:    10,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
			Redis: RedisConfig{Addr: "127.0.0.1:6379", Prefix: "sia:"},
		},
		App: AppConfig{
			Timezone:      "UTC",
			BackupTimeout: 30,
		},
		Recaptcha: RecaptchaConfig{
			VerifyURL: "https://www.google.com/recaptcha/api/siteverify",
			Timeout:   5,
		},
		Mail: MailConfig{Port: 587},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 10,
			Burst:             5,
			IdleExpiry:        600,
		},
	}
}

func (c *Config) applyEnv() {
	override := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	override(&c.Auth.JWTSecret, EnvJWTSecret)
	override(&c.Recaptcha.Secret, EnvRecaptchaSecret)
	override(&c.Mail.Password, EnvSMTPPassword)
	override(&c.Storage.Postgres.Password, EnvDBPassword)
	override(&c.Storage.Redis.Password, EnvRedisPassword)
}

// Validate проверяет значения, которые нельзя исправить значениями по умолчанию
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("%w: app.timezone %q: %v", ErrInvalidConfig, c.App.Timezone, err)
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Storage.Postgres.Host == "" || c.Storage.Postgres.DBName == "" {
			return fmt.Errorf("%w: storage.postgres host and dbname are required", ErrInvalidConfig)
		}
		if c.Storage.Postgres.Port < 1 || c.Storage.Postgres.Port > 65535 {
			return fmt.Errorf("%w: storage.postgres.port %d out of range", ErrInvalidConfig, c.Storage.Postgres.Port)
		}
	case DriverRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("%w: storage.redis.addr is required", ErrInvalidConfig)
		}
	}

	return nil
}
