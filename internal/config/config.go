package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	NATS      NATSConfig      `mapstructure:"nats"`
	Auth      AuthConfig      `mapstructure:"auth"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
	OCR       OCRConfig       `mapstructure:"ocr"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	Schema          string        `mapstructure:"schema"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&search_path=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.Schema,
	)
}

type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
	TLS       bool   `mapstructure:"tls"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type NATSConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	URL        string `mapstructure:"url"`
	StreamName string `mapstructure:"stream_name"`
}

type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	APIKeys []string `mapstructure:"api_keys"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	RequestsPerHour   int  `mapstructure:"requests_per_hour"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

// ScoringConfig carries the classification thresholds applied on top of the
// raw 0-100 scores. Scores above ThreatThreshold count as threats in history
// and stats; scores above HighRiskThreshold additionally raise an alert.
type ScoringConfig struct {
	ThreatThreshold   int `mapstructure:"threat_threshold"`
	HighRiskThreshold int `mapstructure:"high_risk_threshold"`
}

type OCRConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	TesseractPath string `mapstructure:"tesseract_path"`
	Languages     string `mapstructure:"languages"`
	MaxBytes      int64  `mapstructure:"max_bytes"`
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/fraudshield")
	}

	// Defaults that must hold even without a config file entry
	v.SetDefault("scoring.threat_threshold", 30)
	v.SetDefault("scoring.high_risk_threshold", 70)
	v.SetDefault("ocr.tesseract_path", "tesseract")
	v.SetDefault("ocr.languages", "eng+hin")
	v.SetDefault("ocr.max_bytes", 10<<20)

	// Environment variables
	v.SetEnvPrefix("FRAUDSHIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind nested env vars explicitly (viper doesn't auto-bind nested struct fields)
	v.BindEnv("redis.enabled", "FRAUDSHIELD_REDIS_ENABLED")
	v.BindEnv("redis.tls", "FRAUDSHIELD_REDIS_TLS")
	v.BindEnv("redis.host", "FRAUDSHIELD_REDIS_HOST")
	v.BindEnv("redis.port", "FRAUDSHIELD_REDIS_PORT")
	v.BindEnv("redis.password", "FRAUDSHIELD_REDIS_PASSWORD")
	v.BindEnv("database.enabled", "FRAUDSHIELD_DATABASE_ENABLED")
	v.BindEnv("database.host", "FRAUDSHIELD_DATABASE_HOST")
	v.BindEnv("database.port", "FRAUDSHIELD_DATABASE_PORT")
	v.BindEnv("database.user", "FRAUDSHIELD_DATABASE_USER")
	v.BindEnv("database.password", "FRAUDSHIELD_DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "FRAUDSHIELD_DATABASE_DBNAME")
	v.BindEnv("database.sslmode", "FRAUDSHIELD_DATABASE_SSLMODE")
	v.BindEnv("nats.enabled", "FRAUDSHIELD_NATS_ENABLED")
	v.BindEnv("nats.url", "FRAUDSHIELD_NATS_URL")
	v.BindEnv("app.environment", "FRAUDSHIELD_APP_ENVIRONMENT")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadDefault loads configuration with default path
func LoadDefault() (*Config, error) {
	return Load("")
}
