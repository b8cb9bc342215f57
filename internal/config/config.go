package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitnessapi/internal/auth"

	"github.com/BurntSushi/toml"
)

const (
	defaultCleanupInterval    = 48 * time.Hour
	defaultEmptyWorkoutMaxAge = 24 * time.Hour
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	// rotation of the file at logs_path, zero keeps the logging defaults
	LogFileMaxSizeMB  int `toml:"log_file_max_size_mb"`
	LogFileMaxBackups int `toml:"log_file_max_backups"`
	LogFileMaxAgeDays int `toml:"log_file_max_age_days"`

	SentryEnabled          bool    `toml:"sentry_enabled"`
	SentryTracesSampleRate float64 `toml:"sentry_traces_sample_rate"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`
	// runs embedded schema migrations on startup
	PostgresMigrate bool `toml:"postgres_migrate"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// sessions & http
	SessionTTL                  Duration `toml:"session_ttl"`
	SecureCookies               bool     `toml:"secure_cookies"`
	AllowedOrigins              []string `toml:"allowed_origins"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`

	// templates owned by this user are readable and usable by everyone
	CommonUserID int `toml:"common_user_id"`

	// empty workouts sweep
	CleanupInterval    Duration `toml:"cleanup_interval"`
	EmptyWorkoutMaxAge Duration `toml:"empty_workout_max_age"`
}

// Duration lets TOML carry values like "48h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.SessionTTL.Duration == 0 {
		c.SessionTTL.Duration = auth.DefaultTTL
	}
	if c.CleanupInterval.Duration == 0 {
		c.CleanupInterval.Duration = defaultCleanupInterval
	}
	if c.EmptyWorkoutMaxAge.Duration == 0 {
		c.EmptyWorkoutMaxAge.Duration = defaultEmptyWorkoutMaxAge
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}
	return t.Get(env)
}

func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	return t.Get(env)
}
