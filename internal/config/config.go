package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Cache    CacheConfig
	Policy   PolicyConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig controls the optional bearer-token protection of the API. An
// empty secret leaves every endpoint open.
type AuthConfig struct {
	Secret          string
	TokenExpiration time.Duration
}

type CacheConfig struct {
	CurrentTTL      time.Duration
	HistoricalTTL   time.Duration
	EmployeeTTL     time.Duration
	RefreshInterval time.Duration
}

// PolicyConfig carries the attendance thresholds. The rule path and the
// analyzer path keep separate hour targets.
type PolicyConfig struct {
	MinDaysPerMonth     int
	MinHoursPerDay      float64
	MinDaysMeetingHours int
	MaxRequiredWeeks    int

	DailyHourTarget   float64
	CompliantDays     int
	PartialDays       int
	HoursPartialRatio float64
	MaxDaysPerWeek    int
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	tokenExpiration, err := time.ParseDuration(getEnv("AUTH_TOKEN_EXPIRATION", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_TOKEN_EXPIRATION: %w", err)
	}
	config.Auth = AuthConfig{
		Secret:          getEnv("AUTH_SECRET", ""),
		TokenExpiration: tokenExpiration,
	}

	config.Cache, err = loadCacheConfig()
	if err != nil {
		return nil, err
	}

	config.Policy, err = loadPolicyConfig()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadCacheConfig() (CacheConfig, error) {
	cfg := CacheConfig{}
	var err error

	if cfg.CurrentTTL, err = time.ParseDuration(getEnv("CACHE_CURRENT_TTL", "5m")); err != nil {
		return cfg, fmt.Errorf("invalid CACHE_CURRENT_TTL: %w", err)
	}
	if cfg.HistoricalTTL, err = time.ParseDuration(getEnv("CACHE_HISTORICAL_TTL", "24h")); err != nil {
		return cfg, fmt.Errorf("invalid CACHE_HISTORICAL_TTL: %w", err)
	}
	if cfg.EmployeeTTL, err = time.ParseDuration(getEnv("CACHE_EMPLOYEE_TTL", "1h")); err != nil {
		return cfg, fmt.Errorf("invalid CACHE_EMPLOYEE_TTL: %w", err)
	}
	if cfg.RefreshInterval, err = time.ParseDuration(getEnv("CACHE_REFRESH_INTERVAL", "12h")); err != nil {
		return cfg, fmt.Errorf("invalid CACHE_REFRESH_INTERVAL: %w", err)
	}
	return cfg, nil
}

func loadPolicyConfig() (PolicyConfig, error) {
	cfg := PolicyConfig{}
	var err error

	if cfg.MinDaysPerMonth, err = getEnvInt("POLICY_MIN_DAYS_PER_MONTH", 6); err != nil {
		return cfg, err
	}
	if cfg.MinHoursPerDay, err = getEnvFloat("POLICY_MIN_HOURS_PER_DAY", 8.0); err != nil {
		return cfg, err
	}
	if cfg.MinDaysMeetingHours, err = getEnvInt("POLICY_MIN_DAYS_MEETING_HOURS", 6); err != nil {
		return cfg, err
	}
	if cfg.MaxRequiredWeeks, err = getEnvInt("POLICY_MAX_REQUIRED_WEEKS", 5); err != nil {
		return cfg, err
	}
	if cfg.DailyHourTarget, err = getEnvFloat("POLICY_DAILY_HOUR_TARGET", 9.0); err != nil {
		return cfg, err
	}
	if cfg.CompliantDays, err = getEnvInt("POLICY_COMPLIANT_DAYS", 6); err != nil {
		return cfg, err
	}
	if cfg.PartialDays, err = getEnvInt("POLICY_PARTIAL_DAYS", 4); err != nil {
		return cfg, err
	}
	if cfg.HoursPartialRatio, err = getEnvFloat("POLICY_HOURS_PARTIAL_RATIO", 0.8); err != nil {
		return cfg, err
	}
	if cfg.MaxDaysPerWeek, err = getEnvInt("POLICY_MAX_DAYS_PER_WEEK", 2); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Policy.MinDaysPerMonth <= 0 {
		return fmt.Errorf("POLICY_MIN_DAYS_PER_MONTH must be positive")
	}
	if c.Policy.MaxDaysPerWeek <= 0 {
		return fmt.Errorf("POLICY_MAX_DAYS_PER_WEEK must be positive")
	}
	if c.Policy.HoursPartialRatio <= 0 || c.Policy.HoursPartialRatio > 1 {
		return fmt.Errorf("POLICY_HOURS_PARTIAL_RATIO must be in (0, 1]")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// AuthEnabled reports whether the bearer-token middleware should be mounted.
func (c *Config) AuthEnabled() bool {
	return c.Auth.Secret != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
