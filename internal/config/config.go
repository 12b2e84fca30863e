package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the resolved application configuration.
// Values come from the YAML file for the active APP_ENV, overridden by
// environment variables (which in turn may come from .env files).
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`

	JWT struct {
		Secret           string `yaml:"secret"`
		Algorithm        string `yaml:"algorithm"`
		AccessTTLMinutes int    `yaml:"access_ttl_minutes"`
		RefreshTTLDays   int    `yaml:"refresh_ttl_days"`
	} `yaml:"jwt"`

	Storage struct {
		Endpoint        string `yaml:"endpoint"`
		Region          string `yaml:"region"`
		AccessKeyID     string `yaml:"access_key_id"`
		SecretAccessKey string `yaml:"secret_access_key"`
		Bucket          string `yaml:"bucket"`
		ForcePathStyle  bool   `yaml:"force_path_style"`
		PublicACL       bool   `yaml:"public_acl"`
	} `yaml:"storage"`

	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Sender   string `yaml:"sender"`
	} `yaml:"smtp"`

	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		PoolSize int    `yaml:"pool_size"`
	} `yaml:"redis"`

	Translator struct {
		Endpoint string `yaml:"endpoint"`
	} `yaml:"translator"`

	Env      string `yaml:"-"`
	ShareURL string `yaml:"share_url"` // public base URL for /share/<id> links
}

// LoadDotEnv loads .env files with priority: .env.local > .env
// godotenv.Load does NOT overwrite already-set env vars,
// so OS env vars always win, .env.local wins over .env.
// Returns list of files actually loaded.
func LoadDotEnv() []string {
	candidates := []string{".env.local", ".env"}
	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}

// Load reads the YAML config for the given env and applies env-var overrides
func Load(env string) (*Config, error) {
	cfg := &Config{Env: env}

	path := fmt.Sprintf("configs/config.%s.yaml", env)
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT secret is not configured")
	}
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database DSN is not configured")
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Server.Addr, "SERVER_ADDR")
	setStr(&cfg.Database.DSN, "DATABASE_DSN")
	setStr(&cfg.JWT.Secret, "JWT_SECRET")
	setStr(&cfg.JWT.Algorithm, "JWT_ALGORITHM")
	setInt(&cfg.JWT.AccessTTLMinutes, "JWT_ACCESS_TTL_MINUTES")
	setInt(&cfg.JWT.RefreshTTLDays, "JWT_REFRESH_TTL_DAYS")
	setStr(&cfg.Storage.Endpoint, "STORAGE_ENDPOINT")
	setStr(&cfg.Storage.Region, "STORAGE_REGION")
	setStr(&cfg.Storage.AccessKeyID, "STORAGE_ACCESS_KEY_ID")
	setStr(&cfg.Storage.SecretAccessKey, "STORAGE_SECRET_ACCESS_KEY")
	setStr(&cfg.Storage.Bucket, "STORAGE_BUCKET")
	setStr(&cfg.SMTP.Host, "SMTP_HOST")
	setInt(&cfg.SMTP.Port, "SMTP_PORT")
	setStr(&cfg.SMTP.Username, "SMTP_USERNAME")
	setStr(&cfg.SMTP.Password, "SMTP_PASSWORD")
	setStr(&cfg.SMTP.Sender, "SMTP_SENDER")
	setStr(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setStr(&cfg.Redis.Password, "REDIS_PASSWORD")
	setStr(&cfg.Translator.Endpoint, "TRANSLATOR_ENDPOINT")
	setStr(&cfg.ShareURL, "SHARE_URL")
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.JWT.Algorithm == "" {
		cfg.JWT.Algorithm = "HS256"
	}
	if cfg.JWT.AccessTTLMinutes <= 0 {
		cfg.JWT.AccessTTLMinutes = 30
	}
	if cfg.JWT.RefreshTTLDays <= 0 {
		cfg.JWT.RefreshTTLDays = 7
	}
	if cfg.Redis.PoolSize <= 0 {
		cfg.Redis.PoolSize = 10
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "ap-northeast-2"
	}
}

// AccessTTL returns the access token lifetime
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.JWT.AccessTTLMinutes) * time.Minute
}

// RefreshTTL returns the refresh token lifetime
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTTLDays) * 24 * time.Hour
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
