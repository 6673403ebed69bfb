package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// 開発用のフォールバック。本番では SESSION_SECRET を必ず設定する。
const devSessionSecret = "dev-secret-change-in-production-32bytes"

type Config struct {
	Server  ServerConfig
	Admin   AdminConfig
	Store   StoreConfig
	Storage StorageConfig
	App     AppConfig
}

type ServerConfig struct {
	Port        string
	FrontendURL string
	AssetsDir   string
}

type AdminConfig struct {
	Password      string
	SessionSecret string
}

// StoreConfig はプロジェクトとセッションの保存先
type StoreConfig struct {
	ProjectDriver string // memory | postgres
	SessionDriver string // memory | postgres | redis
	DatabaseURL   string
	RedisURL      string
	SeedProjects  bool
}

// StorageConfig はアップロード画像の保存先
type StorageConfig struct {
	Driver      string // local | s3
	UploadDir   string
	URLPrefix   string
	S3Bucket    string
	S3PublicURL string
	S3Endpoint  string
}

type AppConfig struct {
	Environment string
	LogLevel    string
}

// IsProduction は本番環境かどうか（クッキーの Secure 属性に使う）
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// UsesPostgres はいずれかのストアが PostgreSQL を使うかどうか
func (c *Config) UsesPostgres() bool {
	return c.Store.ProjectDriver == "postgres" || c.Store.SessionDriver == "postgres"
}

func Load() (*Config, error) {
	// .env が無くても環境変数だけで動く
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
			AssetsDir:   getEnv("ASSETS_DIR", "attached_assets"),
		},
		Admin: AdminConfig{
			Password:      os.Getenv("ADMIN_PASSWORD"),
			SessionSecret: getEnv("SESSION_SECRET", devSessionSecret),
		},
		Store: StoreConfig{
			ProjectDriver: strings.ToLower(getEnv("STORE_DRIVER", "memory")),
			SessionDriver: strings.ToLower(getEnv("SESSION_DRIVER", "memory")),
			DatabaseURL:   os.Getenv("DATABASE_URL"),
			RedisURL:      os.Getenv("REDIS_URL"),
			SeedProjects:  getEnvAsBool("SEED_PROJECTS", true),
		},
		Storage: StorageConfig{
			Driver:      strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
			UploadDir:   getEnv("UPLOAD_DIR", "attached_assets/uploads"),
			URLPrefix:   getEnv("UPLOAD_URL_PREFIX", "/attached_assets/uploads"),
			S3Bucket:    os.Getenv("S3_BUCKET"),
			S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
			S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		},
		App: AppConfig{
			Environment: getEnv("ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Store.ProjectDriver {
	case "memory", "postgres":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (memory, postgres)", c.Store.ProjectDriver)
	}
	switch c.Store.SessionDriver {
	case "memory", "postgres":
	case "redis":
		if c.Store.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when SESSION_DRIVER=redis")
		}
	default:
		return fmt.Errorf("unknown SESSION_DRIVER %q (memory, postgres, redis)", c.Store.SessionDriver)
	}
	if c.UsesPostgres() && c.Store.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for the postgres driver")
	}

	switch c.Storage.Driver {
	case "local":
		if c.Storage.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR is required when STORAGE_DRIVER=local")
		}
	case "s3":
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
		// 画像 URL のベース。空だと "/uploads/<key>" という配信されない参照になる
		if c.Storage.S3PublicURL == "" {
			return fmt.Errorf("S3_PUBLIC_URL is required when STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (local, s3)", c.Storage.Driver)
	}

	if c.IsProduction() && c.Admin.SessionSecret == devSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("invalid boolean, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}
