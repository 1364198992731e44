package config

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	ApplicationName    string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for published exports.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// RedisConfig holds the document snapshot cache settings.
// An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// ExportConfig controls published export links.
type ExportConfig struct {
	URLExpiry time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables; a .env file is honoured when the binary
// imports github.com/joho/godotenv/autoload.
type AppConfig struct {
	Env            string
	AppHost        string
	Port           string
	Timezone       string
	TracingEnabled bool
	Database       DatabaseConfig
	MinIO          MinIOConfig
	Redis          RedisConfig
	Export         ExportConfig
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "production")
	v.SetDefault("APP_HOST", "localhost:8080")
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_TIMEZONE", "UTC")
	v.SetDefault("TRACING_ENABLED", true)

	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_APPLICATION_NAME", "sitedocs")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_SEC", 300)

	v.SetDefault("MINIO_USE_SSL", false)

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL_SEC", 60)
	v.SetDefault("EXPORT_URL_EXPIRY_SEC", 900)
	return v
}

// Load reads configuration from environment variables, falling back to defaults
// for non-sensitive values only.
func Load() *AppConfig {
	v := newViper()
	return &AppConfig{
		Env:            v.GetString("APP_ENV"),
		AppHost:        v.GetString("APP_HOST"),
		Port:           v.GetString("PORT"),
		Timezone:       v.GetString("APP_TIMEZONE"),
		TracingEnabled: v.GetBool("TRACING_ENABLED"),
		Database: DatabaseConfig{
			Host:               v.GetString("DB_HOST"),
			Port:               v.GetString("DB_PORT"),
			User:               v.GetString("DB_USER"),
			Password:           v.GetString("DB_PASSWORD"),
			Name:               v.GetString("DB_NAME"),
			SSLMode:            v.GetString("DB_SSLMODE"),
			ApplicationName:    v.GetString("DB_APPLICATION_NAME"),
			MaxOpenConns:       v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:       v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetimeSec: v.GetInt("DB_CONN_MAX_LIFETIME_SEC"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      time.Duration(v.GetInt("CACHE_TTL_SEC")) * time.Second,
		},
		Export: ExportConfig{
			URLExpiry: time.Duration(v.GetInt("EXPORT_URL_EXPIRY_SEC")) * time.Second,
		},
	}
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
