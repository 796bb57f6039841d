package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
	StoreBackend string
	ListCacheTTL time.Duration
	LogMode      string

	// Notes junta los avisos de la carga; se registran cuando ya existe el logger
	Notes []string
}

// LoadConfig lee el .env si existe y luego las variables del sistema
func LoadConfig() *Config {
	cfg := &Config{}

	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			cfg.note("⚠️ Error loading .env file: %v", err)
		} else {
			cfg.note("✅ .env file loaded successfully")
		}
	} else {
		cfg.note("🌐 Using system environment variables")
	}

	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.DatabaseName = getEnv("DATABASE_NAME", "grain_business")
	cfg.Port = getEnv("PORT", "8000")
	cfg.StoreBackend = getEnv("STORE_BACKEND", "mongo")
	cfg.ListCacheTTL = cfg.getDuration("LIST_CACHE_TTL", 0)
	cfg.LogMode = getEnv("LOG_MODE", "development")
	return cfg
}

// DatabaseURLSet indica si hay cadena de conexión configurada
func (c *Config) DatabaseURLSet() bool {
	return c.DatabaseURL != ""
}

func (c *Config) note(format string, args ...any) {
	c.Notes = append(c.Notes, fmt.Sprintf(format, args...))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func (c *Config) getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	d, err := cast.ToDurationE(value)
	if err != nil || d < 0 {
		c.note("invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}
