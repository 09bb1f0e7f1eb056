// Fichier: config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"police-system/pkg/constants"
)

type ServerConfig struct {
	Port string
}

type UpstreamConfig struct {
	// BaseURL du serveur central (API REST nationale).
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
}

type JWTConfig struct {
	SecretKey string
}

type SyncConfig struct {
	// Espacement minimal entre deux requêtes d'un même contrôleur.
	EspacementListe     time.Duration
	EspacementDashboard time.Duration
	// Durée d'inactivité après laquelle un contrôleur est fermé.
	RetentionControleur time.Duration
}

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Sync     SyncConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Avertissement: fichier .env introuvable ou illisible.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:9090"),
			Timeout: getDuration("UPSTREAM_TIMEOUT", 20*time.Second),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", "9A4D2AD385B2BAA8DC78F558B548F"),
		},
		Sync: SyncConfig{
			EspacementListe:     getDuration("SYNC_ESPACEMENT_LISTE", constants.EspacementListe),
			EspacementDashboard: getDuration("SYNC_ESPACEMENT_DASHBOARD", constants.EspacementDashboard),
			RetentionControleur: getDuration("SYNC_RETENTION_CONTROLEUR", 15*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
