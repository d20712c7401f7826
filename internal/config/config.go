package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backend names accepted in MEDICARE_STORAGE.
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
)

type Config struct {
	Storage     string
	DatabaseDSN string
	DataDir     string
	SessionFile string
	JWTSecret   string
}

func Load() Config {
	_ = godotenv.Load()

	base := dataHome()
	cfg := Config{
		Storage:     getEnv("MEDICARE_STORAGE", StorageSQLite),
		DatabaseDSN: getEnv("MEDICARE_DB_DSN", "file:"+filepath.Join(base, "medicare.db")+"?cache=shared&mode=rwc"),
		DataDir:     getEnv("MEDICARE_DATA_DIR", base),
		SessionFile: getEnv("MEDICARE_SESSION_FILE", filepath.Join(home(), ".medicare_session")),
		JWTSecret:   getEnv("MEDICARE_JWT_SECRET", "dev-secret-change"),
	}
	if cfg.JWTSecret == "dev-secret-change" {
		log.Println("WARNING: using development session secret; set MEDICARE_JWT_SECRET")
	}
	if s := strings.ToLower(cfg.Storage); s == StorageSQLite || s == StorageFile {
		cfg.Storage = s
	} else {
		log.Printf("WARNING: unknown MEDICARE_STORAGE %q, falling back to sqlite", cfg.Storage)
		cfg.Storage = StorageSQLite
	}
	return cfg
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

func dataHome() string {
	return filepath.Join(home(), ".medicare")
}
