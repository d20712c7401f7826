package config

import (
	"os"
	"testing"
)

func TestLoadDefaultsAndEnv(t *testing.T) {
	// defaults
	os.Unsetenv("MEDICARE_STORAGE")
	os.Unsetenv("MEDICARE_DB_DSN")
	os.Unsetenv("MEDICARE_DATA_DIR")
	os.Unsetenv("MEDICARE_JWT_SECRET")
	os.Unsetenv("MEDICARE_SESSION_FILE")
	cfg := Load()
	if cfg.Storage != StorageSQLite || cfg.DatabaseDSN == "" || cfg.DataDir == "" || cfg.SessionFile == "" || cfg.JWTSecret == "" {
		t.Fatalf("empty config fields: %+v", cfg)
	}

	// env override
	os.Setenv("MEDICARE_STORAGE", "file")
	os.Setenv("MEDICARE_DB_DSN", "file::memory:")
	os.Setenv("MEDICARE_DATA_DIR", "/tmp/medicare-test")
	os.Setenv("MEDICARE_JWT_SECRET", "secret")
	os.Setenv("MEDICARE_SESSION_FILE", "/tmp/medicare-test/session")
	t.Cleanup(func() {
		os.Unsetenv("MEDICARE_STORAGE")
		os.Unsetenv("MEDICARE_DB_DSN")
		os.Unsetenv("MEDICARE_DATA_DIR")
		os.Unsetenv("MEDICARE_JWT_SECRET")
		os.Unsetenv("MEDICARE_SESSION_FILE")
	})
	cfg = Load()
	if cfg.Storage != StorageFile || cfg.DatabaseDSN != "file::memory:" || cfg.DataDir != "/tmp/medicare-test" || cfg.JWTSecret != "secret" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	os.Setenv("MEDICARE_STORAGE", "cloud")
	t.Cleanup(func() { os.Unsetenv("MEDICARE_STORAGE") })
	cfg := Load()
	if cfg.Storage != StorageSQLite {
		t.Fatalf("unknown backend accepted: %q", cfg.Storage)
	}
}
