package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnv(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
}

func TestLoadConfig_Defaults(t *testing.T) {
	writeEnv(t, "DB_HOST=localhost\nDB_NAME=fyyur\n")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if config.App.Port != "8080" {
		t.Errorf("Port = %q, want default 8080", config.App.Port)
	}
	if config.App.TemplateDir != "web/templates" {
		t.Errorf("TemplateDir = %q, want default web/templates", config.App.TemplateDir)
	}
	if config.Database.MaxConns != 10 {
		t.Errorf("MaxConns = %d, want default 10", config.Database.MaxConns)
	}
	if config.Database.Host != "localhost" {
		t.Errorf("Host = %q, want localhost", config.Database.Host)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	writeEnv(t, "PORT=9000\nDEBUG=true\nSECRET_KEY=s3cret\n")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if config.App.Port != "9000" {
		t.Errorf("Port = %q, want 9000", config.App.Port)
	}
	if !config.App.Debug {
		t.Error("Debug = false, want true")
	}
	if config.Session.SecretKey != "s3cret" {
		t.Errorf("SecretKey = %q, want s3cret", config.Session.SecretKey)
	}
}
