package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"salon/config"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "0002_reports.sql")
	writeFile(t, dir, "0001_init.sql")
	writeFile(t, dir, "README.md")
	writeFile(t, dir, "broken.sql")
	if err := os.Mkdir(filepath.Join(dir, "0003_dir.sql"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	migrations, err := ListMigrations(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %+v", migrations)
	}
	if migrations[0].Version != "0001" || migrations[0].Name != "init" {
		t.Fatalf("unexpected first migration: %+v", migrations[0])
	}
	if migrations[1].Version != "0002" || migrations[1].Name != "reports" {
		t.Fatalf("unexpected second migration: %+v", migrations[1])
	}
}

func TestListMigrations_ShippedFiles(t *testing.T) {
	migrations, err := ListMigrations("../../migrations", zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migrations) < 2 {
		t.Fatalf("expected shipped migrations, got %d", len(migrations))
	}
	if migrations[1].Version != "0002" || migrations[1].Name != "appointment_sequence" {
		t.Fatalf("unexpected second shipped migration: %+v", migrations[1])
	}

	sql, err := os.ReadFile(filepath.Join("../../migrations", migrations[1].File))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(sql), "seq BIGSERIAL") {
		t.Fatalf("expected appointments insertion sequence in %s", migrations[1].File)
	}
}

func TestConnString(t *testing.T) {
	got := ConnString(config.PostgresConfig{
		Host:     "db",
		Port:     "5432",
		Username: "salon",
		Password: "p@ss word",
		DBName:   "salon",
		SSLMode:  "disable",
	})

	want := "postgres://salon:p%40ss%20word@db:5432/salon?sslmode=disable"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
