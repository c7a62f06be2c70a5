package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/techmaster-vietnam/blogos/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "blog",
		Password: "secret",
		Name:     "blogos",
		SSLMode:  "disable",
	})

	expected := "host=db user=blog password=secret dbname=blogos port=5433 sslmode=disable"
	if dsn != expected {
		t.Errorf("Expected %q, got %q", expected, dsn)
	}
}

// Mỗi migration up phải có down tương ứng
func TestMigrationsArePaired(t *testing.T) {
	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("Expected embedded migrations")
	}

	seen := make(map[string]int)
	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".up.sql"):
			seen[strings.TrimSuffix(f, ".up.sql")]++
		case strings.HasSuffix(f, ".down.sql"):
			seen[strings.TrimSuffix(f, ".down.sql")]--
		default:
			t.Errorf("Unexpected migration file %s", f)
		}
	}
	for name, balance := range seen {
		if balance != 0 {
			t.Errorf("Migration %s is missing its up or down file", name)
		}
	}
}

// Bảng nối phải khớp tên many2many khai báo trong models.Blog
func TestInitMigrationCreatesJoinTables(t *testing.T) {
	data, err := fs.ReadFile(migrationFS, "migrations/000001_init_schema.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	sql := string(data)
	for _, table := range []string{"bloggers", "categories", "labels", "blogs", "blog_categories", "blog_labels"} {
		if !strings.Contains(sql, "CREATE TABLE IF NOT EXISTS "+table+" (") {
			t.Errorf("Expected migration to create table %s", table)
		}
	}
}
