package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSQLMigrations_HaveGooseDirectives(t *testing.T) {
	for _, driver := range []string{"postgres", "sqlite"} {
		dir := repoMigrationsDir(t, driver)

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir(%s): %v", dir, err)
		}

		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
				continue
			}
			b, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				t.Fatalf("ReadFile(%s): %v", e.Name(), err)
			}
			s := string(b)
			if !strings.Contains(s, "-- +goose Up") {
				t.Fatalf("%s/%s missing '-- +goose Up'", driver, e.Name())
			}
			if !strings.Contains(s, "-- +goose Down") {
				t.Fatalf("%s/%s missing '-- +goose Down'", driver, e.Name())
			}
		}
	}
}

func TestSQLMigrations_SameVersionsPerDriver(t *testing.T) {
	names := func(driver string) []string {
		entries, err := os.ReadDir(repoMigrationsDir(t, driver))
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		var out []string
		for _, e := range entries {
			out = append(out, e.Name())
		}
		return out
	}

	pg, lite := names("postgres"), names("sqlite")
	if strings.Join(pg, ",") != strings.Join(lite, ",") {
		t.Fatalf("migration files differ between drivers: %v vs %v", pg, lite)
	}
}
