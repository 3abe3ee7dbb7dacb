package main

import (
	"fmt"
	"os"
	"path/filepath"

	"booky/internal/logging"
)

// migrationsDir is where create writes new files. The binaries embed the
// same directories.
func migrationsDir(driver string) string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("internal", "store", "migrations", driver)
}

// gooseLogger sends goose output through the process logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	logging.Default().Info().Msg(fmt.Sprintf(format, v...))
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	logging.Default().Fatal().Msg(fmt.Sprintf(format, v...))
}
