//go:build integration

package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	_ "github.com/jackc/pgx/v5/stdlib" // регистрирует драйвер "pgx" в database/sql
	"github.com/pressly/goose/v3"
)

// ApplyMigrationsGoose — накатывает миграции схемы аудита из <repo>/migrations
// на свежеподнятый Postgres. Корень репозитория вычисляется от этого файла,
// чтобы тесты работали из любого пакета.
func ApplyMigrationsGoose(dsn string) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func migrationsDir() (string, error) {
	// этот файл: <repo>/internal/testutil/migrations_goose_integration.go
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("caller info unavailable")
	}
	dir := filepath.Join(filepath.Dir(thisFile), "..", "..", "migrations")
	dir = filepath.Clean(dir)
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return "", fmt.Errorf("migrations dir not found: %q", dir)
	}
	return dir, nil
}
