package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// migration is one .sql file split into its up and down halves on the
// "-- +migrate Up" / "-- +migrate Down" markers.
type migration struct {
	version string
	up      string
	down    string
}

func main() {
	_ = godotenv.Load()

	mode := flag.String("mode", "up", "migration mode: up or down")
	dir := flag.String("dir", "./migrations", "migrations directory")
	flag.Parse()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL not set in environment")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	if err := run(db, *mode, *dir); err != nil {
		log.Fatal(err)
	}
}

func run(db *sql.DB, mode, dir string) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`); err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	migrations, err := loadMigrations(dir)
	if err != nil {
		return err
	}

	switch mode {
	case "up":
		return applyPending(db, migrations)
	case "down":
		return rollbackLast(db, migrations)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}
}

func loadMigrations(dir string) ([]migration, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	out := make([]migration, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		up, down := splitSections(string(content))
		out = append(out, migration{version: filepath.Base(file), up: up, down: down})
	}
	return out, nil
}

func applyPending(db *sql.DB, migrations []migration) error {
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.version] {
			fmt.Printf("skipping already applied migration: %s\n", m.version)
			continue
		}

		fmt.Printf("applying migration: %s\n", m.version)
		if _, err := db.Exec(m.up); err != nil {
			return fmt.Errorf("migration failed (%s): %w", m.version, err)
		}
		if _, err := db.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, m.version); err != nil {
			return fmt.Errorf("failed to record migration version: %w", err)
		}
	}

	fmt.Println("all new migrations applied.")
	return nil
}

func rollbackLast(db *sql.DB, migrations []migration) error {
	var last string
	err := db.QueryRow(`SELECT version FROM schema_migrations ORDER BY applied_at DESC LIMIT 1`).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		fmt.Println("no migrations to roll back.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find last applied migration: %w", err)
	}

	for _, m := range migrations {
		if m.version != last {
			continue
		}

		fmt.Printf("rolling back migration: %s\n", m.version)
		if _, err := db.Exec(m.down); err != nil {
			return fmt.Errorf("rollback failed (%s): %w", m.version, err)
		}
		if _, err := db.Exec(`DELETE FROM schema_migrations WHERE version = $1`, m.version); err != nil {
			return fmt.Errorf("failed to remove migration record: %w", err)
		}

		fmt.Println("rollback successful.")
		return nil
	}

	return fmt.Errorf("migration file not found for version: %s", last)
}

func appliedVersions(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func splitSections(content string) (up, down string) {
	var upBuf, downBuf strings.Builder
	target := &strings.Builder{}

	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.Contains(line, "-- +migrate Up"):
			target = &upBuf
			continue
		case strings.Contains(line, "-- +migrate Down"):
			target = &downBuf
			continue
		}
		target.WriteString(line + "\n")
	}
	return upBuf.String(), downBuf.String()
}
