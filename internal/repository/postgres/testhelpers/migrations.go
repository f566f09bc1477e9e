package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ResetSchema drops the schema with .down.sql files (newest first) and
// recreates it with .up.sql files, so every suite starts from empty tables
func ResetSchema(db *sql.DB, migrationsPath string) error {
	down, err := migrationFiles(migrationsPath, ".down.sql")
	if err != nil {
		return err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(down)))

	if err := execFiles(db, migrationsPath, down); err != nil {
		return err
	}

	return ApplyMigrations(db, migrationsPath)
}

// ApplyMigrations applies all .up.sql migration files from the specified directory
func ApplyMigrations(db *sql.DB, migrationsPath string) error {
	up, err := migrationFiles(migrationsPath, ".up.sql")
	if err != nil {
		return err
	}
	sort.Strings(up)

	return execFiles(db, migrationsPath, up)
}

func migrationFiles(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func execFiles(db *sql.DB, dir string, files []string) error {
	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}
	return nil
}
