package database

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pageza/larder/backend/internal/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationFiles embed.FS

// RunMigrations applies the embedded SQL migrations for the connected dialect.
// Applied migrations are recorded in the migrations table and skipped on
// subsequent runs.
func RunMigrations(db *gorm.DB) error {
	dialect := db.Dialector.Name()
	dir := path.Join("migrations", dialect)

	entries, err := fs.ReadDir(migrationFiles, dir)
	if err != nil {
		return fmt.Errorf("no migrations for dialect %s: %w", dialect, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			name VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}

		var count int64
		if err := db.Table("migrations").Where("name = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if count > 0 {
			logger.Get().Debug("Skipping migration (already applied)", zap.String("name", name))
			continue
		}

		content, err := migrationFiles.ReadFile(path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			for _, stmt := range splitStatements(string(content)) {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return tx.Exec("INSERT INTO migrations (name) VALUES (?)", name).Error
		})
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", name, err)
		}

		logger.Info("Applied migration", zap.String("name", name), zap.String("dialect", dialect))
	}

	return nil
}

// splitStatements breaks a migration file on statement terminators. The
// migrations contain no semicolons inside literals.
func splitStatements(sql string) []string {
	var stmts []string
	for _, part := range strings.Split(sql, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
