package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Schema for the billd ledger. Each step is a NNNN_name.up.sql /
// NNNN_name.down.sql pair; up steps apply in lexical order, down steps
// unwind in reverse.
//
//go:embed migrations/*.sql
var schemaFS embed.FS

type migrateDirection string

const (
	directionUp   migrateDirection = ".up.sql"
	directionDown migrateDirection = ".down.sql"
)

func MigrateUp(db *sql.DB) error { return migrate(db, directionUp) }

func MigrateDown(db *sql.DB) error { return migrate(db, directionDown) }

func migrate(db *sql.DB, dir migrateDirection) error {
	steps, err := fs.Glob(schemaFS, "migrations/*"+string(dir))
	if err != nil {
		return fmt.Errorf("storage: list migrations: %w", err)
	}
	sort.Strings(steps)
	if dir == directionDown {
		for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
			steps[i], steps[j] = steps[j], steps[i]
		}
	}
	for _, step := range steps {
		ddl, err := schemaFS.ReadFile(step)
		if err != nil {
			return fmt.Errorf("storage: read migration %s: %w", step, err)
		}
		if _, err := db.Exec(string(ddl)); err != nil {
			return fmt.Errorf("storage: apply migration %s: %w", step, err)
		}
	}
	return nil
}
