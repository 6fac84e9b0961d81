package database

import (
	"context"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// schemaFile returns the DDL file for the dialect
func (db *DB) schemaFile() string {
	if db.Dialect == Postgres {
		return "schema/postgres.sql"
	}
	return "schema/sqlite.sql"
}

// EnsureSchema creates the tables if they do not exist yet.
// There is no versioning: statements are idempotent and run on every start.
func (db *DB) EnsureSchema(ctx context.Context) error {
	content, err := schemaFS.ReadFile(db.schemaFile())
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	for _, stmt := range splitStatements(string(content)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}

// splitStatements splits a DDL script on semicolons, dropping empty parts
func splitStatements(script string) []string {
	var statements []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
