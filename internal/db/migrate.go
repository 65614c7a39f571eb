package db

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the embedded schema statement by statement; pgx's extended
// protocol rejects multi-command strings. Every statement is idempotent so
// the command is safe to rerun.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, statement := range strings.Split(schemaSQL, ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}

		if _, err := pool.Exec(ctx, statement); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	return nil
}
