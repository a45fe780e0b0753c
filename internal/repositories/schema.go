package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/parts-store/internal/logger"
)

// migrations create the schema. Every statement is idempotent so Migrate can
// run on each start-up.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(80) NOT NULL UNIQUE CHECK (username <> ''),
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin'))
	);`,
	`CREATE TABLE IF NOT EXISTS parts (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(80) NOT NULL,
		price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		quantity INTEGER NOT NULL CHECK (quantity >= 0),
		image VARCHAR(120) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id BIGSERIAL PRIMARY KEY,
		part_id BIGINT REFERENCES parts(id) ON DELETE SET NULL,
		part_name VARCHAR(80) NOT NULL,
		user_id BIGINT NOT NULL REFERENCES users(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		created_at TIMESTAMP NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS purchases_part_id_idx ON purchases (part_id);`,
}

// Migrate applies the schema to db.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("apply migration %d: %w", i, err)
		}
	}
	logger.Log.Infow("schema migrated", "statements", len(migrations))
	return nil
}
