// Package db implements the ledger's persistence gateway on PostgreSQL.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

type DB struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

func (db *DB) Close() {
	db.pool.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// RunMigrations runs database migrations.
//
// History queries order by (added_at, seq); seq breaks ties between
// operations created within the same timestamp tick, so replay order
// always matches insertion order.
func (db *DB) RunMigrations(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS pgcrypto;

		CREATE TABLE IF NOT EXISTS groups (
			group_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			channel_id BIGINT NOT NULL,
			added_at TIMESTAMP NOT NULL DEFAULT now()
		);
		CREATE UNIQUE INDEX IF NOT EXISTS ix_groups_channel_id ON groups(channel_id);

		CREATE TABLE IF NOT EXISTS participants (
			participant_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			group_id UUID NOT NULL REFERENCES groups(group_id) ON DELETE CASCADE,
			name VARCHAR(128) NOT NULL,
			added_at TIMESTAMP NOT NULL DEFAULT now()
		);
		CREATE UNIQUE INDEX IF NOT EXISTS ix_participants_group_name ON participants(group_id, name);

		CREATE TABLE IF NOT EXISTS operations (
			operation_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			participant_id UUID NOT NULL REFERENCES participants(participant_id) ON DELETE CASCADE,
			seq BIGSERIAL,
			amount DOUBLE PRECISION NOT NULL,
			comment VARCHAR(128) NOT NULL DEFAULT '',
			added_at TIMESTAMP NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS ix_operations_participant_id ON operations(participant_id);
	`)
	return err
}

// uniqueViolation reports whether err is a violation of the named
// unique constraint.
func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}

var _ ledger.Gateway = (*DB)(nil)
