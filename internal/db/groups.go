package db

import (
	"context"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

// CreateGroup registers a channel as a ledger group. Returns
// ledger.ErrGroupExists if the channel is already registered.
func (db *DB) CreateGroup(ctx context.Context, channelID int64) error {
	_, err := db.pool.Exec(ctx,
		"INSERT INTO groups (channel_id) VALUES ($1)",
		channelID,
	)
	if uniqueViolation(err, "ix_groups_channel_id") {
		return ledger.ErrGroupExists
	}
	return err
}
