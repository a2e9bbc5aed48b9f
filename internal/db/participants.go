package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

// InsertParticipant adds a participant to the channel's group. The
// unique index on (group_id, name) turns duplicate inserts, including
// concurrent ones, into ledger.ErrParticipantExists.
func (db *DB) InsertParticipant(ctx context.Context, channelID int64, name string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO participants (group_id, name)
		 VALUES (
			(SELECT group_id FROM groups WHERE channel_id = $1),
			$2
		 )`,
		channelID, name,
	)
	if uniqueViolation(err, "ix_participants_group_name") {
		return ledger.ErrParticipantExists
	}
	return err
}

// FindParticipant looks up a participant by group and name. The second
// return value is false when the name is absent.
func (db *DB) FindParticipant(ctx context.Context, channelID int64, name string) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT p.participant_id
		 FROM participants p
			JOIN groups g ON p.group_id = g.group_id
		 WHERE g.channel_id = $1 AND p.name = $2`,
		channelID, name,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return id, true, nil
}

// DeleteParticipant removes the participant; their operations go with
// them through the ON DELETE CASCADE on operations.participant_id.
func (db *DB) DeleteParticipant(ctx context.Context, participantID uuid.UUID) error {
	ct, err := db.pool.Exec(ctx,
		"DELETE FROM participants WHERE participant_id = $1",
		participantID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("participant %s: %w", participantID, ledger.ErrParticipantNotFound)
	}
	return nil
}

// ListParticipantNames returns the group's participant names in
// insertion order.
func (db *DB) ListParticipantNames(ctx context.Context, channelID int64) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT p.name
		 FROM participants p
			JOIN groups g ON p.group_id = g.group_id
		 WHERE g.channel_id = $1
		 ORDER BY p.added_at, p.participant_id`,
		channelID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
