package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

// InsertOperation appends a signed operation for the participant.
// Operations are immutable once inserted.
func (db *DB) InsertOperation(ctx context.Context, participantID uuid.UUID, amount float64, comment string) error {
	_, err := db.pool.Exec(ctx,
		"INSERT INTO operations (participant_id, amount, comment) VALUES ($1, $2, $3)",
		participantID, amount, comment,
	)
	return err
}

// DeleteGroupOperations wipes every operation of every participant in
// the channel's group. Participants themselves are kept. Nothing to
// delete is not an error.
func (db *DB) DeleteGroupOperations(ctx context.Context, channelID int64) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM operations
		 WHERE participant_id IN (
			SELECT p.participant_id
			FROM participants p
				JOIN groups g ON p.group_id = g.group_id
			WHERE g.channel_id = $1
		 )`,
		channelID,
	)
	return err
}

// ListParticipantOperations returns one participant's operations by
// creation time ascending, ties broken by insertion sequence.
func (db *DB) ListParticipantOperations(ctx context.Context, participantID uuid.UUID) ([]ledger.Entry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT amount, comment
		 FROM operations
		 WHERE participant_id = $1
		 ORDER BY added_at, seq`,
		participantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		var e ledger.Entry
		if err := rows.Scan(&e.Amount, &e.Comment); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListGroupOperations returns the whole group's operations merged by
// creation time ascending, not grouped by participant.
func (db *DB) ListGroupOperations(ctx context.Context, channelID int64) ([]ledger.GroupEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT p.name, o.amount, o.comment
		 FROM operations o
			JOIN participants p ON p.participant_id = o.participant_id
			JOIN groups g ON g.group_id = p.group_id
		 WHERE g.channel_id = $1
		 ORDER BY o.added_at, o.seq`,
		channelID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ledger.GroupEntry
	for rows.Next() {
		var e ledger.GroupEntry
		if err := rows.Scan(&e.Name, &e.Amount, &e.Comment); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
