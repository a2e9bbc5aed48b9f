// Package ledger implements the shared-expense ledger: signed monetary
// operations recorded against named participants of a group (one group
// per Discord channel), net balance aggregation and settlement
// proposals over the group's operation history.
package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrGroupExists is returned by Gateway.CreateGroup when the channel
	// is already registered. Service.EnsureGroup treats it as success.
	ErrGroupExists = errors.New("group already exists")

	// ErrParticipantExists is returned when a participant name collides
	// within its group. The unique constraint in the store is the source
	// of truth, so concurrent inserts surface this too.
	ErrParticipantExists = errors.New("participant already exists")

	ErrParticipantNotFound = errors.New("participant not found")

	// ErrNoParticipants is returned by ProposeSettlement when asked to
	// split between zero participants.
	ErrNoParticipants = errors.New("cannot split between zero participants")
)

// Entry is a single recorded operation of one participant. Amount is
// signed: positive for payments into the pool, negative for spending
// from it. The sign convention is applied by the caller; the ledger
// stores and sums amounts as given.
type Entry struct {
	Amount  float64
	Comment string
}

// GroupEntry is an operation within a whole-group history, merged
// across participants by creation time.
type GroupEntry struct {
	Name    string
	Amount  float64
	Comment string
}

// NetAmount is one participant's summed amount within a history.
// Slices of NetAmount keep the first-appearance order of names.
type NetAmount struct {
	Name   string
	Amount float64
}

// Gateway is the persistence contract the ledger service runs against.
// All history sequences are ordered by creation time ascending with a
// stable insertion-sequence tie-break; participant names are ordered by
// insertion. Each call is a single atomic read or write.
type Gateway interface {
	CreateGroup(ctx context.Context, channelID int64) error
	InsertParticipant(ctx context.Context, channelID int64, name string) error
	FindParticipant(ctx context.Context, channelID int64, name string) (uuid.UUID, bool, error)
	DeleteParticipant(ctx context.Context, participantID uuid.UUID) error
	DeleteGroupOperations(ctx context.Context, channelID int64) error
	InsertOperation(ctx context.Context, participantID uuid.UUID, amount float64, comment string) error
	ListParticipantNames(ctx context.Context, channelID int64) ([]string, error)
	ListParticipantOperations(ctx context.Context, participantID uuid.UUID) ([]Entry, error)
	ListGroupOperations(ctx context.Context, channelID int64) ([]GroupEntry, error)
}
