package ledger

import (
	"context"
	"errors"
	"fmt"
)

// Service runs ledger operations against an injected Gateway. It holds
// no state of its own; concurrency control is left to the store, whose
// unique constraints surface duplicate-insert races as
// ErrParticipantExists.
type Service struct {
	gw Gateway
}

func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// EnsureGroup registers the channel's group if it does not exist yet.
// Idempotent: an already existing group is success.
func (s *Service) EnsureGroup(ctx context.Context, channelID int64) error {
	err := s.gw.CreateGroup(ctx, channelID)
	if err != nil && !errors.Is(err, ErrGroupExists) {
		return fmt.Errorf("ensure group: %w", err)
	}
	return nil
}

// AddParticipant creates a participant with no operations. Returns
// ErrParticipantExists if the name is already taken in the group.
func (s *Service) AddParticipant(ctx context.Context, channelID int64, name string) error {
	return s.gw.InsertParticipant(ctx, channelID, name)
}

// RemoveParticipant deletes the participant and all their operations.
// Returns ErrParticipantNotFound if the name is absent.
func (s *Service) RemoveParticipant(ctx context.Context, channelID int64, name string) error {
	id, ok, err := s.gw.FindParticipant(ctx, channelID, name)
	if err != nil {
		return fmt.Errorf("find participant: %w", err)
	}
	if !ok {
		return ErrParticipantNotFound
	}
	return s.gw.DeleteParticipant(ctx, id)
}

// ResetGroup deletes every operation of every participant in the group.
// Participants stay. Resetting an empty group is a no-op.
func (s *Service) ResetGroup(ctx context.Context, channelID int64) error {
	return s.gw.DeleteGroupOperations(ctx, channelID)
}

// RecordOperation appends an immutable signed operation for the named
// participant. The amount is stored as given; negating spends is the
// caller's job.
func (s *Service) RecordOperation(ctx context.Context, channelID int64, name string, amount float64, comment string) error {
	id, ok, err := s.gw.FindParticipant(ctx, channelID, name)
	if err != nil {
		return fmt.Errorf("find participant: %w", err)
	}
	if !ok {
		return ErrParticipantNotFound
	}
	return s.gw.InsertOperation(ctx, id, amount, comment)
}

// ListParticipants returns the group's participant names in insertion
// order, read fresh from the store on every call.
func (s *Service) ListParticipants(ctx context.Context, channelID int64) ([]string, error) {
	return s.gw.ListParticipantNames(ctx, channelID)
}

// ParticipantHistory returns the named participant's operations in
// creation order. Returns ErrParticipantNotFound if the name is absent.
func (s *Service) ParticipantHistory(ctx context.Context, channelID int64, name string) ([]Entry, error) {
	id, ok, err := s.gw.FindParticipant(ctx, channelID, name)
	if err != nil {
		return nil, fmt.Errorf("find participant: %w", err)
	}
	if !ok {
		return nil, ErrParticipantNotFound
	}
	return s.gw.ListParticipantOperations(ctx, id)
}

// GroupHistory returns all operations in the group merged by creation
// time across participants.
func (s *Service) GroupHistory(ctx context.Context, channelID int64) ([]GroupEntry, error) {
	return s.gw.ListGroupOperations(ctx, channelID)
}
