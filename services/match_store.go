package services

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"scorearena_server/models"
)

// MatchStore is the persistence collaborator behind the in-memory match
// registry. The registry stays authoritative at runtime; saves are
// write-through snapshots of the whole match record.
type MatchStore interface {
	Save(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, matchID string) error
	DeleteAll(ctx context.Context) error
}

// DynamoMatchStore persists matches in a DynamoDB table keyed by matchId.
type DynamoMatchStore struct {
	Dynamo *DynamoService
	Table  string
}

func (s *DynamoMatchStore) Save(ctx context.Context, match *models.Match) error {
	return s.Dynamo.PutItem(ctx, s.Table, match)
}

func (s *DynamoMatchStore) Delete(ctx context.Context, matchID string) error {
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	return s.Dynamo.DeleteItem(ctx, s.Table, key)
}

func (s *DynamoMatchStore) DeleteAll(ctx context.Context) error {
	ids, err := s.Dynamo.ScanKeys(ctx, s.Table, "matchId")
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// MemoryMatchStore keeps matches in process memory. Used when no table is
// configured, and by tests.
type MemoryMatchStore struct {
	mu      sync.Mutex
	matches map[string]models.Match
}

func NewMemoryMatchStore() *MemoryMatchStore {
	return &MemoryMatchStore{matches: make(map[string]models.Match)}
}

func (s *MemoryMatchStore) Save(_ context.Context, match *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = *match
	return nil
}

func (s *MemoryMatchStore) Delete(_ context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, matchID)
	return nil
}

func (s *MemoryMatchStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = make(map[string]models.Match)
	return nil
}
