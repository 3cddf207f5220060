package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/mathalama/review-universities/internal/client/repositories/metadata"
	"github.com/mathalama/review-universities/internal/common"
)

// TokenStore is the durable home of the bearer token. Load returns "" when no
// token is stored.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MetadataTokenStore keeps the token under a single metadata key. It also
// satisfies client.TokenSource.
type MetadataTokenStore struct {
	repo metadata.Repository
}

func NewMetadataTokenStore(repo metadata.Repository) *MetadataTokenStore {
	return &MetadataTokenStore{repo: repo}
}

func (s *MetadataTokenStore) Load(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.TokenMetadataKey)
	if errors.Is(err, common.ErrorNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return string(v), nil
}

func (s *MetadataTokenStore) Save(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, common.TokenMetadataKey, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *MetadataTokenStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.TokenMetadataKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
