package universities

import (
	"context"

	"github.com/mathalama/review-universities/internal/client/models"
)

// Repository describes the cached catalogue.
type Repository interface {
	// ReplaceAll drops the cached list and stores the given one atomically.
	ReplaceAll(ctx context.Context, list []models.University) error

	// Upsert stores or refreshes a single university.
	Upsert(ctx context.Context, u models.University) error

	// GetAll returns cached universities ordered by name.
	GetAll(ctx context.Context) ([]models.University, error)

	// GetByID returns common.ErrorNotFound when the university is not cached.
	GetByID(ctx context.Context, id int64) (models.University, error)

	DeleteByID(ctx context.Context, id int64) error
}
