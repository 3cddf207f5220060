package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mathalama/review-universities/internal/client/client"
	"github.com/mathalama/review-universities/internal/client/models"
	"github.com/mathalama/review-universities/internal/client/repositories/universities"
	"github.com/mathalama/review-universities/internal/common"
	"github.com/mathalama/review-universities/internal/logging"
)

// CatalogService serves universities and their reviews. Listings fall back
// to the local cache when the backend is unreachable.
type CatalogService interface {
	ListUniversities(ctx context.Context) (UniversityList, error)
	GetUniversity(ctx context.Context, id int64) (models.University, bool, error)
	CreateUniversity(ctx context.Context, req models.CreateUniversityRequest) (models.University, error)
	UpdateUniversity(ctx context.Context, id int64, req models.UpdateUniversityRequest) (models.University, error)
	DeleteUniversity(ctx context.Context, id int64) error

	ListReviews(ctx context.Context, universityID int64) ([]models.Review, error)
	AddReview(ctx context.Context, req models.CreateReviewRequest) (models.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// UniversityList is a catalogue listing; FromCache marks an offline answer.
type UniversityList struct {
	Items     []models.University
	FromCache bool
}

type catalogService struct {
	client client.Client
	cache  universities.Repository
	guard  Guard
	log    logging.Logger
}

func NewCatalogService(c client.Client, cache universities.Repository, g Guard, l logging.Logger) CatalogService {
	return &catalogService{client: c, cache: cache, guard: g, log: l}
}

func (s *catalogService) ListUniversities(ctx context.Context) (UniversityList, error) {
	list, err := s.client.ListUniversities(ctx)
	if err == nil {
		if cerr := s.cache.ReplaceAll(ctx, list); cerr != nil {
			s.log.Warn(ctx, "failed to refresh catalogue cache", "error", cerr)
		}
		return UniversityList{Items: list}, nil
	}
	if !errors.Is(err, client.ErrUnavailable) {
		return UniversityList{}, fmt.Errorf("list universities: %w", err)
	}

	cached, cerr := s.cache.GetAll(ctx)
	if cerr != nil {
		s.log.Warn(ctx, "catalogue cache unreadable", "error", cerr)
		return UniversityList{}, fmt.Errorf("list universities: %w", err)
	}
	if len(cached) == 0 {
		return UniversityList{}, fmt.Errorf("list universities: %w", err)
	}
	s.log.Info(ctx, "backend unreachable, serving cached catalogue", "count", len(cached))
	return UniversityList{Items: cached, FromCache: true}, nil
}

func (s *catalogService) GetUniversity(ctx context.Context, id int64) (models.University, bool, error) {
	u, err := s.client.GetUniversity(ctx, id)
	if err == nil {
		if cerr := s.cache.Upsert(ctx, u); cerr != nil {
			s.log.Warn(ctx, "failed to cache university", "id", id, "error", cerr)
		}
		return u, false, nil
	}
	if errors.Is(err, client.ErrNotFound) {
		if cerr := s.cache.DeleteByID(ctx, id); cerr != nil {
			s.log.Warn(ctx, "failed to evict university", "id", id, "error", cerr)
		}
	}
	if !errors.Is(err, client.ErrUnavailable) {
		return models.University{}, false, fmt.Errorf("get university %d: %w", id, err)
	}

	cached, cerr := s.cache.GetByID(ctx, id)
	if cerr != nil {
		if !errors.Is(cerr, common.ErrorNotFound) {
			s.log.Warn(ctx, "catalogue cache unreadable", "error", cerr)
		}
		return models.University{}, false, fmt.Errorf("get university %d: %w", id, err)
	}
	return cached, true, nil
}

func (s *catalogService) CreateUniversity(ctx context.Context, req models.CreateUniversityRequest) (models.University, error) {
	if _, err := s.guard.RequireAdmin(); err != nil {
		return models.University{}, err
	}
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	if err := validateStruct(req); err != nil {
		return models.University{}, err
	}

	u, err := s.client.CreateUniversity(ctx, req)
	if err != nil {
		return models.University{}, fmt.Errorf("create university: %w", err)
	}
	if cerr := s.cache.Upsert(ctx, u); cerr != nil {
		s.log.Warn(ctx, "failed to cache university", "id", u.ID, "error", cerr)
	}
	return u, nil
}

func (s *catalogService) UpdateUniversity(ctx context.Context, id int64, req models.UpdateUniversityRequest) (models.University, error) {
	if _, err := s.guard.RequireAdmin(); err != nil {
		return models.University{}, err
	}
	if err := validateStruct(req); err != nil {
		return models.University{}, err
	}

	u, err := s.client.UpdateUniversity(ctx, id, req)
	if err != nil {
		return models.University{}, fmt.Errorf("update university %d: %w", id, err)
	}
	if cerr := s.cache.Upsert(ctx, u); cerr != nil {
		s.log.Warn(ctx, "failed to cache university", "id", u.ID, "error", cerr)
	}
	return u, nil
}

func (s *catalogService) DeleteUniversity(ctx context.Context, id int64) error {
	if _, err := s.guard.RequireAdmin(); err != nil {
		return err
	}
	if err := s.client.DeleteUniversity(ctx, id); err != nil {
		return fmt.Errorf("delete university %d: %w", id, err)
	}
	if cerr := s.cache.DeleteByID(ctx, id); cerr != nil {
		s.log.Warn(ctx, "failed to evict university", "id", id, "error", cerr)
	}
	return nil
}

func (s *catalogService) ListReviews(ctx context.Context, universityID int64) ([]models.Review, error) {
	list, err := s.client.ListUniversityReviews(ctx, universityID)
	if err != nil {
		return nil, fmt.Errorf("list reviews of %d: %w", universityID, err)
	}
	return list, nil
}

func (s *catalogService) AddReview(ctx context.Context, req models.CreateReviewRequest) (models.Review, error) {
	if _, err := s.guard.RequireUser(); err != nil {
		return models.Review{}, err
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Tags == nil {
		req.Tags = []string{}
	}
	if err := validateStruct(req); err != nil {
		return models.Review{}, err
	}

	r, err := s.client.AddReview(ctx, req)
	if err != nil {
		return models.Review{}, fmt.Errorf("add review: %w", err)
	}
	return r, nil
}

// DeleteReview removes a review. Whether the caller may delete it is decided
// by the backend.
func (s *catalogService) DeleteReview(ctx context.Context, id int64) error {
	if _, err := s.guard.RequireUser(); err != nil {
		return err
	}
	if err := s.client.DeleteReview(ctx, id); err != nil {
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	return nil
}
