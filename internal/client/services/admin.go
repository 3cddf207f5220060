package services

import (
	"context"
	"fmt"

	"github.com/mathalama/review-universities/internal/client/client"
	"github.com/mathalama/review-universities/internal/client/models"
)

// AdminService backs the administration screen. Every call requires an
// administrator session and fails with the guard's error otherwise, before
// anything is sent.
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListAllReviews(ctx context.Context) ([]models.Review, error)
}

type adminService struct {
	client client.Client
	guard  Guard
}

func NewAdminService(c client.Client, g Guard) AdminService {
	return &adminService{client: c, guard: g}
}

func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	if _, err := s.guard.RequireAdmin(); err != nil {
		return nil, err
	}
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser refuses to delete the administrator's own account.
func (s *adminService) DeleteUser(ctx context.Context, id int64) error {
	me, err := s.guard.RequireAdmin()
	if err != nil {
		return err
	}
	if me.ID == id {
		return fmt.Errorf("%w: cannot delete own account", ErrInvalidInput)
	}
	if err := s.client.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func (s *adminService) ListAllReviews(ctx context.Context) ([]models.Review, error) {
	if _, err := s.guard.RequireAdmin(); err != nil {
		return nil, err
	}
	list, err := s.client.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return list, nil
}
