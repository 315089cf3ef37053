package service

import (
	"context"

	"github.com/google/uuid"

	"aidbridge/internal/domain"
	"aidbridge/internal/store"
)

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type userService struct {
	store *store.Store
}

func NewUserService(st *store.Store) UserService {
	return &userService{store: st}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user := s.store.UserByID(id)
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return s.store.UsersByRole(role), nil
}
