package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"aidbridge/internal/domain"
	"aidbridge/internal/store"
)

var ErrItemNotFound = errors.New("item not found")

// QueryService is the read side: filtered listings over store snapshots
// for the role dashboards, plus the notification feed. It never mutates
// donation or request state.
type QueryService interface {
	ListItems(ctx context.Context, kind domain.ItemKind, filter domain.ItemFilter) ([]domain.Item, error)
	GetItem(ctx context.Context, kind domain.ItemKind, id uuid.UUID) (*domain.Item, error)
	Notifications(ctx context.Context) ([]domain.Notification, error)
	DismissNotification(ctx context.Context, id uuid.UUID) error
}

type queryService struct {
	store *store.Store
}

func NewQueryService(st *store.Store) QueryService {
	return &queryService{store: st}
}

func (s *queryService) ListItems(ctx context.Context, kind domain.ItemKind, filter domain.ItemFilter) ([]domain.Item, error) {
	return domain.FilterItems(s.store.Items(kind), filter), nil
}

func (s *queryService) GetItem(ctx context.Context, kind domain.ItemKind, id uuid.UUID) (*domain.Item, error) {
	item := s.store.ItemByID(kind, id)
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *queryService) Notifications(ctx context.Context) ([]domain.Notification, error) {
	return s.store.Notifications(), nil
}

// DismissNotification on an unknown id is a silent no-op; the feed may
// have evicted the entry already.
func (s *queryService) DismissNotification(ctx context.Context, id uuid.UUID) error {
	s.store.DismissNotification(id)
	return nil
}
