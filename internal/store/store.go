package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"aidbridge/internal/domain"
	"aidbridge/internal/repository"
)

// maxNotifications caps the activity feed at the most recent entries.
const maxNotifications = 10

// Store owns the canonical lists of users, donations, requests and the
// notification feed. It loads each collection from the KV collaborator once
// at construction and writes through after every mutation. A failed write
// only logs a warning: the in-memory state stays authoritative for the rest
// of the session, so a broken persistence backend never fails a mutation.
//
// Records are replaced, never mutated in place; snapshot reads hand out
// copies that callers may keep across later mutations.
type Store struct {
	mu sync.RWMutex
	kv repository.KV

	users         []domain.User
	donations     []domain.Item
	requests      []domain.Item
	notifications []domain.Notification
}

func New(ctx context.Context, kv repository.KV) (*Store, error) {
	s := &Store{kv: kv}

	seeded := false
	if err := s.loadUsers(ctx, &seeded); err != nil {
		return nil, err
	}
	if err := s.loadItems(ctx, repository.KeyDonations, &s.donations, seedDonations, seeded); err != nil {
		return nil, err
	}
	if err := s.loadItems(ctx, repository.KeyRequests, &s.requests, seedRequests, seeded); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) loadUsers(ctx context.Context, seeded *bool) error {
	data, found, err := s.kv.Load(ctx, repository.KeyUsers)
	if err != nil {
		return fmt.Errorf("load %s: %w", repository.KeyUsers, err)
	}
	if !found {
		s.users = seedUsers()
		*seeded = true
		s.persist(ctx, repository.KeyUsers)
		return nil
	}
	var stored []persistedUser
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("decode %s: %w", repository.KeyUsers, err)
	}
	s.users = usersFromPersisted(stored)
	return nil
}

func (s *Store) loadItems(ctx context.Context, key string, dst *[]domain.Item, seed func() []domain.Item, freshBoot bool) error {
	data, found, err := s.kv.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		// Demo data only accompanies a fresh user set; an existing
		// deployment with an empty collection stays empty.
		if freshBoot {
			*dst = seed()
		}
		s.persist(ctx, key)
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Users returns a snapshot copy of all users.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) UserByID(id uuid.UUID) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			cp := u
			return &cp
		}
	}
	return nil
}

func (s *Store) UserByEmail(email string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp
		}
	}
	return nil
}

func (s *Store) UsersByRole(role domain.UserRole) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.User{}
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

func (s *Store) AppendUser(ctx context.Context, user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user)
	s.persist(ctx, repository.KeyUsers)
}

// Donations returns a snapshot copy of all donations.
func (s *Store) Donations() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Item, len(s.donations))
	copy(out, s.donations)
	return out
}

// Requests returns a snapshot copy of all requests.
func (s *Store) Requests() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Item, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Store) Items(kind domain.ItemKind) []domain.Item {
	if kind == domain.KindRequest {
		return s.Requests()
	}
	return s.Donations()
}

func (s *Store) ItemByID(kind domain.ItemKind, id uuid.UUID) *domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range *s.listFor(kind) {
		if item.ID == id {
			cp := item
			return &cp
		}
	}
	return nil
}

// AppendItem adds a new record to the collection matching item.Kind.
func (s *Store) AppendItem(ctx context.Context, item domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.listFor(item.Kind)
	*list = append(*list, item)
	s.persist(ctx, keyFor(item.Kind))
}

// UpdateItem replaces the record with the given id by a mutated copy and
// returns the new record, or nil when no record matches. A miss is not an
// error: callers that want silent no-op semantics just ignore the nil.
func (s *Store) UpdateItem(ctx context.Context, kind domain.ItemKind, id uuid.UUID, mutate func(*domain.Item)) *domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.listFor(kind)
	for i, item := range *list {
		if item.ID != id {
			continue
		}
		next := item
		mutate(&next)
		next.UpdatedAt = time.Now().UTC()
		(*list)[i] = next
		s.persist(ctx, keyFor(kind))
		cp := next
		return &cp
	}
	return nil
}

// Notifications returns the feed, most recent first.
func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// PushNotification prepends an entry and evicts the oldest beyond the cap.
func (s *Store) PushNotification(message string) domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notif := domain.Notification{
		ID:        uuid.New(),
		Message:   message,
		Timestamp: time.Now().UTC(),
	}

	s.notifications = append([]domain.Notification{notif}, s.notifications...)
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[:maxNotifications]
	}
	return notif
}

func (s *Store) DismissNotification(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) listFor(kind domain.ItemKind) *[]domain.Item {
	if kind == domain.KindRequest {
		return &s.requests
	}
	return &s.donations
}

func keyFor(kind domain.ItemKind) string {
	if kind == domain.KindRequest {
		return repository.KeyRequests
	}
	return repository.KeyDonations
}

// persist writes one collection through to the KV backend. Callers hold the
// write lock. Failures are logged and swallowed.
func (s *Store) persist(ctx context.Context, key string) {
	var v any
	switch key {
	case repository.KeyUsers:
		v = usersToPersisted(s.users)
	case repository.KeyDonations:
		v = s.donations
	case repository.KeyRequests:
		v = s.requests
	}

	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Warnf("state not persisted: encode %s failed", key)
		return
	}
	if err := s.kv.Save(ctx, key, data); err != nil {
		logrus.WithError(err).Warnf("state not persisted: save %s failed, continuing in memory", key)
	}
}
