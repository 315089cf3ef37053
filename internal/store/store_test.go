package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidbridge/internal/domain"
	"aidbridge/internal/repository"
)

// emptyKV returns a memory backend preloaded with empty collections so
// New does not install the demo dataset.
func emptyKV(t *testing.T) repository.KV {
	t.Helper()
	kv := repository.NewMemoryKV()
	ctx := context.Background()
	for _, key := range []string{repository.KeyUsers, repository.KeyDonations, repository.KeyRequests} {
		require.NoError(t, kv.Save(ctx, key, []byte("[]")))
	}
	return kv
}

// brokenKV loads empty collections but fails every save.
type brokenKV struct{}

func (brokenKV) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return []byte("[]"), true, nil
}

func (brokenKV) Save(ctx context.Context, key string, value []byte) error {
	return errors.New("backend down")
}

func TestNewSeedsFreshBackend(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, repository.NewMemoryKV())
	require.NoError(t, err)

	assert.Len(t, s.Users(), 4)
	assert.Len(t, s.Donations(), 5)
	assert.Len(t, s.Requests(), 3)

	admin := s.UserByEmail("admin@aid.com")
	require.NotNil(t, admin)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
}

func TestNewSkipsSeedWhenUsersExist(t *testing.T) {
	ctx := context.Background()
	kv := repository.NewMemoryKV()
	require.NoError(t, kv.Save(ctx, repository.KeyUsers, []byte(`[]`)))

	s, err := New(ctx, kv)
	require.NoError(t, err)

	// An existing deployment with empty collections stays empty.
	assert.Empty(t, s.Users())
	assert.Empty(t, s.Donations())
	assert.Empty(t, s.Requests())
}

func TestStateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := emptyKV(t)

	s1, err := New(ctx, kv)
	require.NoError(t, err)

	donorID := uuid.New()
	item := domain.Item{
		ID:        uuid.New(),
		Kind:      domain.KindDonation,
		Title:     "Water Purifiers",
		Category:  domain.CategoryWater,
		Quantity:  12,
		DonorID:   &donorID,
		Status:    domain.StatusListed,
		CreatedAt: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	s1.AppendItem(ctx, item)

	s2, err := New(ctx, kv)
	require.NoError(t, err)

	got := s2.ItemByID(domain.KindDonation, item.ID)
	require.NotNil(t, got)
	assert.Equal(t, item.Title, got.Title)
	assert.Equal(t, item.Status, got.Status)
	assert.Equal(t, item.Quantity, got.Quantity)
	require.NotNil(t, got.DonorID)
	assert.Equal(t, donorID, *got.DonorID)
	assert.True(t, item.CreatedAt.Equal(got.CreatedAt))
}

func TestPasswordHashSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := repository.NewMemoryKV()

	s1, err := New(ctx, kv)
	require.NoError(t, err)

	registered := domain.User{
		ID:           uuid.New(),
		Name:         "Jane Donor",
		Email:        "jane@aid.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         domain.RoleDonor,
		CreatedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	s1.AppendUser(ctx, registered)

	admin := s1.UserByEmail("admin@aid.com")
	require.NotNil(t, admin)
	require.NotEmpty(t, admin.PasswordHash)

	s2, err := New(ctx, kv)
	require.NoError(t, err)

	reloadedAdmin := s2.UserByEmail("admin@aid.com")
	require.NotNil(t, reloadedAdmin)
	assert.Equal(t, admin.PasswordHash, reloadedAdmin.PasswordHash)

	reloadedJane := s2.UserByEmail("jane@aid.com")
	require.NotNil(t, reloadedJane)
	assert.Equal(t, registered.PasswordHash, reloadedJane.PasswordHash)
	assert.Equal(t, registered.Role, reloadedJane.Role)
}

func TestUpdateItemReplacesRecord(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, emptyKV(t))
	require.NoError(t, err)

	item := domain.Item{ID: uuid.New(), Kind: domain.KindRequest, Title: "Tents", Category: domain.CategoryEquipment, Quantity: 4, Status: domain.StatusRequested}
	s.AppendItem(ctx, item)

	before := s.ItemByID(domain.KindRequest, item.ID)
	require.NotNil(t, before)

	updated := s.UpdateItem(ctx, domain.KindRequest, item.ID, func(i *domain.Item) {
		i.Status = domain.StatusApproved
	})
	require.NotNil(t, updated)
	assert.Equal(t, domain.StatusApproved, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(before.UpdatedAt))

	// The snapshot handed out earlier is unaffected.
	assert.Equal(t, domain.StatusRequested, before.Status)
}

func TestUpdateItemMissingIDReturnsNil(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, emptyKV(t))
	require.NoError(t, err)

	got := s.UpdateItem(ctx, domain.KindDonation, uuid.New(), func(i *domain.Item) {
		i.Status = domain.StatusDelivered
	})
	assert.Nil(t, got)
}

func TestNotificationFeed(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, emptyKV(t))
	require.NoError(t, err)

	t.Run("caps at ten newest-first", func(t *testing.T) {
		for i := 1; i <= 12; i++ {
			s.PushNotification(fmt.Sprintf("event %d", i))
		}

		feed := s.Notifications()
		require.Len(t, feed, 10)
		assert.Equal(t, "event 12", feed[0].Message)
		assert.Equal(t, "event 3", feed[9].Message)
	})

	t.Run("dismiss removes a single entry", func(t *testing.T) {
		feed := s.Notifications()
		target := feed[4]

		assert.True(t, s.DismissNotification(target.ID))

		after := s.Notifications()
		assert.Len(t, after, 9)
		for _, n := range after {
			assert.NotEqual(t, target.ID, n.ID)
		}
	})

	t.Run("dismiss of unknown id is a no-op", func(t *testing.T) {
		before := s.Notifications()
		assert.False(t, s.DismissNotification(uuid.New()))
		assert.Equal(t, before, s.Notifications())
	})
}

func TestMutationsSurviveSaveFailure(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, brokenKV{})
	require.NoError(t, err)

	item := domain.Item{ID: uuid.New(), Kind: domain.KindDonation, Title: "Solar Lamps", Category: domain.CategoryEquipment, Quantity: 20, Status: domain.StatusListed}
	s.AppendItem(ctx, item)

	got := s.ItemByID(domain.KindDonation, item.ID)
	require.NotNil(t, got)

	updated := s.UpdateItem(ctx, domain.KindDonation, item.ID, func(i *domain.Item) {
		i.Status = domain.StatusApproved
	})
	require.NotNil(t, updated)
	assert.Equal(t, domain.StatusApproved, updated.Status)

	s.AppendUser(ctx, domain.User{ID: uuid.New(), Name: "New Donor", Email: "new@aid.com", Role: domain.RoleDonor})
	assert.NotNil(t, s.UserByEmail("new@aid.com"))
}
