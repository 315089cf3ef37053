package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidbridge/internal/domain"
	"aidbridge/internal/repository"
	"aidbridge/internal/store"
)

// newTestStore builds a store over a memory backend preloaded with empty
// collections, so tests start without the demo dataset.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()
	kv := repository.NewMemoryKV()
	for _, key := range []string{repository.KeyUsers, repository.KeyDonations, repository.KeyRequests} {
		require.NoError(t, kv.Save(ctx, key, []byte("[]")))
	}
	s, err := store.New(ctx, kv)
	require.NoError(t, err)
	return s
}

func TestAddDonation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewLifecycleService(st, nil, nil)

	donorID := uuid.New()
	item, err := svc.AddDonation(ctx, donorID, domain.CreateItemInput{
		Title:    "Winter Coats",
		Category: domain.CategoryClothing,
		Quantity: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.KindDonation, item.Kind)
	assert.Equal(t, domain.StatusListed, item.Status)
	require.NotNil(t, item.DonorID)
	assert.Equal(t, donorID, *item.DonorID)
	assert.Nil(t, item.RecipientID)
	assert.Nil(t, item.LogisticsID)

	feed := st.Notifications()
	require.NotEmpty(t, feed)
	assert.Equal(t, "New donation listed: Winter Coats", feed[0].Message)
}

func TestAddRequest(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewLifecycleService(st, nil, nil)

	recipientID := uuid.New()
	item, err := svc.AddRequest(ctx, recipientID, domain.CreateItemInput{
		Title:    "Insulin Supplies",
		Category: domain.CategoryMedical,
		Quantity: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.KindRequest, item.Kind)
	assert.Equal(t, domain.StatusRequested, item.Status)
	require.NotNil(t, item.RecipientID)
	assert.Equal(t, recipientID, *item.RecipientID)
	assert.Nil(t, item.DonorID)
}

func TestTransitionsAreUnconditional(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewLifecycleService(st, nil, nil)

	item, err := svc.AddDonation(ctx, uuid.New(), domain.CreateItemInput{Title: "Rice Bags", Category: domain.CategoryFood, Quantity: 100})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, domain.KindDonation, item.ID))
	require.NoError(t, svc.MarkDelivered(ctx, domain.KindDonation, item.ID))

	got := st.ItemByID(domain.KindDonation, item.ID)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusDelivered, got.Status)
}

func TestPickShipmentOnlyTouchesTimestamp(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewLifecycleService(st, nil, nil)

	item, err := svc.AddDonation(ctx, uuid.New(), domain.CreateItemInput{Title: "Water Tanks", Category: domain.CategoryWater, Quantity: 3})
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, domain.KindDonation, item.ID))

	before := st.ItemByID(domain.KindDonation, item.ID)
	require.NotNil(t, before)

	require.NoError(t, svc.PickShipment(ctx, domain.KindDonation, item.ID))

	after := st.ItemByID(domain.KindDonation, item.ID)
	require.NotNil(t, after)
	assert.Equal(t, before.Status, after.Status)
	assert.Nil(t, after.LogisticsID)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestAssignDonationKeepsStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewLifecycleService(st, nil, nil)

	item, err := svc.AddDonation(ctx, uuid.New(), domain.CreateItemInput{Title: "Canned Goods", Category: domain.CategoryFood, Quantity: 60})
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, domain.KindDonation, item.ID))

	recipientID := uuid.New()
	require.NoError(t, svc.AssignDonationToRecipient(ctx, item.ID, recipientID))

	got := st.ItemByID(domain.KindDonation, item.ID)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusApproved, got.Status)
	require.NotNil(t, got.RecipientID)
	assert.Equal(t, recipientID, *got.RecipientID)
}

func TestUnknownIDIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewLifecycleService(st, nil, nil)

	require.NoError(t, svc.Approve(ctx, domain.KindDonation, uuid.New()))

	assert.Empty(t, st.Donations())

	// The feed still records the attempt.
	feed := st.Notifications()
	require.Len(t, feed, 1)
	assert.Equal(t, "Donation approved", feed[0].Message)
}

func TestFullDeliveryFlow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewLifecycleService(st, nil, nil)

	donorID := uuid.New()
	recipientID := uuid.New()
	logisticsID := uuid.New()

	item, err := svc.AddDonation(ctx, donorID, domain.CreateItemInput{Title: "Field Kitchen", Category: domain.CategoryEquipment, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, domain.KindDonation, item.ID))
	require.NoError(t, svc.AssignDonationToRecipient(ctx, item.ID, recipientID))
	require.NoError(t, svc.PickShipment(ctx, domain.KindDonation, item.ID))
	require.NoError(t, svc.MarkInTransit(ctx, domain.KindDonation, item.ID, logisticsID))
	require.NoError(t, svc.MarkDelivered(ctx, domain.KindDonation, item.ID))

	got := st.ItemByID(domain.KindDonation, item.ID)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusDelivered, got.Status)
	require.NotNil(t, got.RecipientID)
	assert.Equal(t, recipientID, *got.RecipientID)
	require.NotNil(t, got.LogisticsID)
	assert.Equal(t, logisticsID, *got.LogisticsID)

	feed := st.Notifications()
	require.Len(t, feed, 6)
	want := []string{
		"Item delivered successfully",
		"Item marked as in-transit",
		"Shipment picked up",
		"Donation assigned to recipient",
		"Donation approved",
		"New donation listed: Field Kitchen",
	}
	for i, msg := range want {
		assert.Equal(t, msg, feed[i].Message)
	}
}
