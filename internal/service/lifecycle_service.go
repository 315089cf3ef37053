package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"aidbridge/internal/domain"
	"aidbridge/internal/store"
)

// LifecycleService implements every status transition of the donation and
// request state machine:
//
//	listed/requested -> approved -> in-transit -> delivered
//	listed/requested -> cancelled
//
// Transitions are deliberately unguarded: each operation forces its target
// state no matter the current one, and an unknown id is a silent no-op.
// The role-gated HTTP routes are the only callers, and they only offer the
// actions that make sense for the state they display, mirroring the
// dashboards this service fronts. Input validation (non-empty title,
// quantity >= 1) is likewise the caller's job.
type LifecycleService interface {
	AddDonation(ctx context.Context, donorID uuid.UUID, input domain.CreateItemInput) (*domain.Item, error)
	AddRequest(ctx context.Context, recipientID uuid.UUID, input domain.CreateItemInput) (*domain.Item, error)
	Cancel(ctx context.Context, kind domain.ItemKind, id uuid.UUID) error
	Approve(ctx context.Context, kind domain.ItemKind, id uuid.UUID) error
	AssignDonationToRecipient(ctx context.Context, donationID, recipientID uuid.UUID) error
	PickShipment(ctx context.Context, kind domain.ItemKind, id uuid.UUID) error
	MarkInTransit(ctx context.Context, kind domain.ItemKind, id, logisticsID uuid.UUID) error
	MarkDelivered(ctx context.Context, kind domain.ItemKind, id uuid.UUID) error
}

type lifecycleService struct {
	store    *store.Store
	redis    *redis.Client
	emailSvc EmailService
}

func NewLifecycleService(st *store.Store, rdb *redis.Client, emailSvc EmailService) LifecycleService {
	return &lifecycleService{
		store:    st,
		redis:    rdb,
		emailSvc: emailSvc,
	}
}

func (s *lifecycleService) AddDonation(ctx context.Context, donorID uuid.UUID, input domain.CreateItemInput) (*domain.Item, error) {
	item := s.newItem(domain.KindDonation, input)
	item.DonorID = &donorID

	s.store.AppendItem(ctx, item)
	s.store.PushNotification("New donation listed: " + item.Title)

	return &item, nil
}

func (s *lifecycleService) AddRequest(ctx context.Context, recipientID uuid.UUID, input domain.CreateItemInput) (*domain.Item, error) {
	item := s.newItem(domain.KindRequest, input)
	item.RecipientID = &recipientID

	s.store.AppendItem(ctx, item)
	s.store.PushNotification("New request created: " + item.Title)
	s.invalidateDemandCache(ctx)

	return &item, nil
}

func (s *lifecycleService) Cancel(ctx context.Context, kind domain.ItemKind, id uuid.UUID) error {
	s.store.UpdateItem(ctx, kind, id, func(item *domain.Item) {
		item.Status = domain.StatusCancelled
	})

	if kind == domain.KindRequest {
		s.store.PushNotification("Request cancelled")
		s.invalidateDemandCache(ctx)
	} else {
		s.store.PushNotification("Donation cancelled")
	}
	return nil
}

func (s *lifecycleService) Approve(ctx context.Context, kind domain.ItemKind, id uuid.UUID) error {
	updated := s.store.UpdateItem(ctx, kind, id, func(item *domain.Item) {
		item.Status = domain.StatusApproved
	})

	if kind == domain.KindRequest {
		s.store.PushNotification("Request approved")
		s.invalidateDemandCache(ctx)
	} else {
		s.store.PushNotification("Donation approved")
	}

	s.notifyOwner(updated)
	return nil
}

func (s *lifecycleService) AssignDonationToRecipient(ctx context.Context, donationID, recipientID uuid.UUID) error {
	s.store.UpdateItem(ctx, domain.KindDonation, donationID, func(item *domain.Item) {
		item.RecipientID = &recipientID
	})

	s.store.PushNotification("Donation assigned to recipient")
	return nil
}

// PickShipment only bumps the record's updated timestamp. The logistics
// actor is recorded later by MarkInTransit; dashboards rely on this exact
// split, so the asymmetry stays.
func (s *lifecycleService) PickShipment(ctx context.Context, kind domain.ItemKind, id uuid.UUID) error {
	s.store.UpdateItem(ctx, kind, id, func(item *domain.Item) {})

	s.store.PushNotification("Shipment picked up")
	return nil
}

func (s *lifecycleService) MarkInTransit(ctx context.Context, kind domain.ItemKind, id, logisticsID uuid.UUID) error {
	s.store.UpdateItem(ctx, kind, id, func(item *domain.Item) {
		item.Status = domain.StatusInTransit
		item.LogisticsID = &logisticsID
	})

	s.store.PushNotification("Item marked as in-transit")
	if kind == domain.KindRequest {
		s.invalidateDemandCache(ctx)
	}
	return nil
}

func (s *lifecycleService) MarkDelivered(ctx context.Context, kind domain.ItemKind, id uuid.UUID) error {
	updated := s.store.UpdateItem(ctx, kind, id, func(item *domain.Item) {
		item.Status = domain.StatusDelivered
	})

	s.store.PushNotification("Item delivered successfully")
	if kind == domain.KindRequest {
		s.invalidateDemandCache(ctx)
	}

	s.notifyOwner(updated)
	return nil
}

func (s *lifecycleService) newItem(kind domain.ItemKind, input domain.CreateItemInput) domain.Item {
	now := time.Now().UTC()
	return domain.Item{
		ID:        uuid.New(),
		Kind:      kind,
		Title:     input.Title,
		Category:  input.Category,
		Quantity:  input.Quantity,
		Status:    kind.InitialStatus(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// notifyOwner sends a courtesy status email to the user who created the
// item. Best effort: missing email service, unknown owner or a send
// failure never affect the mutation.
func (s *lifecycleService) notifyOwner(item *domain.Item) {
	if s.emailSvc == nil || item == nil {
		return
	}

	ownerID := item.DonorID
	if item.Kind == domain.KindRequest {
		ownerID = item.RecipientID
	}
	if ownerID == nil {
		return
	}

	owner := s.store.UserByID(*ownerID)
	if owner == nil || owner.Email == "" {
		return
	}

	title, status := item.Title, string(item.Status)
	go func(toEmail, name string) {
		if err := s.emailSvc.SendStatusEmail(context.Background(), toEmail, name, title, status); err != nil {
			logrus.WithError(err).Warn("failed to send status email")
		}
	}(owner.Email, owner.Name)
}

func (s *lifecycleService) invalidateDemandCache(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, demandCacheKey).Err()
	}
}
