package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aidbridge/internal/domain"
	"aidbridge/internal/middleware"
	"aidbridge/internal/service"
)

// ItemHandler serves one side of the item collection: it is instantiated
// once for donations and once for requests, which share the handler logic
// the way they share the state machine.
type ItemHandler struct {
	kind      domain.ItemKind
	lifecycle service.LifecycleService
	query     service.QueryService
}

func NewItemHandler(kind domain.ItemKind, lifecycle service.LifecycleService, query service.QueryService) *ItemHandler {
	return &ItemHandler{
		kind:      kind,
		lifecycle: lifecycle,
		query:     query,
	}
}

// Create plays the form-validator role: the lifecycle engine itself
// accepts whatever it is handed, so bad input has to be rejected here.
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateItemInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Title == "" {
		return middleware.BadRequest("Title is required")
	}
	if input.Quantity < 1 {
		return middleware.BadRequest("Quantity must be at least 1")
	}
	if !input.Category.IsValid() {
		return middleware.BadRequest("Invalid category")
	}

	userID := middleware.GetCurrentUserID(c)

	var item *domain.Item
	var err error
	if h.kind == domain.KindRequest {
		item, err = h.lifecycle.AddRequest(c.Context(), userID, input)
	} else {
		item, err = h.lifecycle.AddDonation(c.Context(), userID, input)
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	filter := domain.ItemFilter{
		Q:        c.Query("q"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}

	items, err := h.query.ListItems(c.Context(), h.kind, filter)
	if err != nil {
		return err
	}

	// mine=true narrows the list to records owned by the caller, the way
	// the donor and recipient dashboards only show their own entries.
	if c.QueryBool("mine") {
		userID := middleware.GetCurrentUserID(c)
		items = ownedBy(items, h.kind, userID)
	}

	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid item ID")
	}

	item, err := h.query.GetItem(c.Context(), h.kind, id)
	if err != nil {
		if err == service.ErrItemNotFound {
			return middleware.NotFound("Item not found")
		}
		return err
	}

	return c.JSON(item)
}

func (h *ItemHandler) Cancel(c *fiber.Ctx) error {
	return h.transition(c, func(ctx *fiber.Ctx, id uuid.UUID) error {
		return h.lifecycle.Cancel(ctx.Context(), h.kind, id)
	})
}

func (h *ItemHandler) Approve(c *fiber.Ctx) error {
	return h.transition(c, func(ctx *fiber.Ctx, id uuid.UUID) error {
		return h.lifecycle.Approve(ctx.Context(), h.kind, id)
	})
}

func (h *ItemHandler) Assign(c *fiber.Ctx) error {
	var input struct {
		RecipientID uuid.UUID `json:"recipient_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.RecipientID == uuid.Nil {
		return middleware.BadRequest("recipient_id is required")
	}

	return h.transition(c, func(ctx *fiber.Ctx, id uuid.UUID) error {
		return h.lifecycle.AssignDonationToRecipient(ctx.Context(), id, input.RecipientID)
	})
}

func (h *ItemHandler) Pick(c *fiber.Ctx) error {
	return h.transition(c, func(ctx *fiber.Ctx, id uuid.UUID) error {
		return h.lifecycle.PickShipment(ctx.Context(), h.kind, id)
	})
}

// Transit records the calling logistics user on the item, as the
// logistics dashboard does.
func (h *ItemHandler) Transit(c *fiber.Ctx) error {
	return h.transition(c, func(ctx *fiber.Ctx, id uuid.UUID) error {
		return h.lifecycle.MarkInTransit(ctx.Context(), h.kind, id, middleware.GetCurrentUserID(ctx))
	})
}

func (h *ItemHandler) Deliver(c *fiber.Ctx) error {
	return h.transition(c, func(ctx *fiber.Ctx, id uuid.UUID) error {
		return h.lifecycle.MarkDelivered(ctx.Context(), h.kind, id)
	})
}

// transition runs a lifecycle operation and returns the record's current
// state. Lifecycle operations never fail on unknown ids, so a missing
// record surfaces only through the follow-up read.
func (h *ItemHandler) transition(c *fiber.Ctx, op func(*fiber.Ctx, uuid.UUID) error) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid item ID")
	}

	if err := op(c, id); err != nil {
		return err
	}

	item, err := h.query.GetItem(c.Context(), h.kind, id)
	if err != nil {
		if err == service.ErrItemNotFound {
			return middleware.NotFound("Item not found")
		}
		return err
	}

	return c.JSON(item)
}

func ownedBy(items []domain.Item, kind domain.ItemKind, userID uuid.UUID) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		owner := item.DonorID
		if kind == domain.KindRequest {
			owner = item.RecipientID
		}
		if owner != nil && *owner == userID {
			out = append(out, item)
		}
	}
	return out
}
