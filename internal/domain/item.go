package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a donation or a request; the two share one shape and one state
// machine and are discriminated by Kind. For a donation DonorID is the
// creator and RecipientID the assignee; for a request RecipientID is the
// creator and DonorID stays nil.
type Item struct {
	ID          uuid.UUID  `json:"id"`
	Kind        ItemKind   `json:"kind"`
	Title       string     `json:"title"`
	Category    Category   `json:"category"`
	Quantity    int        `json:"quantity"`
	DonorID     *uuid.UUID `json:"donor_id,omitempty"`
	RecipientID *uuid.UUID `json:"recipient_id,omitempty"`
	LogisticsID *uuid.UUID `json:"logistics_id,omitempty"`
	Status      ItemStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ItemKind string

const (
	KindDonation ItemKind = "donation"
	KindRequest  ItemKind = "request"
)

func (k ItemKind) IsValid() bool {
	return k == KindDonation || k == KindRequest
}

// InitialStatus is the entry state of the machine: donations start listed,
// requests start requested.
func (k ItemKind) InitialStatus() ItemStatus {
	if k == KindRequest {
		return StatusRequested
	}
	return StatusListed
}

type ItemStatus string

const (
	StatusListed    ItemStatus = "listed"
	StatusRequested ItemStatus = "requested"
	StatusApproved  ItemStatus = "approved"
	StatusInTransit ItemStatus = "in-transit"
	StatusDelivered ItemStatus = "delivered"
	StatusCancelled ItemStatus = "cancelled"
)

type Category string

const (
	CategoryFood      Category = "Food"
	CategoryWater     Category = "Water"
	CategoryMedical   Category = "Medical"
	CategoryClothing  Category = "Clothing"
	CategoryEquipment Category = "Equipment"
	CategoryOther     Category = "Other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryWater, CategoryMedical, CategoryClothing, CategoryEquipment, CategoryOther:
		return true
	default:
		return false
	}
}

type CreateItemInput struct {
	Title    string   `json:"title" validate:"required"`
	Category Category `json:"category" validate:"required"`
	Quantity int      `json:"quantity" validate:"required,min=1"`
}

type CategoryDemand struct {
	Category Category `json:"category"`
	Quantity int      `json:"quantity"`
}
