package store

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"aidbridge/internal/domain"
)

// Demo dataset loaded on first boot, when the KV backend holds no state yet.

var (
	seedAdminID     = uuid.MustParse("a0000000-0000-4000-8000-000000000001")
	seedDonorID     = uuid.MustParse("a0000000-0000-4000-8000-000000000002")
	seedRecipientID = uuid.MustParse("a0000000-0000-4000-8000-000000000003")
	seedLogisticsID = uuid.MustParse("a0000000-0000-4000-8000-000000000004")
)

func seedUsers() []domain.User {
	createdAt := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)

	return []domain.User{
		{ID: seedAdminID, Name: "Admin User", Email: "admin@aid.com", PasswordHash: hashPassword("admin123"), Role: domain.RoleAdmin, CreatedAt: createdAt},
		{ID: seedDonorID, Name: "John Donor", Email: "donor@aid.com", PasswordHash: hashPassword("donor123"), Role: domain.RoleDonor, CreatedAt: createdAt},
		{ID: seedRecipientID, Name: "Sarah Recipient", Email: "recipient@aid.com", PasswordHash: hashPassword("recipient123"), Role: domain.RoleRecipient, CreatedAt: createdAt},
		{ID: seedLogisticsID, Name: "Mike Logistics", Email: "logistics@aid.com", PasswordHash: hashPassword("logistics123"), Role: domain.RoleLogistics, CreatedAt: createdAt},
	}
}

func seedDonations() []domain.Item {
	return []domain.Item{
		{
			ID:          uuid.MustParse("d0000000-0000-4000-8000-000000000001"),
			Kind:        domain.KindDonation,
			Title:       "Bottled Water - 100 cases",
			Category:    domain.CategoryWater,
			Quantity:    100,
			DonorID:     &seedDonorID,
			RecipientID: &seedRecipientID,
			LogisticsID: &seedLogisticsID,
			Status:      domain.StatusApproved,
			CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          uuid.MustParse("d0000000-0000-4000-8000-000000000002"),
			Kind:        domain.KindDonation,
			Title:       "Emergency Food Kits",
			Category:    domain.CategoryFood,
			Quantity:    50,
			DonorID:     &seedDonorID,
			RecipientID: &seedRecipientID,
			LogisticsID: &seedLogisticsID,
			Status:      domain.StatusInTransit,
			CreatedAt:   time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.MustParse("d0000000-0000-4000-8000-000000000003"),
			Kind:      domain.KindDonation,
			Title:     "First Aid Supplies",
			Category:  domain.CategoryMedical,
			Quantity:  25,
			DonorID:   &seedDonorID,
			Status:    domain.StatusListed,
			CreatedAt: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          uuid.MustParse("d0000000-0000-4000-8000-000000000004"),
			Kind:        domain.KindDonation,
			Title:       "Blankets and Warm Clothing",
			Category:    domain.CategoryClothing,
			Quantity:    75,
			DonorID:     &seedDonorID,
			RecipientID: &seedRecipientID,
			LogisticsID: &seedLogisticsID,
			Status:      domain.StatusDelivered,
			CreatedAt:   time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.MustParse("d0000000-0000-4000-8000-000000000005"),
			Kind:      domain.KindDonation,
			Title:     "Portable Generators",
			Category:  domain.CategoryEquipment,
			Quantity:  5,
			DonorID:   &seedDonorID,
			Status:    domain.StatusApproved,
			CreatedAt: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedRequests() []domain.Item {
	return []domain.Item{
		{
			ID:          uuid.MustParse("e0000000-0000-4000-8000-000000000001"),
			Kind:        domain.KindRequest,
			Title:       "Urgent: Clean Drinking Water",
			Category:    domain.CategoryWater,
			Quantity:    200,
			RecipientID: &seedRecipientID,
			Status:      domain.StatusApproved,
			CreatedAt:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          uuid.MustParse("e0000000-0000-4000-8000-000000000002"),
			Kind:        domain.KindRequest,
			Title:       "Medical Supplies Needed",
			Category:    domain.CategoryMedical,
			Quantity:    30,
			RecipientID: &seedRecipientID,
			Status:      domain.StatusRequested,
			CreatedAt:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          uuid.MustParse("e0000000-0000-4000-8000-000000000003"),
			Kind:        domain.KindRequest,
			Title:       "Baby Formula and Diapers",
			Category:    domain.CategoryFood,
			Quantity:    40,
			RecipientID: &seedRecipientID,
			LogisticsID: &seedLogisticsID,
			Status:      domain.StatusInTransit,
			CreatedAt:   time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		},
	}
}

func hashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
