package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	"github.com/YumDrop/yum_recipes_backend/internal/models"
)

// ToModelPurchase converts a domain Purchase to a model Purchase, serializing
// the metadata payload for the JSONB column.
func ToModelPurchase(d domain.Purchase) (models.Purchase, error) {
	details, err := json.Marshal(d.Details)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("failed to encode purchase details for %s: %w", d.PurchaseID, err)
	}
	return models.Purchase{
		PurchaseID:   d.PurchaseID,
		UserID:       d.UserID,
		RecipeID:     d.RecipeID,
		PricePaid:    d.PricePaid,
		Details:      details,
		PurchaseDate: d.PurchaseDate,
	}, nil
}

// ToDomainPurchase converts a model Purchase to a domain Purchase.
func ToDomainPurchase(m models.Purchase) (domain.Purchase, error) {
	var details domain.PurchaseDetails
	if len(m.Details) > 0 {
		if err := json.Unmarshal(m.Details, &details); err != nil {
			return domain.Purchase{}, fmt.Errorf("failed to decode purchase details for %s: %w", m.PurchaseID, err)
		}
	}
	return domain.Purchase{
		PurchaseID:   m.PurchaseID,
		UserID:       m.UserID,
		RecipeID:     m.RecipeID,
		PricePaid:    m.PricePaid,
		Details:      details,
		PurchaseDate: m.PurchaseDate,
	}, nil
}
