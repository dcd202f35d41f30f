package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	"github.com/YumDrop/yum_recipes_backend/internal/models"
)

// ToDomainRecipe converts a model Recipe to a domain Recipe, deserializing
// the JSONB detail payload.
func ToDomainRecipe(m models.Recipe) (domain.Recipe, error) {
	var details domain.RecipeDetails
	if len(m.Data) > 0 {
		if err := json.Unmarshal(m.Data, &details); err != nil {
			return domain.Recipe{}, fmt.Errorf("failed to decode recipe data for %s: %w", m.RecipeID, err)
		}
	}
	return domain.Recipe{
		RecipeID: m.RecipeID,
		Name:     m.Name,
		Details:  details,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

// ToDomainExclusiveRecipe converts a model ExclusiveRecipe to its domain
// counterpart, deserializing the JSONB detail payload.
func ToDomainExclusiveRecipe(m models.ExclusiveRecipe) (domain.ExclusiveRecipe, error) {
	var details domain.RecipeDetails
	if len(m.Data) > 0 {
		if err := json.Unmarshal(m.Data, &details); err != nil {
			return domain.ExclusiveRecipe{}, fmt.Errorf("failed to decode exclusive recipe data for %s: %w", m.RecipeID, err)
		}
	}
	return domain.ExclusiveRecipe{
		RecipeID: m.RecipeID,
		Name:     m.Name,
		Price:    m.Price,
		Details:  details,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}
