package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/YumDrop/yum_recipes_backend/internal/apperrors"
	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	portsrepo "github.com/YumDrop/yum_recipes_backend/internal/core/ports/repositories"
	"github.com/YumDrop/yum_recipes_backend/internal/models"
	"github.com/YumDrop/yum_recipes_backend/internal/utils/mapping"
	"github.com/YumDrop/yum_recipes_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRecipeRepository struct {
	BaseRepository
}

// newPgxRecipeRepository creates a new repository for recipe data.
func newPgxRecipeRepository(pool *pgxpool.Pool) portsrepo.RecipeRepositoryFacade {
	return &PgxRecipeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxRecipeRepository implements portsrepo.RecipeRepositoryFacade
var _ portsrepo.RecipeRepositoryFacade = (*PgxRecipeRepository)(nil)

// FindRecipeByID retrieves a free recipe by its ID.
func (r *PgxRecipeRepository) FindRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	query := `
		SELECT recipe_id, name, data, created_at, created_by, last_updated_at, last_updated_by
		FROM yum_recipes
		WHERE recipe_id = $1;
	`
	var m models.Recipe
	err := r.Pool.QueryRow(ctx, query, recipeID).Scan(
		&m.RecipeID,
		&m.Name,
		&m.Data,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recipe by ID %s: %w", recipeID, err)
	}

	d, err := mapping.ToDomainRecipe(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListRecipes retrieves a page of free recipes, newest first.
func (r *PgxRecipeRepository) ListRecipes(ctx context.Context, limit int, nextToken *string) ([]domain.Recipe, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT recipe_id, name, data, created_at, created_by, last_updated_at, last_updated_by
		FROM yum_recipes
	`
	args := []interface{}{}
	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeCursorToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` WHERE (created_at, recipe_id) < ($1, $2)`
		args = append(args, cursorDate, cursorID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, recipe_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // Fetch one extra row to detect the next page

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := []domain.Recipe{}
	for rows.Next() {
		var m models.Recipe
		err := rows.Scan(&m.RecipeID, &m.Name, &m.Data, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		d, err := mapping.ToDomainRecipe(m)
		if err != nil {
			return nil, nil, err
		}
		recipes = append(recipes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating recipe rows: %w", err)
	}

	var resultToken *string
	if len(recipes) > limit {
		recipes = recipes[:limit]
		last := recipes[len(recipes)-1]
		token := pagination.EncodeCursorToken(last.CreatedAt, last.RecipeID)
		resultToken = &token
	}
	return recipes, resultToken, nil
}

// FindExclusiveRecipeByID retrieves an exclusive recipe by its ID.
func (r *PgxRecipeRepository) FindExclusiveRecipeByID(ctx context.Context, recipeID string) (*domain.ExclusiveRecipe, error) {
	query := `
		SELECT recipe_id, name, price, data, created_at, created_by, last_updated_at, last_updated_by
		FROM yum_exclusive_recipes
		WHERE recipe_id = $1;
	`
	var m models.ExclusiveRecipe
	err := r.Pool.QueryRow(ctx, query, recipeID).Scan(
		&m.RecipeID,
		&m.Name,
		&m.Price,
		&m.Data,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exclusive recipe by ID %s: %w", recipeID, err)
	}

	d, err := mapping.ToDomainExclusiveRecipe(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListExclusiveRecipes retrieves a page of exclusive recipes, newest first.
func (r *PgxRecipeRepository) ListExclusiveRecipes(ctx context.Context, limit int, nextToken *string) ([]domain.ExclusiveRecipe, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT recipe_id, name, price, data, created_at, created_by, last_updated_at, last_updated_by
		FROM yum_exclusive_recipes
	`
	args := []interface{}{}
	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeCursorToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` WHERE (created_at, recipe_id) < ($1, $2)`
		args = append(args, cursorDate, cursorID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, recipe_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query exclusive recipes: %w", err)
	}
	defer rows.Close()

	recipes := []domain.ExclusiveRecipe{}
	for rows.Next() {
		var m models.ExclusiveRecipe
		err := rows.Scan(&m.RecipeID, &m.Name, &m.Price, &m.Data, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan exclusive recipe row: %w", err)
		}
		d, err := mapping.ToDomainExclusiveRecipe(m)
		if err != nil {
			return nil, nil, err
		}
		recipes = append(recipes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating exclusive recipe rows: %w", err)
	}

	var resultToken *string
	if len(recipes) > limit {
		recipes = recipes[:limit]
		last := recipes[len(recipes)-1]
		token := pagination.EncodeCursorToken(last.CreatedAt, last.RecipeID)
		resultToken = &token
	}
	return recipes, resultToken, nil
}
