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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase data.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPurchaseRepository implements portsrepo.PurchaseRepositoryFacade
var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

// ExecutePurchase commits the balance debit and the purchase record as one
// database transaction. The user row is locked with FOR UPDATE for the
// duration, so concurrent purchases against the same user serialize on it;
// affordability is re-validated under the lock rather than trusted from the
// caller's earlier read. Either both writes commit or neither does.
func (r *PgxPurchaseRepository) ExecutePurchase(ctx context.Context, purchase domain.Purchase) (decimal.Decimal, error) {
	modelPurchase, err := mapping.ToModelPurchase(purchase)
	if err != nil {
		return decimal.Zero, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	// Ignored after a successful commit
	defer r.Rollback(ctx, tx)

	// 1. Lock the balance row
	var balance decimal.Decimal
	lockQuery := `
		SELECT balance
		FROM yum_users
		WHERE user_id = $1 AND deleted_at IS NULL
		FOR UPDATE;
	`
	err = tx.QueryRow(ctx, lockQuery, modelPurchase.UserID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to lock user %s for purchase: %w", modelPurchase.UserID, err)
	}

	// 2. Re-validate affordability under the lock
	if balance.LessThan(modelPurchase.PricePaid) {
		return decimal.Zero, fmt.Errorf("%w: balance %s is below price %s",
			apperrors.ErrValidation, balance.String(), modelPurchase.PricePaid.String())
	}
	newBalance := balance.Sub(modelPurchase.PricePaid)

	// 3. Apply the debit
	debitQuery := `
		UPDATE yum_users
		SET balance = $2, last_updated_at = $3, last_updated_by = $1
		WHERE user_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, debitQuery, modelPurchase.UserID, newBalance, modelPurchase.PurchaseDate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to debit balance for user %s: %w", modelPurchase.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// The row was locked above, so this should not happen
		return decimal.Zero, fmt.Errorf("%w: user %s vanished during purchase", apperrors.ErrNotFound, modelPurchase.UserID)
	}

	// 4. Insert the purchase record
	insertQuery := `
		INSERT INTO yum_purchased_recipes (purchase_id, user_id, recipe_id, price_paid, purchase_details, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelPurchase.PurchaseID,
		modelPurchase.UserID,
		modelPurchase.RecipeID,
		modelPurchase.PricePaid,
		modelPurchase.Details,
		modelPurchase.PurchaseDate,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return decimal.Zero, fmt.Errorf("%w: recipe %s already purchased by user %s",
				apperrors.ErrDuplicate, modelPurchase.RecipeID, modelPurchase.UserID)
		}
		return decimal.Zero, fmt.Errorf("failed to insert purchase record %s: %w", modelPurchase.PurchaseID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// HasPurchase reports whether a purchase record exists for the pair.
func (r *PgxPurchaseRepository) HasPurchase(ctx context.Context, userID string, recipeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM yum_purchased_recipes
			WHERE user_id = $1 AND recipe_id = $2
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, userID, recipeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check purchase record for user %s recipe %s: %w", userID, recipeID, err)
	}
	return exists, nil
}

// ListPurchasesByUser retrieves a page of the user's purchases, newest first.
func (r *PgxPurchaseRepository) ListPurchasesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Purchase, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT purchase_id, user_id, recipe_id, price_paid, purchase_details, purchase_date
		FROM yum_purchased_recipes
		WHERE user_id = $1
	`
	args := []interface{}{userID}
	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeCursorToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (purchase_date, purchase_id) < ($2, $3)`
		args = append(args, cursorDate, cursorID)
	}
	query += fmt.Sprintf(` ORDER BY purchase_date DESC, purchase_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // Fetch one extra row to detect the next page

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query purchases for user %s: %w", userID, err)
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		var m models.Purchase
		err := rows.Scan(&m.PurchaseID, &m.UserID, &m.RecipeID, &m.PricePaid, &m.Details, &m.PurchaseDate)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan purchase row for user %s: %w", userID, err)
		}
		d, err := mapping.ToDomainPurchase(m)
		if err != nil {
			return nil, nil, err
		}
		purchases = append(purchases, d)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating purchase rows for user %s: %w", userID, err)
	}

	var resultToken *string
	if len(purchases) > limit {
		purchases = purchases[:limit]
		last := purchases[len(purchases)-1]
		token := pagination.EncodeCursorToken(last.PurchaseDate, last.PurchaseID)
		resultToken = &token
	}
	return purchases, resultToken, nil
}
