package budgetrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/pg"
)

// Repository stores budget categories and the recommendations generated
// from them.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const categoryColumns = `id, user_id, name, type, amount, created_at`

func scanCategory(row pgx.Row) (*domain.BudgetCategory, error) {
	var c domain.BudgetCategory
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Amount, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *domain.BudgetCategory) (*domain.BudgetCategory, error) {
	query := `
		INSERT INTO budget_categories (user_id, name, type, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + categoryColumns
	created, err := scanCategory(r.db.QueryRow(ctx, query, category.UserID, category.Name, string(category.Type), domain.FormatAmount(category.Amount)))
	if err != nil {
		zap.L().Error("can't save budget category", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetCategory(ctx context.Context, id int) (*domain.BudgetCategory, error) {
	category, err := scanCategory(r.db.QueryRow(ctx, "SELECT "+categoryColumns+" FROM budget_categories WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get budget category", zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *domain.BudgetCategory) (*domain.BudgetCategory, error) {
	query := `
		UPDATE budget_categories
		SET name = $1, type = $2, amount = $3
		WHERE id = $4
		RETURNING ` + categoryColumns
	updated, err := scanCategory(r.db.QueryRow(ctx, query, category.Name, string(category.Type), domain.FormatAmount(category.Amount), category.ID))
	if err != nil {
		zap.L().Error("can't update budget category", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM budget_categories WHERE id = $1", id); err != nil {
		zap.L().Error("can't delete budget category", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListCategories(ctx context.Context, userID int) ([]domain.BudgetCategory, error) {
	rows, err := r.db.Query(ctx, "SELECT "+categoryColumns+" FROM budget_categories WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		zap.L().Error("can't list budget categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.BudgetCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			zap.L().Error("failed to scan budget category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *Repository) HasCategoryType(ctx context.Context, userID int, categoryType domain.CategoryType) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM budget_categories WHERE user_id = $1 AND type = $2)`
	if err := r.db.QueryRow(ctx, query, userID, string(categoryType)).Scan(&exists); err != nil {
		zap.L().Error("can't check budget category type", zap.Error(err))
		return false, err
	}
	return exists, nil
}

const recommendationColumns = `id, user_id, kind, message, created_at`

func scanRecommendation(row pgx.Row) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.Kind, &rec.Message, &rec.CreatedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) CreateRecommendation(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	query := `
		INSERT INTO budget_recommendations (user_id, kind, message)
		VALUES ($1, $2, $3)
		RETURNING ` + recommendationColumns
	created, err := scanRecommendation(r.db.QueryRow(ctx, query, rec.UserID, string(rec.Kind), rec.Message))
	if err != nil {
		zap.L().Error("can't save recommendation", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetRecommendation(ctx context.Context, id int) (*domain.Recommendation, error) {
	rec, err := scanRecommendation(r.db.QueryRow(ctx, "SELECT "+recommendationColumns+" FROM budget_recommendations WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get recommendation", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (r *Repository) DeleteRecommendation(ctx context.Context, id int) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM budget_recommendations WHERE id = $1", id); err != nil {
		zap.L().Error("can't delete recommendation", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListRecommendations(ctx context.Context, userID int) ([]domain.Recommendation, error) {
	rows, err := r.db.Query(ctx, "SELECT "+recommendationColumns+" FROM budget_recommendations WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		zap.L().Error("can't list recommendations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var recs []domain.Recommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			zap.L().Error("failed to scan recommendation row", zap.Error(err))
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}
