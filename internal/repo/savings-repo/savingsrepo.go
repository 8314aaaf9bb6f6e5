package savingsrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const savingsColumns = `id, user_id, product_id, account_number, balance, created_at, updated_at`

func scanSavings(row pgx.Row) (*domain.Savings, error) {
	var s domain.Savings
	err := row.Scan(&s.ID, &s.UserID, &s.ProductID, &s.AccountNumber, &s.Balance, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Savings, error) {
	savings, err := scanSavings(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get savings", zap.Error(err))
		return nil, err
	}
	return savings, nil
}

func (r *Repository) Create(ctx context.Context, userID int, accountNumber string) (*domain.Savings, error) {
	query := `
        INSERT INTO savings (user_id, account_number, balance)
        VALUES ($1, $2, 0)
        RETURNING ` + savingsColumns
	savings, err := scanSavings(r.db.QueryRow(ctx, query, userID, accountNumber))
	if err != nil {
		zap.L().Error("failed to create savings account", zap.Error(err), zap.Int("user_id", userID))
		return nil, err
	}
	return savings, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Savings, error) {
	return r.findOne(ctx, "SELECT "+savingsColumns+" FROM savings WHERE id = $1", id)
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Savings, error) {
	return r.findOne(ctx, "SELECT "+savingsColumns+" FROM savings WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Savings, error) {
	return r.findOne(ctx, "SELECT "+savingsColumns+" FROM savings WHERE user_id = $1", userID)
}

func (r *Repository) GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.Savings, error) {
	return r.findOne(ctx, "SELECT "+savingsColumns+" FROM savings WHERE account_number = $1", accountNumber)
}

func (r *Repository) UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) (*domain.Savings, error) {
	query := `
		UPDATE savings
		SET balance = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + savingsColumns
	savings, err := scanSavings(r.db.QueryRow(ctx, query, domain.FormatAmount(balance), id))
	if err != nil {
		zap.L().Error("failed to update savings balance", zap.Error(err), zap.Int("savings_id", id))
		return nil, err
	}
	return savings, nil
}

func (r *Repository) SetProduct(ctx context.Context, id, productID int) (*domain.Savings, error) {
	query := `
		UPDATE savings
		SET product_id = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + savingsColumns
	return r.findOne(ctx, query, productID, id)
}

func (r *Repository) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, "SELECT COALESCE(SUM(balance), 0) FROM savings").Scan(&total); err != nil {
		zap.L().Error("failed to sum savings balances", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}
