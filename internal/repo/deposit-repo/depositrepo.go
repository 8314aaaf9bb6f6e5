package depositrepo

import (
	"context"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	query := `
		INSERT INTO deposits (savings_id, amount, method, notes, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		deposit.SavingsID,
		domain.FormatAmount(deposit.Amount),
		string(deposit.Method),
		deposit.Notes,
		deposit.Reference,
		deposit.CreatedAt,
	).Scan(&deposit.ID)
	if err != nil {
		zap.L().Error("can't save deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) ListBySavingsID(ctx context.Context, savingsID int) ([]domain.Deposit, error) {
	query := `
        SELECT id, savings_id, amount, method, notes, reference, created_at
        FROM deposits
        WHERE savings_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, savingsID)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		var d domain.Deposit
		err := rows.Scan(&d.ID, &d.SavingsID, &d.Amount, &d.Method, &d.Notes, &d.Reference, &d.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, d)
	}

	return deposits, rows.Err()
}
