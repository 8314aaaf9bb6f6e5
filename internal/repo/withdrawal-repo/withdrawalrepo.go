package withdrawalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
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

const withdrawalColumns = `id, savings_id, amount, method, reason, status, reference, created_at, processed_at`

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	err := row.Scan(&wd.ID, &wd.SavingsID, &wd.Amount, &wd.Method, &wd.Reason, &wd.Status, &wd.Reference, &wd.CreatedAt, &wd.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (savings_id, amount, method, reason, status, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		withdrawal.SavingsID,
		domain.FormatAmount(withdrawal.Amount),
		string(withdrawal.Method),
		withdrawal.Reason,
		string(withdrawal.Status),
		withdrawal.Reference,
		withdrawal.CreatedAt,
	).Scan(&withdrawal.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

// GetForUpdate locks the withdrawal row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Withdrawal, error) {
	wd, err := scanWithdrawal(r.db.QueryRow(ctx, "SELECT "+withdrawalColumns+" FROM withdrawals WHERE id = $1 FOR UPDATE", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get withdrawal", zap.Error(err), zap.Int("withdrawal_id", id))
		return nil, err
	}
	return wd, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.Status, processedAt time.Time) (*domain.Withdrawal, error) {
	query := `
		UPDATE withdrawals
		SET status = $1, processed_at = $2
		WHERE id = $3
		RETURNING ` + withdrawalColumns
	wd, err := scanWithdrawal(r.db.QueryRow(ctx, query, string(status), processedAt, id))
	if err != nil {
		zap.L().Error("failed to update withdrawal status", zap.Error(err), zap.Int("withdrawal_id", id))
		return nil, err
	}
	return wd, nil
}

func (r *Repository) GetWithdrawalsBySavingsID(ctx context.Context, savingsID int) ([]domain.Withdrawal, error) {
	return r.list(ctx, "SELECT "+withdrawalColumns+" FROM withdrawals WHERE savings_id = $1 ORDER BY created_at DESC", savingsID)
}

func (r *Repository) GetWithdrawalsByStatus(ctx context.Context, status domain.Status) ([]domain.Withdrawal, error) {
	return r.list(ctx, "SELECT "+withdrawalColumns+" FROM withdrawals WHERE status = $1 ORDER BY created_at", string(status))
}

func (r *Repository) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM withdrawals WHERE status = $1", string(status)).Scan(&count); err != nil {
		zap.L().Error("failed to count withdrawals", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		wd, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *wd)
	}

	return withdrawals, rows.Err()
}
