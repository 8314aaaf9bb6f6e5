package repaymentrepo

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

func (r *Repository) Create(ctx context.Context, repayment *domain.Repayment) (*domain.Repayment, error) {
	query := `
		INSERT INTO repayments (loan_id, amount, method, notes, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		repayment.LoanID,
		domain.FormatAmount(repayment.Amount),
		string(repayment.Method),
		repayment.Notes,
		repayment.Reference,
		repayment.CreatedAt,
	).Scan(&repayment.ID)
	if err != nil {
		zap.L().Error("can't save repayment", zap.Error(err))
		return nil, err
	}
	return repayment, nil
}

func (r *Repository) ListByLoanID(ctx context.Context, loanID int) ([]domain.Repayment, error) {
	query := `
        SELECT id, loan_id, amount, method, notes, reference, created_at
        FROM repayments
        WHERE loan_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, loanID)
	if err != nil {
		zap.L().Error("failed to fetch repayments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var repayments []domain.Repayment
	for rows.Next() {
		var p domain.Repayment
		if err := rows.Scan(&p.ID, &p.LoanID, &p.Amount, &p.Method, &p.Notes, &p.Reference, &p.CreatedAt); err != nil {
			zap.L().Error("failed to scan repayment row", zap.Error(err))
			return nil, err
		}
		repayments = append(repayments, p)
	}
	return repayments, rows.Err()
}
