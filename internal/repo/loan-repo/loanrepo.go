package loanrepo

import (
	"context"
	"errors"
	"time"

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

const loanColumns = `id, user_id, product_id, amount, purpose, description, term_months, interest_rate, status, created_at, processed_at`

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var l domain.Loan
	err := row.Scan(&l.ID, &l.UserID, &l.ProductID, &l.Amount, &l.Purpose, &l.Description, &l.TermMonths, &l.InterestRate, &l.Status, &l.CreatedAt, &l.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) findOne(ctx context.Context, query string, id int) (*domain.Loan, error) {
	loan, err := scanLoan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find loan", zap.Error(err), zap.Int("loan_id", id))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) Save(ctx context.Context, loan *domain.Loan) error {
	query := `
		INSERT INTO loans (user_id, product_id, amount, purpose, description, term_months, interest_rate, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		loan.UserID,
		loan.ProductID,
		domain.FormatAmount(loan.Amount),
		loan.Purpose,
		loan.Description,
		loan.TermMonths,
		loan.InterestRate.String(),
		string(loan.Status),
		loan.CreatedAt,
	).Scan(&loan.ID)
	if err != nil {
		zap.L().Error("can't save loan", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Loan, error) {
	return r.findOne(ctx, "SELECT "+loanColumns+" FROM loans WHERE id = $1", id)
}

// FindForUpdate locks the loan row until the surrounding transaction ends.
func (r *Repository) FindForUpdate(ctx context.Context, id int) (*domain.Loan, error) {
	return r.findOne(ctx, "SELECT "+loanColumns+" FROM loans WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.Status, processedAt time.Time) (*domain.Loan, error) {
	query := `
		UPDATE loans
		SET status = $1, processed_at = $2
		WHERE id = $3
		RETURNING ` + loanColumns
	loan, err := scanLoan(r.db.QueryRow(ctx, query, string(status), processedAt, id))
	if err != nil {
		zap.L().Error("can't update loan status", zap.Error(err), zap.Int("loan_id", id))
		return nil, err
	}
	return loan, nil
}

func (r *Repository) FindLoansByUserID(ctx context.Context, userID int) ([]domain.Loan, error) {
	return r.list(ctx, "SELECT "+loanColumns+" FROM loans WHERE user_id = $1 ORDER BY created_at DESC", userID)
}

func (r *Repository) FindLoansByStatus(ctx context.Context, status domain.Status) ([]domain.Loan, error) {
	return r.list(ctx, "SELECT "+loanColumns+" FROM loans WHERE status = $1 ORDER BY created_at", string(status))
}

func (r *Repository) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM loans WHERE status = $1", string(status)).Scan(&count); err != nil {
		zap.L().Error("can't count loans", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// OutstandingByUserID is the approved principal of a member minus what has
// been repaid against it, never below zero.
func (r *Repository) OutstandingByUserID(ctx context.Context, userID int) (decimal.Decimal, error) {
	query := `
		SELECT GREATEST(
			COALESCE(SUM(l.amount), 0) - COALESCE((
				SELECT SUM(p.amount)
				FROM repayments p
				JOIN loans pl ON pl.id = p.loan_id
				WHERE pl.user_id = $1 AND pl.status = $2
			), 0),
			0)
		FROM loans l
		WHERE l.user_id = $1 AND l.status = $2
	`
	var outstanding decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID, string(domain.StatusApproved)).Scan(&outstanding); err != nil {
		zap.L().Error("can't compute outstanding loans", zap.Error(err), zap.Int("user_id", userID))
		return decimal.Zero, err
	}
	return outstanding, nil
}

// OutstandingTotal is OutstandingByUserID summed over every member.
func (r *Repository) OutstandingTotal(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(GREATEST(l.amount - COALESCE(p.repaid, 0), 0)), 0)
		FROM loans l
		LEFT JOIN (
			SELECT loan_id, SUM(amount) AS repaid FROM repayments GROUP BY loan_id
		) p ON p.loan_id = l.id
		WHERE l.status = $1
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, string(domain.StatusApproved)).Scan(&total); err != nil {
		zap.L().Error("can't compute outstanding total", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get loans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			zap.L().Error("can't scan loan", zap.Error(err))
			return nil, err
		}
		loans = append(loans, *loan)
	}
	return loans, rows.Err()
}
