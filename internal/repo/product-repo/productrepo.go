package productrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/pg"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pg.UniqueViolation
}

type SavingsRepository struct {
	db pg.Database
}

func NewSavings(db pg.Database) *SavingsRepository {
	return &SavingsRepository{db: db}
}

const savingsProductColumns = `id, name, interest_rate, minimum_balance, term_months, description, created_at`

func scanSavingsProduct(row pgx.Row) (*domain.SavingsProduct, error) {
	var p domain.SavingsProduct
	if err := row.Scan(&p.ID, &p.Name, &p.InterestRate, &p.MinimumBalance, &p.TermMonths, &p.Description, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SavingsRepository) Create(ctx context.Context, product *domain.SavingsProduct) (*domain.SavingsProduct, error) {
	query := `
		INSERT INTO savings_products (name, interest_rate, minimum_balance, term_months, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + savingsProductColumns
	created, err := scanSavingsProduct(r.db.QueryRow(ctx, query,
		product.Name,
		product.InterestRate.String(),
		domain.FormatAmount(product.MinimumBalance),
		product.TermMonths,
		product.Description,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrProductExists
		}
		zap.L().Error("can't save savings product", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *SavingsRepository) GetByID(ctx context.Context, id int) (*domain.SavingsProduct, error) {
	product, err := scanSavingsProduct(r.db.QueryRow(ctx, "SELECT "+savingsProductColumns+" FROM savings_products WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get savings product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *SavingsRepository) List(ctx context.Context) ([]domain.SavingsProduct, error) {
	rows, err := r.db.Query(ctx, "SELECT "+savingsProductColumns+" FROM savings_products ORDER BY name")
	if err != nil {
		zap.L().Error("can't list savings products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.SavingsProduct
	for rows.Next() {
		p, err := scanSavingsProduct(rows)
		if err != nil {
			zap.L().Error("failed to scan savings product row", zap.Error(err))
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

type LoanRepository struct {
	db pg.Database
}

func NewLoan(db pg.Database) *LoanRepository {
	return &LoanRepository{db: db}
}

const loanProductColumns = `id, name, interest_rate, max_amount, max_term, min_savings_percentage, description, created_at`

func scanLoanProduct(row pgx.Row) (*domain.LoanProduct, error) {
	var p domain.LoanProduct
	err := row.Scan(&p.ID, &p.Name, &p.InterestRate, &p.MaxAmount, &p.MaxTerm, &p.MinSavingsPercentage, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *LoanRepository) Create(ctx context.Context, product *domain.LoanProduct) (*domain.LoanProduct, error) {
	var minSavings *string
	if product.MinSavingsPercentage != nil {
		v := product.MinSavingsPercentage.String()
		minSavings = &v
	}
	query := `
		INSERT INTO loan_products (name, interest_rate, max_amount, max_term, min_savings_percentage, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + loanProductColumns
	created, err := scanLoanProduct(r.db.QueryRow(ctx, query,
		product.Name,
		product.InterestRate.String(),
		domain.FormatAmount(product.MaxAmount),
		product.MaxTerm,
		minSavings,
		product.Description,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrProductExists
		}
		zap.L().Error("can't save loan product", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id int) (*domain.LoanProduct, error) {
	product, err := scanLoanProduct(r.db.QueryRow(ctx, "SELECT "+loanProductColumns+" FROM loan_products WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get loan product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *LoanRepository) List(ctx context.Context) ([]domain.LoanProduct, error) {
	rows, err := r.db.Query(ctx, "SELECT "+loanProductColumns+" FROM loan_products ORDER BY name")
	if err != nil {
		zap.L().Error("can't list loan products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.LoanProduct
	for rows.Next() {
		p, err := scanLoanProduct(rows)
		if err != nil {
			zap.L().Error("failed to scan loan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}
