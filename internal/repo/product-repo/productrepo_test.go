package productrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*SavingsRepository, *LoanRepository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	return NewSavings(mockDB), NewLoan(mockDB), mockDB
}

var ts = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func savingsProductRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "interest_rate", "minimum_balance", "term_months", "description", "created_at"}).
		AddRow(1, "Fixed", decimal.RequireFromString("5.5"), decimal.RequireFromString("100.00"), 12, "", ts)
}

func loanProductRows(pct *decimal.Decimal) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "interest_rate", "max_amount", "max_term", "min_savings_percentage", "description", "created_at"}).
		AddRow(4, "Development", decimal.RequireFromString("12.5"), decimal.RequireFromString("50000.00"), 24, pct, "", ts)
}

func TestSavingsRepository_Create(t *testing.T) {
	repo, _, mock := NewMock(t)
	product := &domain.SavingsProduct{
		Name:           "Fixed",
		InterestRate:   decimal.RequireFromString("5.5"),
		MinimumBalance: decimal.NewFromInt(100),
		TermMonths:     12,
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO savings_products")).
					WithArgs("Fixed", "5.5", "100.00", 12, "").
					WillReturnRows(savingsProductRows())
			},
		},
		{
			name: "Duplicate name",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO savings_products")).
					WithArgs("Fixed", "5.5", "100.00", 12, "").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: domain.ErrProductExists,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO savings_products")).
					WithArgs("Fixed", "5.5", "100.00", 12, "").
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), product)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSavingsRepository_Reads(t *testing.T) {
	repo, _, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM savings_products WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(savingsProductRows())
	product, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Fixed", product.Name)

	mock.ExpectQuery(regexp.QuoteMeta("FROM savings_products WHERE id = $1")).
		WithArgs(2).
		WillReturnError(pgx.ErrNoRows)
	product, err = repo.GetByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, product)

	mock.ExpectQuery(regexp.QuoteMeta("FROM savings_products ORDER BY name")).
		WillReturnRows(savingsProductRows())
	products, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_Create(t *testing.T) {
	_, repo, mock := NewMock(t)
	pct := decimal.NewFromInt(25)

	tests := []struct {
		name        string
		product     *domain.LoanProduct
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "With collateral rule",
			product: &domain.LoanProduct{
				Name:                 "Development",
				InterestRate:         decimal.RequireFromString("12.5"),
				MaxAmount:            decimal.NewFromInt(50000),
				MaxTerm:              24,
				MinSavingsPercentage: &pct,
			},
			mockSetup: func() {
				minSavings := "25"
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loan_products")).
					WithArgs("Development", "12.5", "50000.00", 24, &minSavings, "").
					WillReturnRows(loanProductRows(&pct))
			},
		},
		{
			name: "Without collateral rule",
			product: &domain.LoanProduct{
				Name:         "Emergency",
				InterestRate: decimal.NewFromInt(10),
				MaxAmount:    decimal.NewFromInt(5000),
				MaxTerm:      6,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loan_products")).
					WithArgs("Emergency", "10", "5000.00", 6, (*string)(nil), "").
					WillReturnRows(loanProductRows((*decimal.Decimal)(nil)))
			},
		},
		{
			name:    "Duplicate name",
			product: &domain.LoanProduct{Name: "Emergency", InterestRate: decimal.NewFromInt(10), MaxAmount: decimal.NewFromInt(5000), MaxTerm: 6},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loan_products")).
					WithArgs("Emergency", "10", "5000.00", 6, (*string)(nil), "").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: domain.ErrProductExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), tt.product)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4, created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLoanRepository_Reads(t *testing.T) {
	_, repo, mock := NewMock(t)
	pct := decimal.NewFromInt(25)

	mock.ExpectQuery(regexp.QuoteMeta("FROM loan_products WHERE id = $1")).
		WithArgs(4).
		WillReturnRows(loanProductRows(&pct))
	product, err := repo.GetByID(context.Background(), 4)
	assert.NoError(t, err)
	assert.True(t, pct.Equal(*product.MinSavingsPercentage))

	mock.ExpectQuery(regexp.QuoteMeta("FROM loan_products WHERE id = $1")).
		WithArgs(5).
		WillReturnError(pgx.ErrNoRows)
	product, err = repo.GetByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, product)

	mock.ExpectQuery(regexp.QuoteMeta("FROM loan_products ORDER BY name")).
		WillReturnError(errors.New("database error"))
	_, err = repo.List(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
