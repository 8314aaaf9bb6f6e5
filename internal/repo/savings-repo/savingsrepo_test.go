package savingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var ts = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func savingsRows(balance string, productID *int) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "product_id", "account_number", "balance", "created_at", "updated_at"}).
		AddRow(3, 7, productID, "71000000075", decimal.RequireFromString(balance), ts, ts)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Account created with zero balance",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO savings (user_id, account_number, balance)")).
					WithArgs(7, "71000000075").
					WillReturnRows(savingsRows("0", (*int)(nil)))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO savings")).
					WithArgs(7, "71000000075").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			savings, err := repo.Create(context.Background(), 7, "71000000075")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, savings)
			} else {
				assert.NoError(t, err)
				assert.True(t, savings.Balance.IsZero())
				assert.Nil(t, savings.ProductID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Lookups(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		query  string
		arg    any
		call   func() (*domain.Savings, error)
		absent bool
	}{
		{
			name:  "By id",
			query: "FROM savings WHERE id = $1",
			arg:   3,
			call:  func() (*domain.Savings, error) { return repo.GetByID(ctx, 3) },
		},
		{
			name:  "By id for update",
			query: "FROM savings WHERE id = $1 FOR UPDATE",
			arg:   3,
			call:  func() (*domain.Savings, error) { return repo.GetByIDForUpdate(ctx, 3) },
		},
		{
			name:  "By user",
			query: "FROM savings WHERE user_id = $1",
			arg:   7,
			call:  func() (*domain.Savings, error) { return repo.GetByUserID(ctx, 7) },
		},
		{
			name:   "By account number, missing",
			query:  "FROM savings WHERE account_number = $1",
			arg:    "71000000075",
			call:   func() (*domain.Savings, error) { return repo.GetByAccountNumber(ctx, "71000000075") },
			absent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := mock.ExpectQuery(regexp.QuoteMeta(tt.query)).WithArgs(tt.arg)
			if tt.absent {
				exp.WillReturnError(pgx.ErrNoRows)
			} else {
				exp.WillReturnRows(savingsRows("125.50", (*int)(nil)))
			}

			savings, err := tt.call()
			assert.NoError(t, err)
			if tt.absent {
				assert.Nil(t, savings)
			} else {
				assert.Equal(t, "125.50", domain.FormatAmount(savings.Balance))
				assert.Equal(t, 7, savings.UserID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SET balance = $1, updated_at = now()")).
		WithArgs("1250.50", 3).
		WillReturnRows(savingsRows("1250.50", (*int)(nil)))
	savings, err := repo.UpdateBalance(context.Background(), 3, decimal.RequireFromString("1250.5"))
	assert.NoError(t, err)
	assert.Equal(t, "1250.50", domain.FormatAmount(savings.Balance))

	mock.ExpectQuery(regexp.QuoteMeta("SET balance = $1")).
		WithArgs("1.00", 3).
		WillReturnError(errors.New("database error"))
	_, err = repo.UpdateBalance(context.Background(), 3, decimal.NewFromInt(1))
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetProduct(t *testing.T) {
	repo, mock := NewMock(t)
	productID := 2

	mock.ExpectQuery(regexp.QuoteMeta("SET product_id = $1")).
		WithArgs(2, 3).
		WillReturnRows(savingsRows("10", &productID))
	savings, err := repo.SetProduct(context.Background(), 3, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, *savings.ProductID)

	mock.ExpectQuery(regexp.QuoteMeta("SET product_id = $1")).
		WithArgs(2, 4).
		WillReturnError(pgx.ErrNoRows)
	savings, err = repo.SetProduct(context.Background(), 4, 2)
	assert.NoError(t, err)
	assert.Nil(t, savings)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TotalBalance(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(balance), 0) FROM savings")).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.RequireFromString("9000.25")))
	total, err := repo.TotalBalance(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "9000.25", domain.FormatAmount(total))
	assert.NoError(t, mock.ExpectationsWereMet())
}
