package depositrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/sacco/internal/domain"
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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Deposit stored",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deposits (savings_id, amount, method, notes, reference, created_at)")).
					WithArgs(3, "250.00", "BANK_TRANSFER", "salary", "ref", pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deposits")).
					WithArgs(3, "250.00", "BANK_TRANSFER", "salary", "ref", pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deposit, err := repo.Create(context.Background(), &domain.Deposit{
				SavingsID: 3,
				Amount:    decimal.NewFromInt(250),
				Method:    domain.MethodBankTransfer,
				Notes:     "salary",
				Reference: "ref",
				CreatedAt: now,
			})
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, deposit)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 11, deposit.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListBySavingsID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "savings_id", "amount", "method", "notes", "reference", "created_at"}).
		AddRow(2, 3, decimal.RequireFromString("20.00"), domain.MethodCash, "", "r2", now).
		AddRow(1, 3, decimal.RequireFromString("10.00"), domain.MethodCheque, "first", "r1", now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM deposits")).
		WithArgs(3).
		WillReturnRows(rows)

	deposits, err := repo.ListBySavingsID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, deposits, 2)
	assert.Equal(t, domain.MethodCheque, deposits[1].Method)
	assert.Equal(t, "20.00", domain.FormatAmount(deposits[0].Amount))

	mock.ExpectQuery(regexp.QuoteMeta("FROM deposits")).
		WithArgs(4).
		WillReturnError(errors.New("database error"))
	_, err = repo.ListBySavingsID(context.Background(), 4)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
