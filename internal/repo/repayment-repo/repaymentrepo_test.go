package repaymentrepo

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

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO repayments (loan_id, amount, method, notes, reference, created_at)")).
		WithArgs(9, "300.00", "MOBILE_MONEY", "", "ref", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))
	repayment, err := repo.Create(context.Background(), &domain.Repayment{
		LoanID:    9,
		Amount:    decimal.NewFromInt(300),
		Method:    domain.MethodMobileMoney,
		Reference: "ref",
		CreatedAt: time.Now(),
	})
	assert.NoError(t, err)
	assert.Equal(t, 5, repayment.ID)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO repayments")).
		WithArgs(9, "1.00", "CASH", "", "", pgxmock.AnyArg()).
		WillReturnError(errors.New("database error"))
	_, err = repo.Create(context.Background(), &domain.Repayment{LoanID: 9, Amount: decimal.NewFromInt(1), Method: domain.MethodCash})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByLoanID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "loan_id", "amount", "method", "notes", "reference", "created_at"}).
		AddRow(1, 9, decimal.RequireFromString("300.00"), domain.MethodCash, "", "r1", now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM repayments")).
		WithArgs(9).
		WillReturnRows(rows)

	repayments, err := repo.ListByLoanID(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Repayment{{
		ID:        1,
		LoanID:    9,
		Amount:    decimal.RequireFromString("300.00"),
		Method:    domain.MethodCash,
		Reference: "r1",
		CreatedAt: now,
	}}, repayments)
	assert.NoError(t, mock.ExpectationsWereMet())
}
